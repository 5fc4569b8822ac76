package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	layout        = "15:04"
)

var (
	// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате HH:MM (24 часа).
// Значение можно получить только из корректной строки, поэтому
// все методы работают с уже провалидированным временем.
type TimeString struct {
	minutes int
	set     bool
}

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), set: true}
}

// NewTimeStringFromString парсит строку "HH:MM" (допускается "HH:MM:SS" из БД)
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) == len("15:04:05") {
		s = s[:len(layout)]
	}
	if len(s) != len(layout) {
		return TimeString{}, ErrInvalidTimeString
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeString{}, ErrInvalidTimeString
	}

	return NewTimeString(t), nil
}

// MustTimeString паникует на некорректной строке, используется в тестах и константах
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("types: %q: %v", s, err))
	}
	return ts
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// IsZero сообщает, что время не задано
func (t TimeString) IsZero() bool {
	return !t.set
}

// Validate проверяет, что время задано и лежит в пределах суток
func (t TimeString) Validate() error {
	if !t.set || t.minutes < 0 || t.minutes >= minutesPerDay {
		return ErrInvalidTimeString
	}
	return nil
}

// AddMinutes возвращает время, сдвинутое на n минут, в пределах тех же суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	res := t.minutes + n
	if res < 0 || res >= minutesPerDay {
		return TimeString{}, ErrTimeOverflow
	}
	return TimeString{minutes: res, set: true}, nil
}

// IsBefore строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// String форматирует время как HH:MM
func (t TimeString) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Format12h форматирует время как "9:00 AM"
func (t TimeString) Format12h() string {
	hour := t.minutes / 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, t.minutes%60, suffix)
}

// MarshalJSON implements json.Marshaler
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.set {
		return nil, nil
	}
	return t.String(), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}
