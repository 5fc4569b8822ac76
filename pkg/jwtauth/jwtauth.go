package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается для неподписанного, просроченного или искаженного токена
	ErrInvalidToken = errors.New("jwtauth: invalid token")
)

// Claims данные админ-сессии
type Claims struct {
	AdminID int64
	Role    string
	Expires time.Time
}

// Issuer выпускает и проверяет HS256 токены
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer создает выпускающего токены
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue подписывает токен для администратора
func (i *Issuer) Issue(adminID int64, role string) (string, time.Time, error) {
	now := i.now().UTC()
	exp := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(adminID, 10),
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwtauth: sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse проверяет подпись и срок действия и возвращает claims
func (i *Issuer) Parse(raw string) (*Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := mc.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}
	adminID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || adminID <= 0 {
		return nil, ErrInvalidToken
	}

	role, _ := mc["role"].(string)

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{AdminID: adminID, Role: role, Expires: exp.Time}, nil
}
