package reminders

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	scheduled := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customer_reminders (booking_id,reminder_type,message,scheduled_at,status,created_by)")).
		WithArgs(int64(5), "24_hour", "see you", scheduled, "pending", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), created))

	got, err := repo.Create(context.Background(), &domain.CustomerReminder{
		BookingID:   5,
		Type:        domain.Reminder24Hour,
		Message:     "see you",
		ScheduledAt: scheduled,
		Status:      domain.ReminderPending,
		CreatedBy:   domain.SystemActorID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetPending(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 3, 9, 9, 5, 0, 0, time.UTC)
	sent := now.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 AND scheduled_at <= $2 ORDER BY scheduled_at ASC LIMIT 50")).
		WithArgs("pending", now).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(5), "24_hour", "msg", now.Add(-time.Minute), nil, "pending", now, int64(0)).
			AddRow(int64(2), int64(6), "custom", "msg", now.Add(-time.Hour), sent, "pending", now, int64(3)))

	got, err := repo.GetPending(context.Background(), now, 50)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Nil(t, got[0].SentAt)
	require.NotNil(t, got[1].SentAt)
	assert.Equal(t, sent, *got[1].SentAt)
	assert.Equal(t, domain.ReminderCustom, got[1].Type)
	assert.Equal(t, int64(3), got[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM customer_reminders").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	sentAt := time.Date(2025, 3, 9, 9, 5, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE customer_reminders SET status = $1, sent_at = $2 WHERE id = $3")).
		WithArgs("sent", sentAt, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 4, domain.ReminderSent, &sentAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE customer_reminders").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 4, domain.ReminderFailed, nil)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestRepository_GetByBooking(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 3, 9, 9, 5, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE booking_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(5), "24_hour", "msg", now, nil, "sent", now, int64(0)))

	got, err := repo.GetByBooking(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ReminderSent, got[0].Status)
}
