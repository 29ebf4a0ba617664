package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/jikgwan/companion-api/schema"
)

func newMockStore(t *testing.T) (*MatchingStore, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock with error: %s", err)
	}

	db, err := gorm.Open("postgres", sqlDB)
	if err != nil {
		t.Fatalf("open gorm with error: %s", err)
	}

	t.Cleanup(func() { db.Close() })
	return NewMatchingStore(db), mock
}

func TestTransitionRequestStatusMismatch(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.TransitionRequest(1, []schema.RequestStatus{schema.RequestSeatConfirmed}, schema.RequestCompleted)
	assert.True(t, errors.Is(err, ErrStatusMismatch), "lost update must report a status mismatch")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionRequest(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.TransitionRequest(1, []schema.RequestStatus{schema.RequestSeatConfirmed}, schema.RequestCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamUniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "teams"`)).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := s.CreateTeam(&schema.Team{Code: "lg", Name: "LG Twins"})
	assert.True(t, errors.Is(err, ErrConflict), "unique violation must map to a conflict")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "requests"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetRequest(42)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountUnknownTeam(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM "teams"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	teamID := uint(77)
	err := s.CreateAccount(
		&schema.User{Phone: "01011112222", Name: "Kim", Role: schema.RoleSenior},
		&schema.Profile{FavoriteTeamID: &teamID},
	)
	assert.True(t, errors.Is(err, ErrNotFound), "unknown favorite team must not create a user")
	assert.NoError(t, mock.ExpectationsWereMet())
}
