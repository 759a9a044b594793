package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/snsce/attendance/internal/pkg/errors"
	"github.com/snsce/attendance/internal/pkg/models"
)

func setupSQLRepo(t *testing.T) (*CampusRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewCampusRepo(&models.Config{}, sqlxDB, nil)
	return repo, mock
}

func TestGetStudentByEmail(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	id := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "email", "name", "mobile_number", "password", "created_at", "updated_at"}).
		AddRow(id, "student@snsce.ac.in", "Priya", "9876543210", "hash", now, now)

	mock.ExpectQuery("SELECT id, email, name, mobile_number, password, created_at, updated_at").
		WithArgs("student@snsce.ac.in").
		WillReturnRows(rows)

	user, err := repo.GetStudentByEmail(context.Background(), "student@snsce.ac.in")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Priya", user.Name)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStudentByEmailNotFound(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	mock.ExpectQuery("SELECT id, email, name, mobile_number, password, created_at, updated_at").
		WithArgs("nobody@snsce.ac.in").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetStudentByEmail(context.Background(), "nobody@snsce.ac.in")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	id := uuid.New().String()
	mock.ExpectQuery("SELECT id, email, name, mobile_number, password, created_at, updated_at").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetStudentByID(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateStudent(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	mock.ExpectExec("INSERT INTO students").
		WithArgs(sqlmock.AnyArg(), "student@snsce.ac.in", "", "", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{Email: "student@snsce.ac.in", Password: "hash"}
	err := repo.CreateStudent(context.Background(), user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudentField(t *testing.T) {
	repo, mock := setupSQLRepo(t)
	id := uuid.New().String()

	mock.ExpectExec("UPDATE students SET name").
		WithArgs("New Name", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateStudentField(context.Background(), id, "name", "New Name")
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateStudentFieldRejectsUnknownColumn(t *testing.T) {
	repo, _ := setupSQLRepo(t)

	_, err := repo.UpdateStudentField(context.Background(), uuid.New().String(), "role", "admin")
	assert.ErrorIs(t, err, apperrors.ErrUpdateFailed)
}

func TestUpdateStudentFieldNoMatch(t *testing.T) {
	repo, mock := setupSQLRepo(t)
	id := uuid.New().String()

	mock.ExpectExec("UPDATE students SET mobile_number").
		WithArgs("9876543210", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateStudentField(context.Background(), id, "mobile_number", "9876543210")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateStudentPasswordNotFound(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	mock.ExpectExec("UPDATE students SET password").
		WithArgs("newhash", sqlmock.AnyArg(), "nobody@snsce.ac.in").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStudentPassword(context.Background(), "nobody@snsce.ac.in", "newhash")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCountStudents(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestListStudentsMergesProfile(t *testing.T) {
	repo, mock := setupSQLRepo(t)

	rows := sqlmock.NewRows([]string{
		"id", "email", "name", "mobile_number", "academic_year", "department",
		"date_of_birth", "gender", "address", "parent_name", "parent_mobile_number", "blood_group",
	}).AddRow(uuid.New(), "a@snsce.ac.in", "Asha", "9876543210", "2024", "CSE",
		"2004-01-15", "F", "Coimbatore", "Ravi", "9123456780", "O+").
		AddRow(uuid.New(), "b@snsce.ac.in", "", "", "", "", "", "", "", "", "", "")

	mock.ExpectQuery("FROM students s").WillReturnRows(rows)

	records, err := repo.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "CSE", records[0].Department)
	assert.Empty(t, records[1].Department)
}
