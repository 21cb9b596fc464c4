package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_GetByEmail_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "role", "active"}).
		AddRow("user-1", "owner@example.com", "hash", "Owner", "owner", true)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), " Owner@Example.com")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, domain.RoleOwner, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateDuplicate_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &domain.User{Base: domain.Base{ID: "user-1"}, Email: "taken@example.com"})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "record not found", in: gorm.ErrRecordNotFound, want: repository.ErrNotFound},
		{name: "gorm duplicate", in: gorm.ErrDuplicatedKey, want: repository.ErrDuplicate},
		{name: "gorm foreign key", in: gorm.ErrForeignKeyViolated, want: repository.ErrReferenced},
		{name: "postgres unique", in: errors.New(`ERROR: duplicate key value violates unique constraint "x"`), want: repository.ErrDuplicate},
		{name: "postgres foreign key", in: errors.New(`ERROR: update or delete on table "rooms" violates foreign key constraint "y"`), want: repository.ErrReferenced},
		{name: "sqlite unique", in: errors.New("UNIQUE constraint failed: users.email"), want: repository.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%nguyen\_van\%%`, likePattern("Nguyen_Van%"))
}

func TestContractRepository_LockByID_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractRepository(db, db)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "room_id", "tenant_id", "status"}).
		AddRow("contract-1", "owner-1", "room-1", "tenant-1", "active")
	mock.ExpectQuery(`SELECT \* FROM "rental_contracts" WHERE rental_contracts.owner_id = \$1 AND id = \$2 .* FOR UPDATE`).
		WillReturnRows(rows)

	contract, err := repo.LockByID(ownerContext("owner-1"), "contract-1")

	require.NoError(t, err)
	assert.Equal(t, domain.ContractActive, contract.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
