package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return translateError(r.writerDB.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.readerDB.WithContext(ctx).
		First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return updateAll(r.writerDB.WithContext(ctx), user)
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	db := r.readerDB.WithContext(ctx).Model(&domain.User{})
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Email != "" {
		db = db.Where("LOWER(email) LIKE ?", likePattern(filter.Email))
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var users []domain.User
	total, err := countAndFind(db, filter.Pagination, "created_at DESC", &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
