package mysql

import (
	"context"
	"errors"

	"forum_api/internal/model"
	"forum_api/internal/pkg"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

// Create inserts the user. The unique indexes on name and email are the real
// uniqueness authority; losing a race surfaces here as a duplicate-key
// violation and comes back as ErrDuplicateIdentity.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

// IdentityTaken reports whether any row matches email exactly or name
// case-insensitively. Advisory early exit only; Create is the authority.
func (r *UserRepository) IdentityTaken(ctx context.Context, name, email string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR LOWER(name) = LOWER(?)", email, name).
		Count(&n).Error
	return n > 0, err
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, user *model.User, newHash string) error {
	return r.DB.WithContext(ctx).Model(user).Update("password_hash", newHash).Error
}
