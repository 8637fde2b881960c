package sqldb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := &userModel{
		Base:         Base{ID: user.ID, CreatedAt: user.CreatedAt, UpdatedAt: user.UpdatedAt},
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Phone:        user.Phone,
		Role:         string(user.Role),
	}
	if err := db.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var m userModel
	if err := db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "find user")
	}
	return toDomainUser(&m), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var m userModel
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "find user")
	}
	return toDomainUser(&m), nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := db.Model(&userModel{})
	if filter.Role != "" {
		q = q.Where("role = ?", string(filter.Role))
	}

	var rows []userModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainUser(&rows[i]))
	}
	return out, nil
}
