package gorm

import (
	"context"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, user model.User, passwordHash string) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		gormUser := fromUser(user, passwordHash)

		if err := db.Omit("Tasks").Create(gormUser).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return errors.WithStack(port.ErrDuplicateUsername)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FindUserByUsername implements port.UserStore.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user User

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "username = ?", username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	var user User

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// GetUserPasswordHash implements port.UserStore.
func (s *Store) GetUserPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	var passwordHash string

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		var user User

		if err := db.Select("id", "password_hash").First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		passwordHash = user.PasswordHash

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return passwordHash, nil
}

var _ port.UserStore = &Store{}
