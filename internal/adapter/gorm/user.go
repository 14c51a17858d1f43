package gorm

import (
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string `gorm:"unique"`
	PasswordHash string

	Tasks []*Task `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Username implements model.User.
func (w *wrappedUser) Username() string {
	return w.u.Username
}

// CreatedAt implements model.User.
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User, passwordHash string) *User {
	return &User{
		ID:           string(u.ID()),
		CreatedAt:    u.CreatedAt(),
		Username:     u.Username(),
		PasswordHash: passwordHash,
	}
}
