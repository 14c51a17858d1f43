package model

import (
	"time"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]
	WithCreation

	Username() string
}

type BaseUser struct {
	id        UserID
	username  string
	createdAt time.Time
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Username implements User.
func (u *BaseUser) Username() string {
	return u.username
}

// CreatedAt implements User.
func (u *BaseUser) CreatedAt() time.Time {
	return u.createdAt
}

var _ User = &BaseUser{}

func NewUser(id UserID, username string, createdAt time.Time) *BaseUser {
	return &BaseUser{
		id:        id,
		username:  username,
		createdAt: createdAt,
	}
}

func UserString(u User) string {
	return string(u.ID()) + ":" + u.Username()
}
