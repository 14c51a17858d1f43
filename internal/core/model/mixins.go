package model

import (
	"time"
)

type WithID[T ~string] interface {
	ID() T
}

type WithOwner interface {
	OwnerID() UserID
}

type WithCreation interface {
	CreatedAt() time.Time
}
