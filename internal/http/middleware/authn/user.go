package authn

import (
	"context"
)

type contextKey string

const contextKeyUser contextKey = "authnUser"

// User is the identity asserted by an authenticator, before it is
// resolved against the user store.
type User struct {
	ID       string
	Username string
}

func ContextUser(ctx context.Context) *User {
	user, ok := ctx.Value(contextKeyUser).(*User)
	if !ok {
		return nil
	}

	return user
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}
