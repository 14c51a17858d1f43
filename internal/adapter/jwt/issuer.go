package jwt

import (
	"context"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	gojwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Issue implements [port.SessionIssuer].
func (i *Issuer) Issue(ctx context.Context, user model.User) (*model.Session, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	claims := &Claims{
		UserID:   string(user.ID()),
		Username: user.Username(),
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   string(user.ID()),
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	session := &model.Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	}

	return session, nil
}

// Verify implements [port.SessionIssuer].
func (i *Issuer) Verify(ctx context.Context, rawToken string) (model.User, error) {
	claims := &Claims{}

	_, err := gojwt.ParseWithClaims(
		rawToken, claims,
		func(token *gojwt.Token) (any, error) {
			return i.secret, nil
		},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(i.issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, errors.Wrap(port.ErrInvalidToken, err.Error())
	}

	if claims.UserID == "" {
		return nil, errors.Wrap(port.ErrInvalidToken, "missing user id claim")
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return model.NewUser(model.UserID(claims.UserID), claims.Username, issuedAt), nil
}

func NewIssuer(secret []byte, funcs ...OptionFunc) *Issuer {
	opts := NewOptions(funcs...)

	return &Issuer{
		secret: secret,
		ttl:    opts.TTL,
		issuer: opts.Issuer,
		now:    opts.Clock,
	}
}

var _ port.SessionIssuer = &Issuer{}
