package gorm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)

	writeMutex  sync.Mutex
	maxRetries  int
	baseBackoff time.Duration
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
		maxRetries:  5,
		baseBackoff: 50 * time.Millisecond,
	}
}

// withRetry executes fn, retrying it with an exponential backoff as long as
// it fails with one of the given sqlite error codes.
func (s *Store) withRetry(ctx context.Context, write bool, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := s.baseBackoff

	for attempt := 0; ; attempt++ {
		err := s.execute(ctx, db, write, fn)
		if err == nil {
			return nil
		}

		if !isRetryable(err, codes...) || attempt >= s.maxRetries {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "database busy, retrying", slog.Int("attempt", attempt+1), slog.Duration("backoff", backoff), slogx.Error(err))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}

		backoff *= 2
	}
}

func (s *Store) execute(ctx context.Context, db *gorm.DB, write bool, fn func(ctx context.Context, db *gorm.DB) error) error {
	if write {
		s.writeMutex.Lock()
		defer s.writeMutex.Unlock()
	}

	return fn(ctx, db.WithContext(ctx))
}

func isRetryable(err error, codes ...sqlite3.ErrorCode) bool {
	for _, c := range codes {
		if errors.Is(err, c) {
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) ||
		errors.Is(err, sqlite3.CONSTRAINT_PRIMARYKEY)
}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := migrate(ctx, db); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
