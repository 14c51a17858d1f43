package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "mustdo"
	keyringService = "mustdo"
	fileName       = "session.yml"
)

var ErrNoSession = errors.New("no session")

// Store persists the client session between invocations.
type Store struct {
	dir        string
	useKeyring bool
	now        func() time.Time
	mutex      sync.Mutex
}

// Load returns the persisted session. ErrNoSession is returned when none
// exists or when it has expired.
func (s *Store) Load() (*Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithStack(ErrNoSession)
		}

		return nil, errors.WithStack(err)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "could not parse session file '%s'", s.Path())
	}

	if s.useKeyring && session.Token == "" && session.Username != "" {
		token, err := keyring.Get(keyringService, keyringUser(&session))
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return nil, errors.Wrap(err, "could not retrieve token from keyring")
		}

		session.Token = token
	}

	if !session.Authenticated(s.now()) {
		return nil, errors.WithStack(ErrNoSession)
	}

	return &session, nil
}

func (s *Store) Save(session *Session) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := configdir.MakePath(s.dir); err != nil {
		return errors.WithStack(err)
	}

	persisted := *session

	if s.useKeyring {
		if err := keyring.Set(keyringService, keyringUser(session), session.Token); err != nil {
			return errors.Wrap(err, "could not store token in keyring")
		}

		persisted.Token = ""
	}

	if err := s.writeFile(&persisted); err != nil {
		if s.useKeyring {
			if err := keyring.Delete(keyringService, keyringUser(session)); err != nil {
				slog.Error("could not remove token from keyring", slogx.Error(err))
			}
		}

		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) writeFile(session *Session) error {
	data, err := yaml.Marshal(session)
	if err != nil {
		return errors.WithStack(err)
	}

	tmp := s.Path() + "-new"

	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.WithStack(err)
	}

	if err := os.Rename(tmp, s.Path()); err != nil {
		if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("could not remove temporary session file", slogx.Error(err))
		}

		return errors.Wrap(err, "could not overwrite session")
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return errors.WithStack(err)
	}

	if s.useKeyring {
		var session Session
		if err := yaml.Unmarshal(data, &session); err == nil && session.Username != "" {
			if err := keyring.Delete(keyringService, keyringUser(&session)); err != nil && !errors.Is(err, keyring.ErrNotFound) {
				return errors.Wrap(err, "could not remove token from keyring")
			}
		}
	}

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

func keyringUser(session *Session) string {
	return session.Username + "@" + session.Server
}

type Options struct {
	Dir        string
	UseKeyring bool
	Clock      func() time.Time
}

type OptionFunc func(opts *Options)

func WithDir(dir string) OptionFunc {
	return func(opts *Options) {
		opts.Dir = dir
	}
}

func WithKeyring(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.UseKeyring = enabled
	}
}

func WithClock(clock func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Clock = clock
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Dir:        configdir.LocalConfig(AppName),
		UseKeyring: false,
		Clock:      time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func NewStore(funcs ...OptionFunc) *Store {
	opts := NewOptions(funcs...)
	return &Store{
		dir:        opts.Dir,
		useKeyring: opts.UseKeyring,
		now:        opts.Clock,
	}
}
