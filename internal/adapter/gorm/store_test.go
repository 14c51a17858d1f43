package gorm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestStore(t *testing.T) {
	testsuite.TestStore(t, func(t *testing.T) (port.Store, error) {
		db, err := openTestDatabase(t, filepath.Join(t.TempDir(), "data.sqlite"))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return NewStore(db), nil
	})
}

func TestMigrationsPreserveData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data.sqlite")

	db, err := openTestDatabase(t, dsn)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	store := NewStore(db)

	user := model.NewUser(model.NewUserID(), "alice", time.Now().UTC())
	if err := store.CreateUser(ctx, user, "hash"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task := model.NewOwnedTask(user.ID(), model.NewTask(model.NewTaskID(), "Persisted", nil, false, time.Now().UTC()))
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Simulate a restart on the same database file
	reopened, err := openTestDatabase(t, dsn)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	store = NewStore(reopened)

	tasks, err := store.QueryUserTasks(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(tasks); e != g {
		t.Fatalf("len(tasks): expected %v, got %v", e, g)
	}

	if e, g := "Persisted", tasks[0].Title(); e != g {
		t.Errorf("tasks[0].Title(): expected %v, got %v", e, g)
	}

	var applied int64
	if err := reopened.Model(&SchemaMigration{}).Count(&applied).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(len(migrations)), applied; e != g {
		t.Errorf("applied migrations: expected %v, got %v", e, g)
	}
}

func openTestDatabase(t *testing.T, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}
