package gorm

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SchemaMigration struct {
	Version   int `gorm:"primaryKey;autoIncrement:false"`
	Name      string
	AppliedAt time.Time
}

type migration struct {
	Version int
	Name    string
	SQL     []string
}

// Migrations are applied in order and recorded. They must only ever be appended
// and never alter rows already stored.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: []string{
			`
				CREATE TABLE IF NOT EXISTS users (
					id TEXT NOT NULL PRIMARY KEY,
					username TEXT NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					created_at DATETIME,
					updated_at DATETIME
				);
			`,
		},
	},
	{
		Version: 2,
		Name:    "create_tasks",
		SQL: []string{
			`
				CREATE TABLE IF NOT EXISTS tasks (
					id TEXT NOT NULL PRIMARY KEY,
					owner_id TEXT NOT NULL,
					title TEXT NOT NULL,
					due_date TEXT,
					completed BOOLEAN NOT NULL DEFAULT 0,
					created_at DATETIME,
					updated_at DATETIME,
					FOREIGN KEY (owner_id) REFERENCES users (id) ON DELETE CASCADE
				);
			`,
			"CREATE INDEX IF NOT EXISTS tasks_owner_idx ON tasks ( owner_id );",
		},
	},
	{
		Version: 3,
		Name:    "index_tasks_due_date",
		SQL: []string{
			"CREATE INDEX IF NOT EXISTS tasks_owner_due_date_idx ON tasks ( owner_id, completed, due_date );",
		},
	},
}

func migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return errors.WithStack(err)
	}

	var applied []int
	if err := db.Model(&SchemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return errors.WithStack(err)
	}

	isApplied := make(map[int]struct{}, len(applied))
	for _, v := range applied {
		isApplied[v] = struct{}{}
	}

	for _, m := range migrations {
		if _, exists := isApplied[m.Version]; exists {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, sql := range m.SQL {
				if err := tx.Exec(sql).Error; err != nil {
					return errors.Wrapf(err, "could not execute migration '%s'", m.Name)
				}
			}

			record := &SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now().UTC(),
			}

			if err := tx.Create(record).Error; err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			return errors.WithStack(err)
		}

		slog.InfoContext(ctx, "applied database migration", slog.Int("version", m.Version), slog.String("name", m.Name))
	}

	return nil
}
