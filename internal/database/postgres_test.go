package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubAll 讓每個步驟都成功，migrator 由呼叫端提供
func stubAll(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.Error(t, err)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestMigrationsFSContainsEmployees(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/000001_create_employees.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(b), "CREATE TABLE IF NOT EXISTS employees")
}

func TestMigrationSteps(t *testing.T) {
	steps := map[string]func(string) error{"up": RunMigrations, "down": RollbackAll}

	for name, run := range steps {
		t.Run(name+" open error", func(t *testing.T) {
			t.Cleanup(restore)
			stubAll(fakeMigrator{})
			sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
			require.Error(t, run("url"))
		})

		t.Run(name+" driver error", func(t *testing.T) {
			t.Cleanup(restore)
			stubAll(fakeMigrator{})
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
			require.Error(t, run("url"))
		})

		t.Run(name+" source error", func(t *testing.T) {
			t.Cleanup(restore)
			stubAll(fakeMigrator{})
			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
			require.Error(t, run("url"))
		})

		t.Run(name+" migrate error", func(t *testing.T) {
			t.Cleanup(restore)
			stubAll(fakeMigrator{})
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
			require.Error(t, run("url"))
		})

		t.Run(name+" no change is ok", func(t *testing.T) {
			t.Cleanup(restore)
			stubAll(fakeMigrator{upErr: migrate.ErrNoChange, downErr: migrate.ErrNoChange})
			require.NoError(t, run("url"))
		})

		t.Run(name+" step error", func(t *testing.T) {
			t.Cleanup(restore)
			stubAll(fakeMigrator{upErr: errors.New("u"), downErr: errors.New("d")})
			require.Error(t, run("url"))
		})
	}
}
