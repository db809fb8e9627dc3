package cmd

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	mysqlmigrate "github.com/golang-migrate/migrate/v4/database/mysql"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/migrations"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Run: func(_ *cobra.Command, _ []string) {
		runMigration("up", func(m *migrate.Migrate) error {
			err := m.Up()
			if errors.Is(err, migrate.ErrNoChange) {
				logrus.Info("Schema already up to date")
				return nil
			}
			return err
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Run: func(_ *cobra.Command, _ []string) {
		runMigration("down", func(m *migrate.Migrate) error {
			return m.Steps(-1)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Run: func(_ *cobra.Command, _ []string) {
		runMigration("version", func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("version %d (dirty: %t)\n", version, dirty)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}

func runMigration(name string, fn func(m *migrate.Migrate) error) {
	cfg := mustLoadConfig()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	m, err := newMigrator(cfg.Database.Driver, db)
	if err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to initialize migrations")
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			logrus.WithField("source_error", sourceErr).WithField("database_error", dbErr).Warn("Failed to close migrator")
		}
	}()

	if err := fn(m); err != nil {
		logrus.WithError(err).WithField("command", name).Fatal("Migration failed")
	}
	logrus.WithField("command", name).Info("Migration finished")
}

// newMigrator takes ownership of db; closing the migrator closes it.
func newMigrator(driver string, db *sql.DB) (*migrate.Migrate, error) {
	dir, err := migrations.Dir(driver)
	if err != nil {
		return nil, err
	}
	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return nil, err
	}

	var target database.Driver
	var targetName string
	switch driver {
	case config.DatabaseDriverPostgres:
		target, err = pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
		targetName = "pgx5"
	case config.DatabaseDriverMySQL:
		target, err = mysqlmigrate.WithInstance(db, &mysqlmigrate.Config{})
		targetName = "mysql"
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", source, targetName, target)
}
