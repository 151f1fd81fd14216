package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"hotel-listing/config"
	"hotel-listing/internal/domain/entity"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema up to date. PostgreSQL runs the versioned SQL
// migrations; other drivers derive the schema from the entities and seed
// the fixed roles the same way the SQL seed does.
func Migrate(db *gorm.DB, cfg config.DBConfig) error {
	if cfg.Driver == DriverPostgres || cfg.Driver == "" {
		return migratePostgres(cfg)
	}
	return AutoMigrate(db)
}

func migratePostgres(cfg config.DBConfig) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrateURL(cfg))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Database migrations applied")

	return nil
}

func migrateURL(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := &url.URL{
		Scheme: "pgx5",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:   cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// AutoMigrate creates the schema from the entity definitions and seeds the roles
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Country{},
		&entity.Hotel{},
		&entity.Role{},
		&entity.User{},
		&entity.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return SeedRoles(db)
}

// SeedRoles inserts the fixed role set, leaving existing rows untouched
func SeedRoles(db *gorm.DB) error {
	roles := entity.DefaultRoles()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
