package database

import (
	"strings"
	"testing"

	"hotel-listing/config"
	"hotel-listing/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		want    string
		wantErr bool
	}{
		{name: "default is postgres", driver: "", want: "postgres"},
		{name: "postgres", driver: DriverPostgres, want: "postgres"},
		{name: "mysql", driver: DriverMySQL, want: "mysql"},
		{name: "sqlite", driver: DriverSQLite, want: "sqlite"},
		{name: "unknown", driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Dialector(config.DBConfig{Driver: tt.driver, Name: "hotels"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "hotels"})
	assert.Equal(t, "host=db user=u password=p dbname=hotels port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestMigrateURL(t *testing.T) {
	u := migrateURL(config.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p@ss", Name: "hotels", SSLMode: "require"})
	assert.Equal(t, "pgx5://u:p%40ss@db:5432/hotels?sslmode=require", u)
}

func TestAutoMigrate_SeedsRolesOnce(t *testing.T) {
	db, err := NewConnection(config.DBConfig{Driver: DriverSQLite, Name: ":memory:"}, logger.Silent)
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))
	require.NoError(t, AutoMigrate(db))

	var roles []entity.Role
	require.NoError(t, db.Order("name ASC").Find(&roles).Error)
	require.Len(t, roles, 2)
	assert.Equal(t, entity.RoleAdministrator, roles[0].Name)
	assert.Equal(t, entity.RoleIDAdministrator, roles[0].ID)
	assert.Equal(t, entity.RoleUser, roles[1].Name)
	assert.Equal(t, entity.RoleIDUser, roles[1].ID)
}

func TestSQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := NewConnection(config.DBConfig{Driver: DriverSQLite, Name: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	err = db.Create(&entity.Hotel{Name: "Orphan", Address: "Nowhere", Rating: 3, CountryID: 42}).Error
	assert.Error(t, err)
}

func TestRoleSeedMigrationMatchesEntities(t *testing.T) {
	up, err := migrationsFS.ReadFile("migrations/000003_seed_default_roles.up.sql")
	require.NoError(t, err)

	for _, role := range entity.DefaultRoles() {
		assert.True(t, strings.Contains(string(up), role.ID.String()), "missing id for %s", role.Name)
		assert.True(t, strings.Contains(string(up), "'"+role.Name+"'"), "missing name %s", role.Name)
		assert.True(t, strings.Contains(string(up), "'"+role.NormalizedName+"'"), "missing normalized name %s", role.Name)
	}
}

func TestMigrationsArePaired(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)
	assert.Equal(t, 4, ups)
}
