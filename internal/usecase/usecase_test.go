package usecase

import (
	"context"
	"io"
	"testing"

	"hotel-listing/config"
	"hotel-listing/internal/delivery/http/middleware"
	"hotel-listing/internal/domain/entity"
	"hotel-listing/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(config.DBConfig{Driver: database.DriverSQLite, Name: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedCountry(t *testing.T, db *gorm.DB, name, short string) *entity.Country {
	t.Helper()
	country := &entity.Country{Name: name, ShortCode: short}
	require.NoError(t, db.Create(country).Error)
	return country
}

func seedHotel(t *testing.T, db *gorm.DB, name string, countryID int) *entity.Hotel {
	t.Helper()
	hotel := &entity.Hotel{Name: name, Address: "1 Beach Rd", Rating: 4, CountryID: countryID}
	require.NoError(t, db.Create(hotel).Error)
	return hotel
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func asUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, middleware.UserIDKey, userID)
}
