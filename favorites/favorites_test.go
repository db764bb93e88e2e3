package favorites

import (
	"placeserver/geo"
	"placeserver/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// A second pooled connection would see a fresh in-memory database, and
	// the pragma is per-connection anyway.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Place{}, &models.UserFavoritePlace{}))
	return db
}

func seedUserAndPlaces(t *testing.T, db *gorm.DB) (models.User, []models.Place) {
	t.Helper()
	user := models.User{Email: "fav@example.com", Password: "irrelevant"}
	require.NoError(t, db.Create(&user).Error)
	places := []models.Place{
		{Name: "Abbott Group", Type: "cafe", Location: geo.Point{Lat: 10, Lng: 20}},
		{Name: "Nolan Ltd", Type: "bar", Location: geo.Point{Lat: 11, Lng: 21}},
	}
	require.NoError(t, db.Create(&places).Error)
	return user, places
}

func TestListUnknownUser(t *testing.T) {
	m := &Manager{DB: openTestDB(t)}
	_, err := m.List(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListEmptyIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	user, _ := seedUserAndPlaces(t, db)
	m := &Manager{DB: db}

	list, err := m.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddExistenceChecks(t *testing.T) {
	db := openTestDB(t)
	user, places := seedUserAndPlaces(t, db)
	m := &Manager{DB: db}

	_, err := m.Add(999, places[0].ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = m.Add(user.ID, 999)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestAddIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	user, places := seedUserAndPlaces(t, db)
	m := &Manager{DB: db}

	added, err := m.Add(user.ID, places[0].ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = m.Add(user.ID, places[0].ID)
	require.NoError(t, err)
	assert.False(t, added)

	list, err := m.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, places[0].ID, list[0].ID)
	assert.Equal(t, geo.Point{Lat: 10, Lng: 20}, list[0].Location)
}

func TestRemoveRequiresExistingFavorite(t *testing.T) {
	db := openTestDB(t)
	user, places := seedUserAndPlaces(t, db)
	m := &Manager{DB: db}

	_, err := m.Remove(user.ID, places[0].ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)

	_, err = m.Remove(999, places[0].ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = m.Remove(user.ID, 999)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestFavoriteRoundTrip(t *testing.T) {
	db := openTestDB(t)
	user, places := seedUserAndPlaces(t, db)
	m := &Manager{DB: db}

	for _, p := range places {
		added, err := m.Add(user.ID, p.ID)
		require.NoError(t, err)
		assert.True(t, added)
	}

	remaining, err := m.Remove(user.ID, places[0].ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, places[1].ID, remaining[0].ID)

	list, err := m.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, places[1].ID, list[0].ID)
}

func TestFavoritesCascadeOnPlaceDelete(t *testing.T) {
	db := openTestDB(t)
	user, places := seedUserAndPlaces(t, db)
	m := &Manager{DB: db}

	_, err := m.Add(user.ID, places[0].ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&places[0]).Error)

	var count int64
	require.NoError(t, db.Model(&models.UserFavoritePlace{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
