package favorites

import (
	"errors"
	"placeserver/db"
	"placeserver/models"

	"gorm.io/gorm"
)

// Error messages are part of the API surface; the HTTP layer sends them
// verbatim with a 404.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrPlaceNotFound    = errors.New("Place not found")
	ErrFavoriteNotFound = errors.New("Favorite not found")
)

// Manager maintains the user<->place favorites relation. Existence of both
// endpoints is re-checked on every call so callers get a precise not-found
// answer instead of a constraint violation.
type Manager struct {
	DB *gorm.DB
}

func (m *Manager) userExists(userID uint64) error {
	var count int64
	if err := m.DB.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *Manager) placeExists(placeID uint64) error {
	var count int64
	if err := m.DB.Model(&models.Place{}).Where("id = ?", placeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

func (m *Manager) pairExists(userID, placeID uint64) (bool, error) {
	var count int64
	err := m.DB.Model(&models.UserFavoritePlace{}).
		Where("userId = ? AND placeId = ?", userID, placeID).
		Count(&count).Error
	return count > 0, err
}

// List returns the user's favorite places; an empty list is not an error.
func (m *Manager) List(userID uint64) ([]models.Place, error) {
	if err := m.userExists(userID); err != nil {
		return nil, err
	}
	var ids []uint64
	err := m.DB.Model(&models.UserFavoritePlace{}).
		Where("userId = ?", userID).
		Pluck("placeId", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Place{}, nil
	}
	places := []models.Place{}
	if err = m.DB.Find(&places, ids).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// Add inserts the (user, place) pair. Returns false without error when the
// pair already exists - including when a concurrent Add gets there first and
// the insert hits the primary key.
func (m *Manager) Add(userID, placeID uint64) (bool, error) {
	if err := m.userExists(userID); err != nil {
		return false, err
	}
	if err := m.placeExists(placeID); err != nil {
		return false, err
	}
	exists, err := m.pairExists(userID, placeID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	fav := models.UserFavoritePlace{UserID: userID, PlaceID: placeID}
	if err = m.DB.Create(&fav).Error; err != nil {
		if db.IsDuplicate(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the pair and returns the refreshed favorites list. The pair
// must exist beforehand.
func (m *Manager) Remove(userID, placeID uint64) ([]models.Place, error) {
	if err := m.userExists(userID); err != nil {
		return nil, err
	}
	if err := m.placeExists(placeID); err != nil {
		return nil, err
	}
	exists, err := m.pairExists(userID, placeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrFavoriteNotFound
	}
	err = m.DB.
		Where("userId = ? AND placeId = ?", userID, placeID).
		Delete(&models.UserFavoritePlace{}).Error
	if err != nil {
		return nil, err
	}
	return m.List(userID)
}
