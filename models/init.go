package models

import (
	"placeserver/config"

	"gorm.io/gorm"
)

func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Place{}, &UserFavoritePlace{}); err != nil {
		return err
	}
	// AutoMigrate cannot express a spatial index; SQLite has none to offer.
	if db.Dialector.Name() == "mysql" && !db.Migrator().HasIndex(&Place{}, "idx_place_location") {
		if err := db.Exec("CREATE SPATIAL INDEX idx_place_location ON place (location)").Error; err != nil {
			return err
		}
	}
	if config.SEED_PLACES > 0 {
		var count int64
		if err := db.Model(&Place{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return SeedPlaces(db, config.SEED_PLACES)
		}
	}
	return nil
}
