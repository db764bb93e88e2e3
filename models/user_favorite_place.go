package models

// UserFavoritePlace is the user<->place favorites relation. The composite
// primary key is the single serialization point for concurrent favoriting of
// the same pair; both foreign keys cascade on delete.
type UserFavoritePlace struct {
	UserID  uint64 `gorm:"column:userId;primaryKey"`
	User    User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PlaceID uint64 `gorm:"column:placeId;primaryKey"`
	Place   Place  `gorm:"foreignKey:PlaceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (UserFavoritePlace) TableName() string {
	return "user_favorites_place"
}
