package places

import (
	"placeserver/geo"
	"placeserver/models"

	"gorm.io/gorm"
)

const distanceExpr = "ST_Distance_Sphere(location, ST_GeomFromText(?, 4326))"

// GormStore runs the spatial queries against MySQL. Distance computation and
// ordering stay store-side where the spatial index lives; only payload
// shaping is done by the service.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) scope(q Query) *gorm.DB {
	origin := geo.Point{Lat: q.Lat, Lng: q.Lng}.WKT()
	// Radius arrives in km, the store computes meters.
	tx := s.DB.Model(&models.Place{}).Where(distanceExpr+" <= ?", origin, q.RadiusKm*1000)
	if q.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	return tx
}

func (s *GormStore) CountWithin(q Query) (int64, error) {
	var total int64
	err := s.scope(q).Count(&total).Error
	return total, err
}

func (s *GormStore) PageWithin(q Query, offset, limit int) ([]PlaceDistance, error) {
	origin := geo.Point{Lat: q.Lat, Lng: q.Lng}.WKT()
	rows := []PlaceDistance{}
	err := s.scope(q).
		Select("id, "+distanceExpr+" / 1000 AS km", origin).
		Order("km ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) ByID(ids []uint64) ([]models.Place, error) {
	places := []models.Place{}
	err := s.DB.
		Select("id, name, type, ST_AsText(location) AS location").
		Find(&places, ids).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
