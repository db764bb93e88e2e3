package geo

import (
	"context"
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// SRID is the WGS 84 spatial reference system used for all stored points.
const SRID = 4326

// Point is a WGS 84 coordinate pair stored in a spatial column.
// The WKT representation keeps latitude as the first ordinate, matching the
// axis order of SRID 4326 rows already in the database.
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) WKT() string {
	return fmt.Sprintf("POINT(%v %v)", p.Lat, p.Lng)
}

// ParseWKT parses "POINT(lat lng)".
func ParseWKT(s string) (Point, error) {
	var p Point
	s = strings.TrimSpace(s)
	if _, err := fmt.Sscanf(s, "POINT(%f %f)", &p.Lat, &p.Lng); err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return p, nil
}

// MarshalJSON renders the point as a GeoJSON-style object with
// [lat, lng] coordinates, the order the API has always exposed.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
	}{Type: "Point", Coordinates: [2]float64{p.Lat, p.Lng}})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var obj struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Type != "Point" {
		return fmt.Errorf("unexpected geometry type %q", obj.Type)
	}
	p.Lat, p.Lng = obj.Coordinates[0], obj.Coordinates[1]
	return nil
}

// Value stores the point as WKT text. MySQL columns never take this path
// (GormValue wraps the insert in ST_GeomFromText), so it only serves SQLite.
func (p Point) Value() (driver.Value, error) {
	return p.WKT(), nil
}

// Scan accepts WKT text (SQLite, ST_AsText projections) or the SRID-prefixed
// internal geometry bytes MySQL returns for a bare `location` select.
func (p *Point) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseWKT(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case []byte:
		if len(v) > 0 && v[0] == 'P' {
			parsed, err := ParseWKT(string(v))
			if err != nil {
				return err
			}
			*p = parsed
			return nil
		}
		return p.scanMySQL(v)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into geo.Point", value)
	}
}

// scanMySQL decodes MySQL's internal format: 4 bytes of SRID followed by a
// 21-byte WKB point. MySQL keeps the ordinates in lng/lat order internally
// regardless of the geographic axis order.
func (p *Point) scanMySQL(b []byte) error {
	if len(b) != 25 {
		return fmt.Errorf("invalid geometry length %d", len(b))
	}
	wkb := b[4:]
	var order binary.ByteOrder = binary.LittleEndian
	if wkb[0] == 0 {
		order = binary.BigEndian
	}
	if geomType := order.Uint32(wkb[1:5]); geomType != 1 {
		return fmt.Errorf("unexpected WKB geometry type %d", geomType)
	}
	p.Lng = math.Float64frombits(order.Uint64(wkb[5:13]))
	p.Lat = math.Float64frombits(order.Uint64(wkb[13:21]))
	return nil
}

func (Point) GormDataType() string {
	return "geometry"
}

func (Point) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return fmt.Sprintf("POINT SRID %d", SRID)
	}
	return "TEXT"
}

// GormValue makes MySQL inserts go through ST_GeomFromText so the stored
// geometry carries the right SRID.
func (p Point) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	if db.Dialector.Name() == "mysql" {
		return clause.Expr{SQL: "ST_GeomFromText(?, ?)", Vars: []interface{}{p.WKT(), SRID}}
	}
	return clause.Expr{SQL: "?", Vars: []interface{}{p.WKT()}}
}
