package places

import (
	"math"
	"placeserver/models"
	"sort"
)

// Query is the qualifying predicate shared by both phases of a search:
// spherical distance from the origin within RadiusKm, optionally narrowed by
// a case-sensitive name substring and an exact type match.
type Query struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
	Name     string
	Type     string
}

// PlaceDistance is a row of the first search phase: an id plus its exact
// (unrounded) distance from the origin in kilometers.
type PlaceDistance struct {
	ID uint64
	Km float64
}

// Store is the geo-store collaborator. PageWithin must return rows ordered by
// ascending distance; ByID makes no ordering promise.
type Store interface {
	CountWithin(q Query) (int64, error)
	PageWithin(q Query, offset, limit int) ([]PlaceDistance, error)
	ByID(ids []uint64) ([]models.Place, error)
}

type PlaceWithDistance struct {
	models.Place
	Distance float64 `json:"distance"`
}

type Result struct {
	Data       []PlaceWithDistance `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalPages int                 `json:"totalPages"`
}

type Params struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Name      string
	Type      string
	Page      int
	Size      int
}

type Service struct {
	Store Store
}

// Search runs the two-phase proximity query: count the qualifying rows, fetch
// one page of ids ordered by distance, then hydrate the full records and
// restore the distance order (the hydration fetch does not preserve it).
// The two phases are not a consistent snapshot; a write between them can
// leave total slightly stale, which is accepted.
func (s *Service) Search(p Params) (Result, error) {
	q := Query{Lat: p.Latitude, Lng: p.Longitude, RadiusKm: p.RadiusKm, Name: p.Name, Type: p.Type}
	result := Result{Data: []PlaceWithDistance{}, Page: p.Page, Size: p.Size}

	total, err := s.Store.CountWithin(q)
	if err != nil {
		return Result{}, err
	}
	if total == 0 {
		return result, nil
	}
	result.Total = total
	result.TotalPages = int((total + int64(p.Size) - 1) / int64(p.Size))

	page, err := s.Store.PageWithin(q, (p.Page-1)*p.Size, p.Size)
	if err != nil {
		return Result{}, err
	}
	if len(page) == 0 {
		// Page beyond the last one: empty data, counts preserved.
		return result, nil
	}

	ids := make([]uint64, len(page))
	kmByID := make(map[uint64]float64, len(page))
	for i, row := range page {
		ids[i] = row.ID
		kmByID[row.ID] = row.Km
	}

	records, err := s.Store.ByID(ids)
	if err != nil {
		return Result{}, err
	}
	// Sort by the exact distances captured in phase one; rounding happens
	// only in the payload so ties cannot reorder across pages.
	sort.SliceStable(records, func(i, j int) bool {
		return kmByID[records[i].ID] < kmByID[records[j].ID]
	})

	for _, place := range records {
		result.Data = append(result.Data, PlaceWithDistance{
			Place:    place,
			Distance: math.Round(kmByID[place.ID]*100) / 100,
		})
	}
	return result, nil
}
