package models

import (
	"fmt"
	"math/rand"
	"placeserver/geo"

	"gorm.io/gorm"
)

// PlaceTypes is the open vocabulary used for seeded data; real imports may
// carry any tag.
var PlaceTypes = []string{
	"supermarket", "gas_station", "eatery", "hotel", "hospital",
	"school", "restaurant", "cafe", "bar",
}

var (
	seedSurnames = []string{
		"Abbott", "Bergstrom", "Carter", "Dickinson", "Emmerich", "Feeney",
		"Goldner", "Hammes", "Iverson", "Jacobi", "Kunde", "Larkin",
		"McDermott", "Nolan", "Okuneva", "Pagac", "Quitzon", "Reinger",
		"Schmeler", "Treutel", "Upton", "Volkman", "Wunsch", "Yundt", "Zieme",
	}
	seedSuffixes = []string{"Group", "Inc", "LLC", "and Sons", "Ltd", "Brothers"}
)

// SeedPlaces bulk-inserts n randomly generated places, writing in batches of
// 100 rows.
func SeedPlaces(db *gorm.DB, n int) error {
	places := make([]Place, 0, n)
	for i := 0; i < n; i++ {
		places = append(places, Place{
			Name: fmt.Sprintf("%s %s", seedSurnames[rand.Intn(len(seedSurnames))], seedSuffixes[rand.Intn(len(seedSuffixes))]),
			Type: PlaceTypes[rand.Intn(len(PlaceTypes))],
			Location: geo.Point{
				Lat: rand.Float64()*180 - 90,
				Lng: rand.Float64()*360 - 180,
			},
		})
	}
	return db.CreateInBatches(places, 100).Error
}
