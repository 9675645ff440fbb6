package core

import (
	"context"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"github.com/avendano/geoportal/internal/geo"
	"github.com/avendano/geoportal/internal/model"
)

// Catalog is the station read surface the proximity search consults.
// Today it is a table scan; the contract leaves room for a grid or R-tree
// implementation behind the same interface.
type Catalog interface {
	All(ctx context.Context) ([]model.Station, error)
}

// SearchResult pairs a station with its great-circle distance from the
// query center.
type SearchResult struct {
	Station    model.Station `json:"station"`
	DistanceKm float64       `json:"distance_km"`
}

// SearchService answers radius queries over the station catalog.
type SearchService struct {
	catalog Catalog
	logger  zerolog.Logger
}

func NewSearchService(catalog Catalog, logger zerolog.Logger) *SearchService {
	return &SearchService{catalog: catalog, logger: logger}
}

// Search returns the available stations within radiusKm of center,
// ascending by distance with ties broken by station name. The boundary is
// closed: a station at exactly radiusKm is included. Stations without a
// usable WGS84 position are skipped and reported as a data-quality signal.
func (s *SearchService) Search(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]SearchResult, error) {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, invalidRequestf("search radius must be positive and finite, got %v", radiusKm)
	}

	stations, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	centerPt := center.Point()
	skipped := 0
	results := make([]SearchResult, 0)
	for _, st := range stations {
		if !st.WGS84.HasPosition() {
			skipped++
			continue
		}
		d := geo.HaversineKm(centerPt, orb.Point{*st.WGS84.LngDeg, *st.WGS84.LatDeg})
		if d <= radiusKm {
			results = append(results, SearchResult{Station: st, DistanceKm: d})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Station.StationName < results[j].Station.StationName
	})

	if skipped > 0 {
		s.logger.Warn().Int("stations", skipped).Msg("stations without coordinates excluded from search")
	}

	return results, nil
}
