package core

import (
	"context"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avendano/geoportal/internal/geo"
	"github.com/avendano/geoportal/internal/model"
)

// stubCatalog serves a fixed station slice, standing in for the table scan.
type stubCatalog struct {
	stations []model.Station
	err      error
}

func (c *stubCatalog) All(ctx context.Context) ([]model.Station, error) {
	return c.stations, c.err
}

func station(name string, lat, lng float64) model.Station {
	return model.Station{
		StationName: name,
		WGS84:       model.CoordinateSet{LatDeg: &lat, LngDeg: &lng},
	}
}

func mustCoordinate(t *testing.T, lat, lng float64) geo.Coordinate {
	t.Helper()
	c, err := geo.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func TestSearchService_Search_FiltersAndOrdersByDistance(t *testing.T) {
	catalog := &stubCatalog{stations: []model.Station{
		station("FAR-1", 14.5000, 121.2000), // tens of km away
		station("NEAR-2", 14.6600, 121.0500),
		station("NEAR-1", 14.6520, 121.0491),
	}}
	svc := NewSearchService(catalog, zerolog.Nop())

	results, err := svc.Search(context.Background(), mustCoordinate(t, 14.6513, 121.0490), 3)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "NEAR-1", results[0].Station.StationName)
	assert.Equal(t, "NEAR-2", results[1].Station.StationName)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
	assert.InDelta(t, 0.97, results[1].DistanceKm, 0.05)
}

func TestSearchService_Search_BoundaryIsClosed(t *testing.T) {
	st := station("EDGE-1", 14.6600, 121.0500)
	catalog := &stubCatalog{stations: []model.Station{st}}
	svc := NewSearchService(catalog, zerolog.Nop())
	center := mustCoordinate(t, 14.6513, 121.0490)

	d := geo.HaversineKm(center.Point(), orb.Point{*st.WGS84.LngDeg, *st.WGS84.LatDeg})

	// A station at exactly the radius is included.
	results, err := svc.Search(context.Background(), center, d)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// One epsilon inside the station's distance it is excluded.
	results, err = svc.Search(context.Background(), center, d*(1-1e-9))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_Search_TieBrokenByStationName(t *testing.T) {
	// Two markers on the same monument are exactly equidistant; order must
	// still be deterministic.
	catalog := &stubCatalog{stations: []model.Station{
		station("ZULU-1", 14.6600, 121.0500),
		station("ALFA-1", 14.6600, 121.0500),
	}}
	svc := NewSearchService(catalog, zerolog.Nop())

	results, err := svc.Search(context.Background(), mustCoordinate(t, 14.6513, 121.0490), 3)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.InDelta(t, results[0].DistanceKm, results[1].DistanceKm, 1e-9)
	assert.Equal(t, "ALFA-1", results[0].Station.StationName)
	assert.Equal(t, "ZULU-1", results[1].Station.StationName)
}

func TestSearchService_Search_SkipsStationsWithoutCoordinates(t *testing.T) {
	broken := model.Station{StationName: "BROKEN-1"}
	catalog := &stubCatalog{stations: []model.Station{
		broken,
		station("NEAR-1", 14.6520, 121.0491),
	}}
	svc := NewSearchService(catalog, zerolog.Nop())

	results, err := svc.Search(context.Background(), mustCoordinate(t, 14.6513, 121.0490), 3)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "NEAR-1", results[0].Station.StationName)
}

func TestSearchService_Search_InvalidRadius(t *testing.T) {
	svc := NewSearchService(&stubCatalog{}, zerolog.Nop())
	center := mustCoordinate(t, 14.6513, 121.0490)

	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := svc.Search(context.Background(), center, radius)
		require.Error(t, err, "radius=%v", radius)
		assert.True(t, ErrKind(err, KindInvalidRequest))
	}
}

func TestSearchService_Search_CatalogError(t *testing.T) {
	svc := NewSearchService(&stubCatalog{err: storage("filter stations", context.DeadlineExceeded)}, zerolog.Nop())

	_, err := svc.Search(context.Background(), mustCoordinate(t, 14.6513, 121.0490), 3)
	require.Error(t, err)
	assert.True(t, ErrKind(err, KindStorage))
}

func TestSearchService_Search_EmptyResultIsNotAnError(t *testing.T) {
	svc := NewSearchService(&stubCatalog{}, zerolog.Nop())

	results, err := svc.Search(context.Background(), mustCoordinate(t, 14.6513, 121.0490), 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}
