package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avendano/geoportal/internal/model"
)

const stationColumns = `station_name, accuracy_order, accuracy_class_cm, island, region, province, municipality, barangay, status, description,
	wgs84_lat, wgs84_lng, wgs84_height_m, wgs84_northing, wgs84_easting, wgs84_zone,
	prs92_lat, prs92_lng, prs92_height_m, prs92_northing, prs92_easting, prs92_zone,
	created_at, updated_at`

// CatalogService reads the control-point catalog. The catalog is maintained
// by external data-management tooling; this service exposes no mutations.
type CatalogService struct {
	db DB
}

func NewCatalogService(db DB) *CatalogService {
	return &CatalogService{db: db}
}

// StationFilter narrows catalog reads. Zero values mean "any". Retired
// stations (status 5) are excluded unless IncludeRetired is set.
type StationFilter struct {
	AccuracyOrder int
	Island        string
	Region        string
	Province      string
	Municipality  string
	Barangay      string
	IncludeRetired bool
}

// All returns the available (non-retired) stations ordered by name.
func (s *CatalogService) All(ctx context.Context) ([]model.Station, error) {
	return s.Filter(ctx, StationFilter{})
}

// ByName looks up one station by its unique name, retired or not.
func (s *CatalogService) ByName(ctx context.Context, name string) (*model.Station, error) {
	if name == "" {
		return nil, invalidRequestf("station name is required")
	}

	row := s.db.QueryRow(ctx,
		`SELECT `+stationColumns+` FROM stations WHERE station_name = $1`, name)
	st, err := scanStation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundf("station %s not found", name)
	}
	if err != nil {
		return nil, storage(fmt.Sprintf("get station %s", name), err)
	}
	return &st, nil
}

// Filter returns the stations matching the filter, ordered by name.
func (s *CatalogService) Filter(ctx context.Context, f StationFilter) ([]model.Station, error) {
	query, args := buildStationQuery(f)
	query += ` ORDER BY station_name`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storage("filter stations", err)
	}
	defer rows.Close()

	return collectStations(rows)
}

// List returns one page of matching stations, cursor-paginated by name.
func (s *CatalogService) List(ctx context.Context, f StationFilter, limit int, cursor string) ([]model.Station, bool, error) {
	query, args := buildStationQuery(f)
	argIdx := len(args) + 1

	if cursor != "" {
		query += fmt.Sprintf(` AND station_name > $%d`, argIdx)
		args = append(args, cursor)
		argIdx++
	}
	query += fmt.Sprintf(` ORDER BY station_name LIMIT $%d`, argIdx)
	args = append(args, limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, storage("list stations", err)
	}
	defer rows.Close()

	stations, err := collectStations(rows)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(stations) > limit
	if hasMore {
		stations = stations[:limit]
	}
	return stations, hasMore, nil
}

// Count returns the number of available stations.
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM stations WHERE status <> $1`, model.StationStatusRetired).Scan(&n)
	if err != nil {
		return 0, storage("count stations", err)
	}
	return n, nil
}

func buildStationQuery(f StationFilter) (string, []any) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE 1=1`
	var args []any
	argIdx := 1

	add := func(clause string, value any) {
		query += fmt.Sprintf(` AND %s = $%d`, clause, argIdx)
		args = append(args, value)
		argIdx++
	}

	if !f.IncludeRetired {
		query += fmt.Sprintf(` AND status <> $%d`, argIdx)
		args = append(args, model.StationStatusRetired)
		argIdx++
	}
	if f.AccuracyOrder != 0 {
		add("accuracy_order", f.AccuracyOrder)
	}
	if f.Island != "" {
		add("island", f.Island)
	}
	if f.Region != "" {
		add("region", f.Region)
	}
	if f.Province != "" {
		add("province", f.Province)
	}
	if f.Municipality != "" {
		add("municipality", f.Municipality)
	}
	if f.Barangay != "" {
		add("barangay", f.Barangay)
	}

	return query, args
}

func scanStation(row interface{ Scan(dest ...any) error }) (model.Station, error) {
	var st model.Station
	err := row.Scan(
		&st.StationName, &st.AccuracyOrder, &st.AccuracyClassCm,
		&st.Island, &st.Region, &st.Province, &st.Municipality, &st.Barangay,
		&st.Status, &st.Description,
		&st.WGS84.LatDeg, &st.WGS84.LngDeg, &st.WGS84.EllHeight,
		&st.WGS84.Northing, &st.WGS84.Easting, &st.WGS84.Zone,
		&st.PRS92.LatDeg, &st.PRS92.LngDeg, &st.PRS92.EllHeight,
		&st.PRS92.Northing, &st.PRS92.Easting, &st.PRS92.Zone,
		&st.CreatedAt, &st.UpdatedAt,
	)
	return st, err
}

func collectStations(rows pgx.Rows) ([]model.Station, error) {
	var stations []model.Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, storage("scan station", err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, storage("iterate stations", err)
	}
	return stations, nil
}
