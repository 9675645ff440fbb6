package model

import "time"

// Datum identifiers for the two reference frames the catalog stores.
const (
	DatumWGS84 = "wgs84"
	DatumPRS92 = "prs92"
)

// StationStatusRetired marks stations withdrawn from the active network.
// Retired stations are excluded from catalog reads unless the caller opts in.
const StationStatusRetired = 5

// Station is one geodetic control point. Identity is the station name;
// records are maintained by the catalog management tooling and read-only
// from the search and request core.
type Station struct {
	StationName     string   `json:"station_name" db:"station_name"`
	AccuracyOrder   int      `json:"accuracy_order" db:"accuracy_order"`
	AccuracyClassCm *float64 `json:"accuracy_class_cm,omitempty" db:"accuracy_class_cm"`
	Island          string   `json:"island" db:"island"`
	Region          string   `json:"region" db:"region"`
	Province        string   `json:"province" db:"province"`
	Municipality    string   `json:"municipality" db:"municipality"`
	Barangay        string   `json:"barangay" db:"barangay"`
	Status          int      `json:"status" db:"status"`
	Description     string   `json:"description" db:"description"`

	WGS84 CoordinateSet `json:"wgs84"`
	PRS92 CoordinateSet `json:"prs92"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CoordinateSet holds one datum's stored representations for a station.
// Decimal degrees are the single source of truth; the DMS form is derived
// on read and never stored or edited independently.
type CoordinateSet struct {
	LatDeg    *float64 `json:"lat_deg,omitempty" db:"lat_deg"`
	LngDeg    *float64 `json:"lng_deg,omitempty" db:"lng_deg"`
	EllHeight *float64 `json:"ellipsoidal_height_m,omitempty" db:"ell_height_m"`
	Northing  *float64 `json:"northing,omitempty" db:"northing"`
	Easting   *float64 `json:"easting,omitempty" db:"easting"`
	Zone      *string  `json:"zone,omitempty" db:"zone"`
}

// HasPosition reports whether the set carries a usable lat/lng pair.
func (c CoordinateSet) HasPosition() bool {
	return c.LatDeg != nil && c.LngDeg != nil
}
