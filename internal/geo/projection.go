package geo

import (
	"fmt"
	"math"

	"github.com/wroge/wgs84"
)

// Projector converts between geographic decimal degrees and a projected
// grid. Implementations own the ellipsoid and datum-shift mathematics;
// callers guarantee finite, range-checked input.
type Projector interface {
	Forward(lat, lng float64) (Projected, error)
	Inverse(p Projected) (lat, lng float64, err error)
}

type spheroid struct {
	a, fi float64
}

func (s spheroid) A() float64  { return s.a }
func (s spheroid) Fi() float64 { return s.fi }

// ---------- UTM (WGS84) ----------

type utmProjector struct{}

// NewUTMProjector returns the standard UTM projection on the WGS84
// ellipsoid. Zones are 6 degrees wide; zone strings carry the hemisphere
// letter, e.g. "51N".
func NewUTMProjector() Projector {
	return utmProjector{}
}

func (utmProjector) Forward(lat, lng float64) (Projected, error) {
	zone := utmZone(lng)
	falseNorthing := 0.0
	hemisphere := "N"
	if lat < 0 {
		falseNorthing = 10000000
		hemisphere = "S"
	}

	crs := wgs84.WGS84().TransverseMercator(utmCentralMeridian(zone), 0, 0.9996, 500000, falseNorthing)
	east, north, _ := wgs84.Transform(wgs84.WGS84().LonLat(), crs)(lng, lat, 0)
	if math.IsNaN(east) || math.IsNaN(north) {
		return Projected{}, fmt.Errorf("utm forward (%v, %v): %w", lat, lng, ErrOutOfRange)
	}

	return Projected{
		Northing: north,
		Easting:  east,
		Zone:     fmt.Sprintf("%d%s", zone, hemisphere),
	}, nil
}

func (utmProjector) Inverse(p Projected) (float64, float64, error) {
	var zone int
	var hemisphere string
	if _, err := fmt.Sscanf(p.Zone, "%d%s", &zone, &hemisphere); err != nil {
		return 0, 0, fmt.Errorf("utm inverse: bad zone %q", p.Zone)
	}
	if zone < 1 || zone > 60 || (hemisphere != "N" && hemisphere != "S") {
		return 0, 0, fmt.Errorf("utm inverse: bad zone %q", p.Zone)
	}
	falseNorthing := 0.0
	if hemisphere == "S" {
		falseNorthing = 10000000
	}

	crs := wgs84.WGS84().TransverseMercator(utmCentralMeridian(zone), 0, 0.9996, 500000, falseNorthing)
	lng, lat, _ := wgs84.Transform(crs, wgs84.WGS84().LonLat())(p.Easting, p.Northing, 0)
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return 0, 0, fmt.Errorf("utm inverse (%v, %v): %w", p.Northing, p.Easting, ErrOutOfRange)
	}
	return lat, lng, nil
}

func utmZone(lng float64) int {
	zone := int(math.Floor((lng+180)/6)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	return zone
}

func utmCentralMeridian(zone int) float64 {
	return float64(zone)*6 - 183
}

// ---------- PTM (PRS92 / Luzon datum) ----------

// PTM zones are 2 degrees wide with central meridians 117..125 E,
// scale factor 0.99995 and a 500 km false easting.
var ptmZones = []string{"I", "II", "III", "IV", "V"}

type ptmProjector struct {
	datum wgs84.Datum
}

// NewPTMProjector returns the Philippine Transverse Mercator projection on
// the PRS92 (Luzon 1911, Clarke 1866 ellipsoid) local datum.
func NewPTMProjector() Projector {
	datum := wgs84.Helmert(
		6378206.4, 294.9786982,
		-127.62, -67.24, -47.04,
		-3.068, 4.903, 1.578,
		-1.06,
	)
	datum.Area = wgs84.AreaFunc(func(lon, lat float64) bool {
		return lon >= 116 && lon <= 128 && lat >= 3 && lat <= 23
	})
	return ptmProjector{datum: datum}
}

func (p ptmProjector) Forward(lat, lng float64) (Projected, error) {
	zone := ptmZone(lng)
	crs := p.datum.TransverseMercator(ptmCentralMeridian(zone), 0, 0.99995, 500000, 0)
	east, north, _ := wgs84.Transform(wgs84.WGS84().LonLat(), crs)(lng, lat, 0)
	if math.IsNaN(east) || math.IsNaN(north) {
		return Projected{}, fmt.Errorf("ptm forward (%v, %v): %w", lat, lng, ErrOutOfRange)
	}

	return Projected{
		Northing: north,
		Easting:  east,
		Zone:     ptmZones[zone],
	}, nil
}

func (p ptmProjector) Inverse(proj Projected) (float64, float64, error) {
	zone := -1
	for i, name := range ptmZones {
		if name == proj.Zone {
			zone = i
			break
		}
	}
	if zone < 0 {
		return 0, 0, fmt.Errorf("ptm inverse: bad zone %q", proj.Zone)
	}

	crs := p.datum.TransverseMercator(ptmCentralMeridian(zone), 0, 0.99995, 500000, 0)
	lng, lat, _ := wgs84.Transform(crs, wgs84.WGS84().LonLat())(proj.Easting, proj.Northing, 0)
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return 0, 0, fmt.Errorf("ptm inverse (%v, %v): %w", proj.Northing, proj.Easting, ErrOutOfRange)
	}
	return lat, lng, nil
}

func ptmZone(lng float64) int {
	zone := int(math.Round((lng - 117) / 2))
	if zone < 0 {
		zone = 0
	}
	if zone > len(ptmZones)-1 {
		zone = len(ptmZones) - 1
	}
	return zone
}

func ptmCentralMeridian(zone int) float64 {
	return 117 + float64(zone)*2
}
