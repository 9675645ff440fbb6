package request

import (
	"fmt"
	"net/http"
	"strconv"
)

// SearchParams holds a parsed proximity search query.
type SearchParams struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

// ParseSearch extracts lat/lng/radius_km from query parameters. A missing
// radius falls back to defaultRadiusKm; range checks stay in the service.
func ParseSearch(r *http.Request, defaultRadiusKm float64) (SearchParams, error) {
	q := r.URL.Query()

	lat, err := parseFloatParam(q.Get("lat"), "lat")
	if err != nil {
		return SearchParams{}, err
	}
	lng, err := parseFloatParam(q.Get("lng"), "lng")
	if err != nil {
		return SearchParams{}, err
	}

	radius := defaultRadiusKm
	if raw := q.Get("radius_km"); raw != "" {
		if radius, err = parseFloatParam(raw, "radius_km"); err != nil {
			return SearchParams{}, err
		}
	}

	return SearchParams{Lat: lat, Lng: lng, RadiusKm: radius}, nil
}

func parseFloatParam(raw, name string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", name)
	}
	return v, nil
}
