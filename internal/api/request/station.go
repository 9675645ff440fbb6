package request

import (
	"net/http"
	"strconv"

	"github.com/avendano/geoportal/internal/core"
)

// ParseStationFilter builds a catalog filter from query parameters. Absent
// parameters leave their field zero, which the catalog treats as "any".
func ParseStationFilter(r *http.Request) core.StationFilter {
	q := r.URL.Query()

	f := core.StationFilter{
		Island:       q.Get("island"),
		Region:       q.Get("region"),
		Province:     q.Get("province"),
		Municipality: q.Get("municipality"),
		Barangay:     q.Get("barangay"),
	}

	if raw := q.Get("accuracy_order"); raw != "" {
		if order, err := strconv.Atoi(raw); err == nil && order > 0 {
			f.AccuracyOrder = order
		}
	}
	if raw := q.Get("include_retired"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.IncludeRetired = v
		}
	}

	return f
}
