// Package render produces the certificate document attached to
// fulfillment email. The production PDF layout is an external
// collaborator; the plain-text renderer here keeps the fulfillment path
// complete without it.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/avendano/geoportal/internal/geo"
	"github.com/avendano/geoportal/internal/model"
)

type TextRenderer struct{}

func NewTextRenderer() TextRenderer {
	return TextRenderer{}
}

func (TextRenderer) Render(ctx context.Context, req *model.CertificateRequest, stations []model.Station) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "CERTIFICATION OF GEODETIC CONTROL POINT DATA\n\n")
	fmt.Fprintf(&b, "Ticket:       %s\n", req.TicketID)
	fmt.Fprintf(&b, "Requested by: %s\n", req.ClientName)
	fmt.Fprintf(&b, "Request date: %s\n\n", req.RequestDate.Format("2006-01-02"))

	for _, st := range stations {
		fmt.Fprintf(&b, "Station %s (order %d)\n", st.StationName, st.AccuracyOrder)
		if st.Municipality != "" || st.Province != "" {
			fmt.Fprintf(&b, "  Location: %s\n", locationLine(st))
		}
		writeCoordinateSet(&b, "WGS84", st.WGS84)
		writeCoordinateSet(&b, "PRS92", st.PRS92)
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func locationLine(st model.Station) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{st.Barangay, st.Municipality, st.Province, st.Island} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func writeCoordinateSet(b *strings.Builder, datum string, set model.CoordinateSet) {
	if !set.HasPosition() {
		return
	}
	latDMS, _ := geo.ToDMS(*set.LatDeg, geo.DefaultSecondsPrecision)
	lngDMS, _ := geo.ToDMS(*set.LngDeg, geo.DefaultSecondsPrecision)
	fmt.Fprintf(b, "  %s: %s lat, %s lng", datum, latDMS, lngDMS)
	if set.Northing != nil && set.Easting != nil && set.Zone != nil {
		fmt.Fprintf(b, " (N %.3f, E %.3f, zone %s)", *set.Northing, *set.Easting, *set.Zone)
	}
	b.WriteString("\n")
}
