package render

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avendano/geoportal/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestTextRenderer_IncludesTicketAndStations(t *testing.T) {
	req := &model.CertificateRequest{
		TicketID:     "HabcDEF123456",
		ClientName:   "Jane Doe",
		Email:        "jane@x.com",
		StationNames: []string{"MMA-1"},
		RequestDate:  time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
	stations := []model.Station{{
		StationName:   "MMA-1",
		AccuracyOrder: 1,
		Municipality:  "Quezon City",
		Province:      "Metro Manila",
		WGS84: model.CoordinateSet{
			LatDeg: ptr(14.6513), LngDeg: ptr(121.0490),
			Northing: ptr(1620941.0), Easting: ptr(289521.0), Zone: ptr("51N"),
		},
	}}

	doc, err := NewTextRenderer().Render(context.Background(), req, stations)
	require.NoError(t, err)

	text := string(doc)
	assert.Contains(t, text, "HabcDEF123456")
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "2026-03-14")
	assert.Contains(t, text, "Station MMA-1 (order 1)")
	assert.Contains(t, text, "Quezon City, Metro Manila")
	assert.Contains(t, text, `14°39'04.680"`)
	assert.Contains(t, text, "zone 51N")
}

func TestTextRenderer_SkipsMissingCoordinateSets(t *testing.T) {
	req := &model.CertificateRequest{TicketID: "Hxyz000001111111", ClientName: "Jane Doe"}
	stations := []model.Station{{StationName: "BARE-1", AccuracyOrder: 3}}

	doc, err := NewTextRenderer().Render(context.Background(), req, stations)
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "WGS84")
	assert.NotContains(t, string(doc), "PRS92")
}
