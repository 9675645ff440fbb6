package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTMProjector_ZoneSelection(t *testing.T) {
	p := NewUTMProjector()

	out, err := p.Forward(14.6513, 121.0490)
	require.NoError(t, err)
	assert.Equal(t, "51N", out.Zone)

	out, err = p.Forward(-33.8688, 151.2093)
	require.NoError(t, err)
	assert.Equal(t, "56S", out.Zone)

	out, err = p.Forward(14.5, 117.5)
	require.NoError(t, err)
	assert.Equal(t, "50N", out.Zone)
}

func TestUTMProjector_QuezonCityGrid(t *testing.T) {
	p := NewUTMProjector()

	out, err := p.Forward(14.6513, 121.0490)
	require.NoError(t, err)

	// Zone 51N, west of the 123E central meridian.
	assert.InDelta(t, 290000, out.Easting, 6000)
	assert.InDelta(t, 1621000, out.Northing, 6000)
}

func TestUTMProjector_RoundTrip(t *testing.T) {
	p := NewUTMProjector()

	coords := [][2]float64{
		{14.6513, 121.0490},
		{10.3157, 123.8854},
		{21.1204, 121.9},
		{-33.8688, 151.2093},
	}
	for _, c := range coords {
		out, err := p.Forward(c[0], c[1])
		require.NoError(t, err)

		lat, lng, err := p.Inverse(out)
		require.NoError(t, err)
		assert.InDelta(t, c[0], lat, 1e-6)
		assert.InDelta(t, c[1], lng, 1e-6)
	}
}

func TestUTMProjector_InverseRejectsBadZone(t *testing.T) {
	p := NewUTMProjector()

	_, _, err := p.Inverse(Projected{Northing: 1621000, Easting: 290000, Zone: "99X"})
	assert.Error(t, err)

	_, _, err = p.Inverse(Projected{Northing: 1621000, Easting: 290000, Zone: "north"})
	assert.Error(t, err)
}

func TestPTMProjector_ZoneSelection(t *testing.T) {
	p := NewPTMProjector()

	out, err := p.Forward(14.6513, 121.0490)
	require.NoError(t, err)
	assert.Equal(t, "III", out.Zone)

	out, err = p.Forward(9.75, 118.75)
	require.NoError(t, err)
	assert.Equal(t, "II", out.Zone)

	out, err = p.Forward(7.07, 125.61)
	require.NoError(t, err)
	assert.Equal(t, "V", out.Zone)
}

func TestPTMProjector_QuezonCityGrid(t *testing.T) {
	p := NewPTMProjector()

	out, err := p.Forward(14.6513, 121.0490)
	require.NoError(t, err)

	// Zone III central meridian is 121E; the point sits just east of it.
	assert.InDelta(t, 505300, out.Easting, 3000)
	assert.InDelta(t, 1620500, out.Northing, 6000)
}

func TestPTMProjector_RoundTrip(t *testing.T) {
	p := NewPTMProjector()

	coords := [][2]float64{
		{14.6513, 121.0490},
		{10.3157, 123.8854},
		{18.1978, 120.5936},
	}
	for _, c := range coords {
		out, err := p.Forward(c[0], c[1])
		require.NoError(t, err)

		lat, lng, err := p.Inverse(out)
		require.NoError(t, err)
		assert.InDelta(t, c[0], lat, 1e-5)
		assert.InDelta(t, c[1], lng, 1e-5)
	}
}

func TestPTMProjector_InverseRejectsBadZone(t *testing.T) {
	p := NewPTMProjector()

	_, _, err := p.Inverse(Projected{Northing: 1620500, Easting: 505300, Zone: "VI"})
	assert.Error(t, err)
}

func TestPTMProjector_RejectsOutsideArea(t *testing.T) {
	p := NewPTMProjector()

	_, err := p.Forward(51.5074, -0.1278)
	assert.Error(t, err)
}
