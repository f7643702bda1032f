package datamodel_test

import (
	"encoding/json"
	"math"
	"testing"

	datamodel "github.com/cta-obs/datamodel_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitString(t *testing.T) {
	tests := []struct {
		name string
		unit datamodel.Unit
		want string
	}{
		{"dimensionless", datamodel.Dimensionless, ""},
		{"meter", datamodel.Meter, "m"},
		{"square meter", datamodel.SquareMeter, "m^2"},
		{"degree", datamodel.Degree, "deg"},
		{"radian", datamodel.Radian, "rad"},
		{"nanosecond", datamodel.Nanosecond, "ns"},
		{"TeV", datamodel.TeV, "TeV"},
		{"photoelectron", datamodel.PhotoElectron, "pe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.String())
		})
	}
}

func TestParseUnitRoundTrip(t *testing.T) {
	units := []datamodel.Unit{
		datamodel.Dimensionless,
		datamodel.Meter,
		datamodel.SquareMeter,
		datamodel.Degree,
		datamodel.Radian,
		datamodel.Nanosecond,
		datamodel.TeV,
		datamodel.PhotoElectron,
	}

	for _, unit := range units {
		parsed, err := datamodel.ParseUnit(unit.String())
		require.NoError(t, err)
		assert.Equal(t, unit, parsed)
	}
}

func TestParseUnitUnknown(t *testing.T) {
	_, err := datamodel.ParseUnit("furlong")
	require.Error(t, err)

	var unknown *datamodel.ErrUnknownUnit
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "furlong", unknown.Tag)
}

func TestQuantityAdd(t *testing.T) {
	sum, err := datamodel.Meters(1.5).Add(datamodel.Meters(2.5))
	require.NoError(t, err)
	assert.Equal(t, datamodel.Meters(4), sum)
}

func TestQuantityAddMismatch(t *testing.T) {
	_, err := datamodel.Meters(1).Add(datamodel.Degrees(1))
	require.Error(t, err)

	var mismatch *datamodel.ErrUnitMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, datamodel.Meter, mismatch.Left)
	assert.Equal(t, datamodel.Degree, mismatch.Right)
}

func TestQuantitySub(t *testing.T) {
	diff, err := datamodel.TeraElectronVolts(3).Sub(datamodel.TeraElectronVolts(1))
	require.NoError(t, err)
	assert.Equal(t, datamodel.TeraElectronVolts(2), diff)

	_, err = datamodel.TeraElectronVolts(3).Sub(datamodel.Meters(1))
	assert.Error(t, err)
}

func TestQuantityIsNaN(t *testing.T) {
	assert.True(t, datamodel.Radians(math.NaN()).IsNaN())
	assert.False(t, datamodel.Radians(0).IsNaN())
}

func TestQuantityJSON(t *testing.T) {
	tests := []struct {
		name     string
		quantity datamodel.Quantity
		want     string
	}{
		{"plain magnitude", datamodel.TeraElectronVolts(2.5), `{"value":2.5,"unit":"TeV"}`},
		{"zero", datamodel.Meters(0), `{"value":0,"unit":"m"}`},
		{"NaN placeholder", datamodel.Radians(math.NaN()), `{"value":null,"unit":"rad"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.quantity)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "2.5 TeV", datamodel.TeraElectronVolts(2.5).String())
	assert.Equal(t, "0.7", datamodel.Quantity{Value: 0.7}.String())
}
