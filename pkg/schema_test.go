package datamodel_test

import (
	"encoding/json"
	"testing"

	datamodel "github.com/cta-obs/datamodel_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	want := []string{
		"CameraCalibrationContainer",
		"CentralTriggerContainer",
		"DL0CameraContainer",
		"DL0Container",
		"DL1CameraContainer",
		"DL1Container",
		"DataContainer",
		"HillasParametersContainer",
		"InstrumentContainer",
		"MCCameraEventContainer",
		"MCEventContainer",
		"MCHeaderContainer",
		"MuonIntensityParameter",
		"MuonRingParameter",
		"ParticleClassificationContainer",
		"R0CameraContainer",
		"R0Container",
		"R1CameraContainer",
		"R1Container",
		"ReconstructedContainer",
		"ReconstructedEnergyContainer",
		"ReconstructedShowerContainer",
		"TelescopePointingContainer",
	}

	assert.Equal(t, want, datamodel.Names())
}

func TestNewMatchesContainerName(t *testing.T) {
	for _, name := range datamodel.Names() {
		container, err := datamodel.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, container.ContainerName())
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := datamodel.New("WobblyContainer")
	require.Error(t, err)

	var unknown *datamodel.ErrUnknownContainer
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "WobblyContainer", unknown.Name)
}

func fieldNames(fields []datamodel.FieldSchema) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// The walk must enumerate exactly the documented field set, in
// declaration order.
func TestSchemaFieldSets(t *testing.T) {
	tests := []struct {
		container string
		want      []string
	}{
		{
			"DataContainer",
			[]string{"r0", "r1", "dl0", "dl1", "dl2", "mc", "mcheader", "trig", "count", "inst", "pointing"},
		},
		{
			"R0Container",
			[]string{"run_id", "event_id", "tels_with_data", "tel"},
		},
		{
			"ReconstructedShowerContainer",
			[]string{"alt", "alt_uncert", "az", "az_uncert", "core_x", "core_y", "core_uncert",
				"h_max", "h_max_uncert", "is_valid", "tel_ids", "average_size", "goodness_of_fit"},
		},
		{
			"HillasParametersContainer",
			[]string{"intensity", "x", "y", "r", "phi", "length", "width", "psi", "skewness", "kurtosis"},
		},
		{
			"MCCameraEventContainer",
			[]string{"photo_electron_image", "reference_pulse_shape", "time_slice", "dc_to_pe",
				"pedestal", "azimuth_raw", "altitude_raw", "azimuth_cor", "altitude_cor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.container, func(t *testing.T) {
			schema, err := datamodel.Schema(tt.container)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fieldNames(schema))
		})
	}
}

func TestSchemaUnits(t *testing.T) {
	tests := []struct {
		container string
		field     string
		want      datamodel.Unit
	}{
		{"DL1CameraContainer", "image", datamodel.PhotoElectron},
		{"MCEventContainer", "energy", datamodel.TeV},
		{"MCEventContainer", "core_x", datamodel.Meter},
		{"MCCameraEventContainer", "time_slice", datamodel.Nanosecond},
		{"TelescopePointingContainer", "azimuth", datamodel.Radian},
		{"InstrumentContainer", "mirror_dish_area", datamodel.SquareMeter},
		{"HillasParametersContainer", "psi", datamodel.Degree},
		{"HillasParametersContainer", "intensity", datamodel.Dimensionless},
	}

	for _, tt := range tests {
		t.Run(tt.container+"/"+tt.field, func(t *testing.T) {
			schema, err := datamodel.Schema(tt.container)
			require.NoError(t, err)
			for _, f := range schema {
				if f.Name == tt.field {
					assert.Equal(t, tt.want, f.Unit)
					return
				}
			}
			t.Fatalf("field %s not found in %s", tt.field, tt.container)
		})
	}
}

// Schema defaults are defined as the field values of a freshly
// constructed instance; the two views must agree for every container.
func TestSchemaDefaultsMatchFreshInstance(t *testing.T) {
	for _, name := range datamodel.Names() {
		t.Run(name, func(t *testing.T) {
			schema, err := datamodel.Schema(name)
			require.NoError(t, err)

			container, err := datamodel.New(name)
			require.NoError(t, err)
			fields, err := datamodel.Fields(container)
			require.NoError(t, err)

			require.Len(t, fields, len(schema))
			for i, f := range fields {
				assert.Equal(t, schema[i].Name, f.Name)
				assert.Equal(t, schema[i].GoName, f.GoName)
				assert.Equal(t, schema[i].Description, f.Description)
				assert.Equal(t, schema[i].Unit, f.Unit)
				assertSameValue(t, schema[i].Default, f.Value)
			}
		})
	}
}

// assertSameValue compares defaults, treating the NaN pointing sentinel
// as equal to itself (DeepEqual does not).
func assertSameValue(t *testing.T, want, got any) {
	t.Helper()
	if wq, ok := want.(datamodel.Quantity); ok && wq.IsNaN() {
		gq, ok := got.(datamodel.Quantity)
		require.True(t, ok)
		assert.Equal(t, wq.Unit, gq.Unit)
		assert.True(t, gq.IsNaN())
		return
	}
	assert.Equal(t, want, got)
}

// Fields must see mutations made after construction.
func TestFieldsSeeCurrentValues(t *testing.T) {
	energy := datamodel.NewReconstructedEnergyContainer()
	energy.Energy = datamodel.TeraElectronVolts(1.7)
	energy.IsValid = true

	fields, err := datamodel.Fields(energy)
	require.NoError(t, err)

	byName := make(map[string]any, len(fields))
	for _, f := range fields {
		byName[f.Name] = f.Value
	}
	assert.Equal(t, datamodel.TeraElectronVolts(1.7), byName["energy"])
	assert.Equal(t, true, byName["is_valid"])
}

// Every registered schema must survive JSON encoding, NaN-radian
// pointing defaults included.
func TestSchemaJSONEncodes(t *testing.T) {
	schemas := make(map[string][]datamodel.FieldSchema)
	for _, name := range datamodel.Names() {
		schema, err := datamodel.Schema(name)
		require.NoError(t, err)
		schemas[name] = schema

		_, err = json.Marshal(schema)
		require.NoError(t, err, "schema of %s does not encode", name)
	}

	data, err := json.MarshalIndent(schemas, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value": null`)
}

func TestEveryFieldHasDescription(t *testing.T) {
	for _, name := range datamodel.Names() {
		schema, err := datamodel.Schema(name)
		require.NoError(t, err)
		for _, f := range schema {
			assert.NotEmpty(t, f.Description, "%s.%s has no description", name, f.Name)
		}
	}
}
