package datamodel

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Container is implemented by every record type in the data model.
type Container interface {
	ContainerName() string
}

// FieldSchema describes one declared field of a container type: the
// snake_case name used by serializers, the Go field name, the
// human-readable description, the physical unit and the value a freshly
// constructed instance carries.
type FieldSchema struct {
	Name        string
	GoName      string
	Description string
	Unit        Unit
	Default     any
}

// FieldValue is one field of a live container instance, as produced by
// Fields. Value holds the current content, which may be a scalar, a
// slice, a nested container or a keyed map of containers.
type FieldValue struct {
	Name        string
	GoName      string
	Description string
	Unit        Unit
	Value       any
}

var registry = map[string]func() Container{
	"R0CameraContainer":               func() Container { return NewR0CameraContainer() },
	"R0Container":                     func() Container { return NewR0Container() },
	"R1CameraContainer":               func() Container { return NewR1CameraContainer() },
	"R1Container":                     func() Container { return NewR1Container() },
	"DL0CameraContainer":              func() Container { return NewDL0CameraContainer() },
	"DL0Container":                    func() Container { return NewDL0Container() },
	"DL1CameraContainer":              func() Container { return NewDL1CameraContainer() },
	"DL1Container":                    func() Container { return NewDL1Container() },
	"CameraCalibrationContainer":      func() Container { return NewCameraCalibrationContainer() },
	"MCCameraEventContainer":          func() Container { return NewMCCameraEventContainer() },
	"MCEventContainer":                func() Container { return NewMCEventContainer() },
	"MCHeaderContainer":               func() Container { return NewMCHeaderContainer() },
	"CentralTriggerContainer":         func() Container { return NewCentralTriggerContainer() },
	"TelescopePointingContainer":      func() Container { return NewTelescopePointingContainer() },
	"ReconstructedShowerContainer":    func() Container { return NewReconstructedShowerContainer() },
	"ReconstructedEnergyContainer":    func() Container { return NewReconstructedEnergyContainer() },
	"ParticleClassificationContainer": func() Container { return NewParticleClassificationContainer() },
	"ReconstructedContainer":          func() Container { return NewReconstructedContainer() },
	"InstrumentContainer":             func() Container { return NewInstrumentContainer() },
	"DataContainer":                   func() Container { return NewDataContainer() },
	"MuonRingParameter":               func() Container { return NewMuonRingParameter() },
	"MuonIntensityParameter":          func() Container { return NewMuonIntensityParameter() },
	"HillasParametersContainer":       func() Container { return NewHillasParametersContainer() },
}

// Names returns the registered container type names in sorted order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// New returns a freshly constructed, fully defaulted instance of the
// named container type.
func New(name string) (Container, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, &ErrUnknownContainer{Name: name}
	}
	return factory(), nil
}

// Schema returns the static field table of the named container type. The
// Default of each entry is taken from a freshly constructed instance.
func Schema(name string) ([]FieldSchema, error) {
	container, err := New(name)
	if err != nil {
		return nil, err
	}
	fields, err := Fields(container)
	if err != nil {
		return nil, err
	}
	schema := make([]FieldSchema, len(fields))
	for i, f := range fields {
		schema[i] = FieldSchema{
			Name:        f.Name,
			GoName:      f.GoName,
			Description: f.Description,
			Unit:        f.Unit,
			Default:     f.Value,
		}
	}
	return schema, nil
}

// Fields walks a live container instance and returns every declared
// field with its current value, in declaration order. External
// serializers use this to persist and restore containers generically,
// recursing into values that are themselves containers or keyed maps of
// containers.
func Fields(c Container) ([]FieldValue, error) {
	v := reflect.ValueOf(c)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, &ErrNotStruct{Container: c.ContainerName()}
	}
	t := v.Type()
	fields := make([]FieldValue, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		unit, err := ParseUnit(sf.Tag.Get("unit"))
		if err != nil {
			return nil, err
		}
		name := sf.Tag.Get("field")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, FieldValue{
			Name:        name,
			GoName:      sf.Name,
			Description: sf.Tag.Get("desc"),
			Unit:        unit,
			Value:       v.Field(i).Interface(),
		})
	}
	return fields, nil
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
