package datamodel

import (
	"encoding/json"
	"fmt"
	"math"
)

// Unit tags a magnitude with its physical dimension. A magnitude without
// its unit is meaningless, so unit-bearing fields store a Quantity rather
// than a bare float.
type Unit int

const (
	Dimensionless Unit = iota
	Meter
	SquareMeter
	Degree
	Radian
	Nanosecond
	TeV
	PhotoElectron
)

func (u Unit) String() string {
	switch u {
	case Dimensionless:
		return ""
	case Meter:
		return "m"
	case SquareMeter:
		return "m^2"
	case Degree:
		return "deg"
	case Radian:
		return "rad"
	case Nanosecond:
		return "ns"
	case TeV:
		return "TeV"
	case PhotoElectron:
		return "pe"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the unit as its string form.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// ParseUnit maps the string form used in field tags back to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "":
		return Dimensionless, nil
	case "m":
		return Meter, nil
	case "m^2":
		return SquareMeter, nil
	case "deg":
		return Degree, nil
	case "rad":
		return Radian, nil
	case "ns":
		return Nanosecond, nil
	case "TeV":
		return TeV, nil
	case "pe":
		return PhotoElectron, nil
	}
	return Dimensionless, &ErrUnknownUnit{Tag: s}
}

// Quantity is a magnitude together with its Unit. It deliberately supports
// no implicit arithmetic: combining two quantities with different units is
// an error, and extracting the raw magnitude is an explicit .Value access.
type Quantity struct {
	Value float64
	Unit  Unit
}

func Meters(v float64) Quantity            { return Quantity{Value: v, Unit: Meter} }
func SquareMeters(v float64) Quantity      { return Quantity{Value: v, Unit: SquareMeter} }
func Degrees(v float64) Quantity           { return Quantity{Value: v, Unit: Degree} }
func Radians(v float64) Quantity           { return Quantity{Value: v, Unit: Radian} }
func Nanoseconds(v float64) Quantity       { return Quantity{Value: v, Unit: Nanosecond} }
func TeraElectronVolts(v float64) Quantity { return Quantity{Value: v, Unit: TeV} }
func PhotoElectrons(v float64) Quantity    { return Quantity{Value: v, Unit: PhotoElectron} }

// Add returns the sum of two quantities with identical units.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if q.Unit != other.Unit {
		return Quantity{}, &ErrUnitMismatch{Left: q.Unit, Right: other.Unit}
	}
	return Quantity{Value: q.Value + other.Value, Unit: q.Unit}, nil
}

// Sub returns the difference of two quantities with identical units.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if q.Unit != other.Unit {
		return Quantity{}, &ErrUnitMismatch{Left: q.Unit, Right: other.Unit}
	}
	return Quantity{Value: q.Value - other.Value, Unit: q.Unit}, nil
}

// IsNaN reports whether the magnitude is the not-a-number placeholder used
// by fields that have never been populated.
func (q Quantity) IsNaN() bool {
	return math.IsNaN(q.Value)
}

// MarshalJSON encodes the quantity with the NaN placeholder rendered as
// null, since encoding/json has no representation for NaN.
func (q Quantity) MarshalJSON() ([]byte, error) {
	type quantityJSON struct {
		Value *float64 `json:"value"`
		Unit  Unit     `json:"unit"`
	}
	out := quantityJSON{Unit: q.Unit}
	if !q.IsNaN() {
		v := q.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (q Quantity) String() string {
	if q.Unit == Dimensionless {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}
