package datamodel

import (
	"math"
	"time"
)

// CentralTriggerContainer holds the central trigger information for one
// event. A zero GPSTime means the stamp was never set.
type CentralTriggerContainer struct {
	GPSTime         time.Time `field:"gps_time" desc:"central average time stamp"`
	TelsWithTrigger []uint16  `field:"tels_with_trigger" desc:"list of telescopes with data"`
}

func (CentralTriggerContainer) ContainerName() string { return "CentralTriggerContainer" }

func NewCentralTriggerContainer() *CentralTriggerContainer {
	return &CentralTriggerContainer{
		TelsWithTrigger: []uint16{},
	}
}

// TelescopePointingContainer holds pointing information for a single
// telescope after all necessary correction and calibration steps. These
// values should be used in the reconstruction to transform between camera
// and sky coordinates.
type TelescopePointingContainer struct {
	Azimuth  Quantity `field:"azimuth" desc:"azimuth, measured N->E" unit:"rad"`
	Altitude Quantity `field:"altitude" desc:"altitude" unit:"rad"`
}

func (TelescopePointingContainer) ContainerName() string { return "TelescopePointingContainer" }

func NewTelescopePointingContainer() *TelescopePointingContainer {
	return &TelescopePointingContainer{
		Azimuth:  Radians(math.NaN()),
		Altitude: Radians(math.NaN()),
	}
}
