package datamodel

// MCCameraEventContainer holds Monte-Carlo data for a single telescope
// that changes per event.
type MCCameraEventContainer struct {
	PhotoElectronImage  []float64   `field:"photo_electron_image" desc:"reference image in pure photoelectrons, with no noise"`
	ReferencePulseShape [][]float64 `field:"reference_pulse_shape" desc:"reference pulse shape for each channel"`
	TimeSlice           Quantity    `field:"time_slice" desc:"width of time slice" unit:"ns"`
	DCToPE              [][]float64 `field:"dc_to_pe" desc:"DC/PE calibration arrays from MC file"`
	Pedestal            [][]float64 `field:"pedestal" desc:"pedestal calibration arrays from MC file"`
	AzimuthRaw          float64     `field:"azimuth_raw" desc:"raw azimuth angle [radians from N->E] for the telescope"`
	AltitudeRaw         float64     `field:"altitude_raw" desc:"raw altitude angle [radians] for the telescope"`
	AzimuthCor          float64     `field:"azimuth_cor" desc:"tracking azimuth corrected for pointing errors for the telescope"`
	AltitudeCor         float64     `field:"altitude_cor" desc:"tracking altitude corrected for pointing errors for the telescope"`
}

func (MCCameraEventContainer) ContainerName() string { return "MCCameraEventContainer" }

func NewMCCameraEventContainer() *MCCameraEventContainer {
	return &MCCameraEventContainer{
		TimeSlice: Nanoseconds(0),
	}
}

// MCEventContainer holds the Monte-Carlo truth for one simulated event.
type MCEventContainer struct {
	Energy    Quantity                           `field:"energy" desc:"Monte-Carlo energy" unit:"TeV"`
	Alt       Quantity                           `field:"alt" desc:"Monte-Carlo altitude" unit:"deg"`
	Az        Quantity                           `field:"az" desc:"Monte-Carlo azimuth" unit:"deg"`
	CoreX     Quantity                           `field:"core_x" desc:"MC core position" unit:"m"`
	CoreY     Quantity                           `field:"core_y" desc:"MC core position" unit:"m"`
	HFirstInt float64                            `field:"h_first_int" desc:"height of first interaction"`
	Tel       map[uint16]*MCCameraEventContainer `field:"tel" desc:"map of tel_id to MCCameraEventContainer"`
}

func (MCEventContainer) ContainerName() string { return "MCEventContainer" }

func NewMCEventContainer() *MCEventContainer {
	return &MCEventContainer{
		Energy: TeraElectronVolts(0),
		Alt:    Degrees(0),
		Az:     Degrees(0),
		CoreX:  Meters(0),
		CoreY:  Meters(0),
		Tel:    make(map[uint16]*MCCameraEventContainer),
	}
}

func (c *MCEventContainer) SortedTelIDs() []uint16 {
	return sortedKeys(c.Tel)
}

// MCHeaderContainer holds Monte-Carlo information that does not change
// per event.
type MCHeaderContainer struct {
	// Depending on the tracking mode this is either
	// [0]=azimuth, [1]=altitude or [0]=R.A., [1]=declination.
	RunArrayDirection []float64 `field:"run_array_direction" desc:"tracking/pointing direction in radians"`
}

func (MCHeaderContainer) ContainerName() string { return "MCHeaderContainer" }

func NewMCHeaderContainer() *MCHeaderContainer {
	return &MCHeaderContainer{
		RunArrayDirection: []float64{},
	}
}
