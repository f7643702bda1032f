package datamodel

// R0CameraContainer holds raw readout data from a single telescope.
type R0CameraContainer struct {
	ADCSums    [][]int32   `field:"adc_sums" desc:"integrated ADC data (n_channels x n_pixels)"`
	ADCSamples [][][]int16 `field:"adc_samples" desc:"ADC samples (n_channels x n_pixels x n_samples)"`
	NumSamples int32       `field:"num_samples" desc:"number of time samples for telescope"`
}

func (R0CameraContainer) ContainerName() string { return "R0CameraContainer" }

func NewR0CameraContainer() *R0CameraContainer {
	return &R0CameraContainer{}
}

// R0Container holds a merged raw data event.
type R0Container struct {
	RunID        int32                         `field:"run_id" desc:"run id number"`
	EventID      int32                         `field:"event_id" desc:"event id number"`
	TelsWithData []uint16                      `field:"tels_with_data" desc:"list of telescopes with data"`
	Tel          map[uint16]*R0CameraContainer `field:"tel" desc:"map of tel_id to R0CameraContainer"`
}

func (R0Container) ContainerName() string { return "R0Container" }

func NewR0Container() *R0Container {
	return &R0Container{
		RunID:        -1,
		EventID:      -1,
		TelsWithData: []uint16{},
		Tel:          make(map[uint16]*R0CameraContainer),
	}
}

// SortedTelIDs returns the telescope ids present in Tel in ascending
// order, for deterministic iteration by serializers.
func (c *R0Container) SortedTelIDs() []uint16 {
	return sortedKeys(c.Tel)
}

// R1CameraContainer holds r1 calibrated data from a single telescope.
type R1CameraContainer struct {
	PESamples [][][]float32 `field:"pe_samples" desc:"p.e. samples (n_channels x n_pixels x n_samples)"`
}

func (R1CameraContainer) ContainerName() string { return "R1CameraContainer" }

func NewR1CameraContainer() *R1CameraContainer {
	return &R1CameraContainer{}
}

// R1Container holds an r1 calibrated data event.
type R1Container struct {
	RunID        int32                         `field:"run_id" desc:"run id number"`
	EventID      int32                         `field:"event_id" desc:"event id number"`
	TelsWithData []uint16                      `field:"tels_with_data" desc:"list of telescopes with data"`
	Tel          map[uint16]*R1CameraContainer `field:"tel" desc:"map of tel_id to R1CameraContainer"`
}

func (R1Container) ContainerName() string { return "R1Container" }

func NewR1Container() *R1Container {
	return &R1Container{
		RunID:        -1,
		EventID:      -1,
		TelsWithData: []uint16{},
		Tel:          make(map[uint16]*R1CameraContainer),
	}
}

func (c *R1Container) SortedTelIDs() []uint16 {
	return sortedKeys(c.Tel)
}

// DL0CameraContainer holds data volume reduced dl0 data from a single
// telescope.
type DL0CameraContainer struct {
	PESamples [][][]float32 `field:"pe_samples" desc:"data volume reduced p.e. samples (n_channels x n_pixels x n_samples)"`
}

func (DL0CameraContainer) ContainerName() string { return "DL0CameraContainer" }

func NewDL0CameraContainer() *DL0CameraContainer {
	return &DL0CameraContainer{}
}

// DL0Container holds a data volume reduced event.
type DL0Container struct {
	RunID        int32                          `field:"run_id" desc:"run id number"`
	EventID      int32                          `field:"event_id" desc:"event id number"`
	TelsWithData []uint16                       `field:"tels_with_data" desc:"list of telescopes with data"`
	Tel          map[uint16]*DL0CameraContainer `field:"tel" desc:"map of tel_id to DL0CameraContainer"`
}

func (DL0Container) ContainerName() string { return "DL0Container" }

func NewDL0Container() *DL0Container {
	return &DL0Container{
		RunID:        -1,
		EventID:      -1,
		TelsWithData: []uint16{},
		Tel:          make(map[uint16]*DL0CameraContainer),
	}
}

func (c *DL0Container) SortedTelIDs() []uint16 {
	return sortedKeys(c.Tel)
}
