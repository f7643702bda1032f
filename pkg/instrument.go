package datamodel

// InstrumentContainer stores header info that does not change with event:
// per-run telescope geometry and optics, keyed by telescope id. It is
// populated once per run by the instrument-description subsystem and is
// logically immutable across the events of that run.
type InstrumentContainer struct {
	SubarrayName   string                 `field:"subarray" desc:"name of the subarray from the instrument module"`
	TelescopeIDs   []uint16               `field:"telescope_ids" desc:"list of IDs of telescopes used in the run"`
	PixelPos       map[uint16][][]float64 `field:"pixel_pos" desc:"map of tel_id to pixel positions"`
	OpticalFoclen  map[uint16]float64     `field:"optical_foclen" desc:"map of tel_id to focal length"`
	MirrorDishArea map[uint16]Quantity    `field:"mirror_dish_area" desc:"map of tel_id to the area of the mirror dish" unit:"m^2"`
	MirrorNumTiles map[uint16]int32       `field:"mirror_numtiles" desc:"map of tel_id to the number of tiles for the mirror"`
	TelPos         map[uint16][]float64   `field:"tel_pos" desc:"map of tel_id to telescope position"`
	NumPixels      map[uint16]int32       `field:"num_pixels" desc:"map of tel_id to number of pixels in camera"`
	NumChannels    map[uint16]int32       `field:"num_channels" desc:"map of tel_id to number of channels"`
}

func (InstrumentContainer) ContainerName() string { return "InstrumentContainer" }

func NewInstrumentContainer() *InstrumentContainer {
	return &InstrumentContainer{
		SubarrayName:   "MonteCarloArray",
		TelescopeIDs:   []uint16{},
		PixelPos:       make(map[uint16][][]float64),
		OpticalFoclen:  make(map[uint16]float64),
		MirrorDishArea: make(map[uint16]Quantity),
		MirrorNumTiles: make(map[uint16]int32),
		TelPos:         make(map[uint16][]float64),
		NumPixels:      make(map[uint16]int32),
		NumChannels:    make(map[uint16]int32),
	}
}
