package datamodel

// DataContainer is the top-level container for all event information.
// Every nested aggregator is an independent instance owned by this event;
// nothing is shared across separately constructed events.
type DataContainer struct {
	R0       R0Container                            `field:"r0" desc:"raw data"`
	R1       R1Container                            `field:"r1" desc:"R1 calibrated data"`
	DL0      DL0Container                           `field:"dl0" desc:"DL0 data volume reduced data"`
	DL1      DL1Container                           `field:"dl1" desc:"DL1 calibrated image"`
	DL2      ReconstructedContainer                 `field:"dl2" desc:"reconstructed shower information"`
	MC       MCEventContainer                       `field:"mc" desc:"Monte-Carlo data"`
	MCHeader MCHeaderContainer                      `field:"mcheader" desc:"Monte-Carlo run header data"`
	Trig     CentralTriggerContainer                `field:"trig" desc:"central trigger information"`
	Count    int64                                  `field:"count" desc:"number of events processed"`
	Inst     InstrumentContainer                    `field:"inst" desc:"instrumental information"`
	Pointing map[uint16]*TelescopePointingContainer `field:"pointing" desc:"telescope pointing positions"`
}

func (DataContainer) ContainerName() string { return "DataContainer" }

func NewDataContainer() *DataContainer {
	return &DataContainer{
		R0:       *NewR0Container(),
		R1:       *NewR1Container(),
		DL0:      *NewDL0Container(),
		DL1:      *NewDL1Container(),
		DL2:      *NewReconstructedContainer(),
		MC:       *NewMCEventContainer(),
		MCHeader: *NewMCHeaderContainer(),
		Trig:     *NewCentralTriggerContainer(),
		Inst:     *NewInstrumentContainer(),
		Pointing: make(map[uint16]*TelescopePointingContainer),
	}
}
