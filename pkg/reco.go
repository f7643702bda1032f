package datamodel

// ReconstructedShowerContainer is the standard output of algorithms
// reconstructing the shower geometry.
type ReconstructedShowerContainer struct {
	Alt           Quantity `field:"alt" desc:"reconstructed altitude" unit:"deg"`
	AltUncert     Quantity `field:"alt_uncert" desc:"reconstructed altitude uncertainty" unit:"deg"`
	Az            Quantity `field:"az" desc:"reconstructed azimuth" unit:"deg"`
	AzUncert      Quantity `field:"az_uncert" desc:"reconstructed azimuth uncertainty" unit:"deg"`
	CoreX         Quantity `field:"core_x" desc:"reconstructed x coordinate of the core position" unit:"m"`
	CoreY         Quantity `field:"core_y" desc:"reconstructed y coordinate of the core position" unit:"m"`
	CoreUncert    Quantity `field:"core_uncert" desc:"uncertainty of the reconstructed core position" unit:"m"`
	HMax          float64  `field:"h_max" desc:"reconstructed height of the shower maximum"`
	HMaxUncert    float64  `field:"h_max_uncert" desc:"uncertainty of h_max"`
	IsValid       bool     `field:"is_valid" desc:"true if the shower direction was properly reconstructed by the algorithm"`
	TelIDs        []uint16 `field:"tel_ids" desc:"telescope ids used in the reconstruction of the shower"`
	AverageSize   float64  `field:"average_size" desc:"average size of the images used"`
	GoodnessOfFit float64  `field:"goodness_of_fit" desc:"measure of algorithm success (if fit)"`
}

func (ReconstructedShowerContainer) ContainerName() string { return "ReconstructedShowerContainer" }

func NewReconstructedShowerContainer() *ReconstructedShowerContainer {
	return &ReconstructedShowerContainer{
		Alt:        Degrees(0),
		AltUncert:  Degrees(0),
		Az:         Degrees(0),
		AzUncert:   Degrees(0),
		CoreX:      Meters(0),
		CoreY:      Meters(0),
		CoreUncert: Meters(0),
		TelIDs:     []uint16{},
	}
}

// ReconstructedEnergyContainer is the standard output of algorithms
// estimating the primary energy. The -1 TeV default marks an energy that
// was never computed.
type ReconstructedEnergyContainer struct {
	Energy        Quantity `field:"energy" desc:"reconstructed energy" unit:"TeV"`
	EnergyUncert  Quantity `field:"energy_uncert" desc:"reconstructed energy uncertainty" unit:"TeV"`
	IsValid       bool     `field:"is_valid" desc:"true if the energy was properly reconstructed by the algorithm"`
	TelIDs        []uint16 `field:"tel_ids" desc:"telescope ids used in the reconstruction of the shower"`
	GoodnessOfFit float64  `field:"goodness_of_fit" desc:"goodness of the algorithm fit"`
}

func (ReconstructedEnergyContainer) ContainerName() string { return "ReconstructedEnergyContainer" }

func NewReconstructedEnergyContainer() *ReconstructedEnergyContainer {
	return &ReconstructedEnergyContainer{
		Energy:       TeraElectronVolts(-1),
		EnergyUncert: TeraElectronVolts(-1),
		TelIDs:       []uint16{},
	}
}

// ParticleClassificationContainer is the standard output of gamma/hadron
// classification algorithms.
type ParticleClassificationContainer struct {
	// Prediction is defined between [0,1], where values close to 0 are
	// more gamma-like and values close to 1 more hadron-like.
	Prediction    float64  `field:"prediction" desc:"prediction of the classifier, 0 gamma-like to 1 hadron-like"`
	IsValid       bool     `field:"is_valid" desc:"true if the prediction was successful within the algorithm validity range"`
	TelIDs        []uint16 `field:"tel_ids" desc:"telescope ids used in the reconstruction of the shower"`
	GoodnessOfFit float64  `field:"goodness_of_fit" desc:"goodness of the algorithm fit"`
}

func (ParticleClassificationContainer) ContainerName() string {
	return "ParticleClassificationContainer"
}

func NewParticleClassificationContainer() *ParticleClassificationContainer {
	return &ParticleClassificationContainer{
		TelIDs: []uint16{},
	}
}

// ReconstructedContainer collects reconstructed shower info from multiple
// algorithms, keyed by algorithm name.
type ReconstructedContainer struct {
	Shower         map[string]*ReconstructedShowerContainer    `field:"shower" desc:"map of algorithm name to shower info"`
	Energy         map[string]*ReconstructedEnergyContainer    `field:"energy" desc:"map of algorithm name to energy info"`
	Classification map[string]*ParticleClassificationContainer `field:"classification" desc:"map of algorithm name to classification info"`
}

func (ReconstructedContainer) ContainerName() string { return "ReconstructedContainer" }

func NewReconstructedContainer() *ReconstructedContainer {
	return &ReconstructedContainer{
		Shower:         make(map[string]*ReconstructedShowerContainer),
		Energy:         make(map[string]*ReconstructedEnergyContainer),
		Classification: make(map[string]*ParticleClassificationContainer),
	}
}

// ShowerAlgorithms returns the shower algorithm names in sorted order.
func (c *ReconstructedContainer) ShowerAlgorithms() []string {
	return sortedKeys(c.Shower)
}

// EnergyAlgorithms returns the energy algorithm names in sorted order.
func (c *ReconstructedContainer) EnergyAlgorithms() []string {
	return sortedKeys(c.Energy)
}

// ClassificationAlgorithms returns the classification algorithm names in
// sorted order.
func (c *ReconstructedContainer) ClassificationAlgorithms() []string {
	return sortedKeys(c.Classification)
}
