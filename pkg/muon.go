package datamodel

// MuonRingParameter holds the output of a muon ring fit for one
// telescope and event.
type MuonRingParameter struct {
	RunID         int32   `field:"run_id" desc:"run identification number"`
	EventID       int32   `field:"event_id" desc:"event identification number"`
	TelID         uint16  `field:"tel_id" desc:"telescope identification number"`
	RingCenterX   float64 `field:"ring_center_x" desc:"centre (x) of the fitted muon ring"`
	RingCenterY   float64 `field:"ring_center_y" desc:"centre (y) of the fitted muon ring"`
	RingRadius    float64 `field:"ring_radius" desc:"radius of the fitted muon ring"`
	RingChi2Fit   float64 `field:"ring_chi2_fit" desc:"chisquare of the muon ring fit"`
	RingCovMatrix float64 `field:"ring_cov_matrix" desc:"covariance matrix of the muon ring fit"`
	RingFitMethod string  `field:"ring_fit_method" desc:"fitting method used for the muon ring"`
	InputFile     string  `field:"inputfile" desc:"input file"`
}

func (MuonRingParameter) ContainerName() string { return "MuonRingParameter" }

func NewMuonRingParameter() *MuonRingParameter {
	return &MuonRingParameter{}
}

// MuonIntensityParameter holds the output of a muon intensity fit for
// one telescope and event.
type MuonIntensityParameter struct {
	RunID                 int32     `field:"run_id" desc:"run identification number"`
	EventID               int32     `field:"event_id" desc:"event identification number"`
	TelID                 uint16    `field:"tel_id" desc:"telescope identification number"`
	RingCompleteness      float64   `field:"ring_completeness" desc:"fraction of ring present"`
	RingNumPixel          int32     `field:"ring_num_pixel" desc:"number of pixels in the ring image"`
	RingSize              float64   `field:"ring_size" desc:"size of the ring in pe"`
	OffRingSize           float64   `field:"off_ring_size" desc:"image size outside of ring in pe"`
	RingWidth             float64   `field:"ring_width" desc:"width of the muon ring in degrees"`
	RingTimeWidth         float64   `field:"ring_time_width" desc:"duration of the ring image sequence"`
	ImpactParameter       float64   `field:"impact_parameter" desc:"distance of muon impact position from centre of mirror"`
	ImpactParameterChi2   float64   `field:"impact_parameter_chi2" desc:"impact parameter chi squared"`
	IntensityCovMatrix    float64   `field:"intensity_cov_matrix" desc:"covariance matrix of intensity"`
	ImpactParameterPosX   float64   `field:"impact_parameter_pos_x" desc:"impact parameter x position"`
	ImpactParameterPosY   float64   `field:"impact_parameter_pos_y" desc:"impact parameter y position"`
	COGX                  float64   `field:"cog_x" desc:"centre of gravity x"`
	COGY                  float64   `field:"cog_y" desc:"centre of gravity y"`
	Prediction            []float64 `field:"prediction" desc:"predicted charge in all pixels"`
	Mask                  []bool    `field:"mask" desc:"mask used on the image for fitting"`
	OpticalEfficiencyMuon float64   `field:"optical_efficiency_muon" desc:"optical efficiency muon"`
	IntensityFitMethod    string    `field:"intensity_fit_method" desc:"intensity fit method"`
	InputFile             string    `field:"inputfile" desc:"input file"`
}

func (MuonIntensityParameter) ContainerName() string { return "MuonIntensityParameter" }

func NewMuonIntensityParameter() *MuonIntensityParameter {
	return &MuonIntensityParameter{
		Prediction: []float64{},
		Mask:       []bool{},
	}
}
