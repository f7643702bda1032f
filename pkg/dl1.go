package datamodel

// DL1CameraContainer stores the output of camera calibration, e.g. the
// final calibrated image in intensity units and other per-event calculated
// calibration information.
type DL1CameraContainer struct {
	Image            []float64     `field:"image" desc:"calibrated camera image" unit:"pe"`
	ExtractedSamples [][][]bool    `field:"extracted_samples" desc:"samples included in the charge extraction by the chosen extractor (n_channels x n_pixels x n_samples)"`
	PeakPos          [][]float64   `field:"peakpos" desc:"position of the peak as determined by the peak-finding algorithm for each pixel and channel"`
	Cleaned          [][][]float64 `field:"cleaned" desc:"waveform after cleaning"`
}

func (DL1CameraContainer) ContainerName() string { return "DL1CameraContainer" }

func NewDL1CameraContainer() *DL1CameraContainer {
	return &DL1CameraContainer{}
}

// CameraCalibrationContainer stores externally calculated calibration
// parameters (not per-event).
type CameraCalibrationContainer struct {
	DCToPE   [][]float64 `field:"dc_to_pe" desc:"DC/PE calibration arrays from MC file"`
	Pedestal [][]float64 `field:"pedestal" desc:"pedestal calibration arrays from MC file"`
}

func (CameraCalibrationContainer) ContainerName() string { return "CameraCalibrationContainer" }

func NewCameraCalibrationContainer() *CameraCalibrationContainer {
	return &CameraCalibrationContainer{}
}

// DL1Container holds the calibrated camera images and associated data.
type DL1Container struct {
	Tel map[uint16]*DL1CameraContainer `field:"tel" desc:"map of tel_id to DL1CameraContainer"`
}

func (DL1Container) ContainerName() string { return "DL1Container" }

func NewDL1Container() *DL1Container {
	return &DL1Container{
		Tel: make(map[uint16]*DL1CameraContainer),
	}
}

func (c *DL1Container) SortedTelIDs() []uint16 {
	return sortedKeys(c.Tel)
}
