package datamodel

// HillasParametersContainer holds the second-moment ellipse description
// of a camera image.
type HillasParametersContainer struct {
	Intensity float64  `field:"intensity" desc:"total intensity (size)"`
	X         float64  `field:"x" desc:"centroid x coordinate"`
	Y         float64  `field:"y" desc:"centroid y coordinate"`
	R         float64  `field:"r" desc:"radial coordinate of centroid"`
	Phi       Quantity `field:"phi" desc:"polar coordinate of centroid" unit:"deg"`
	Length    float64  `field:"length" desc:"RMS spread along the major-axis"`
	Width     float64  `field:"width" desc:"RMS spread along the minor-axis"`
	Psi       Quantity `field:"psi" desc:"rotation angle of ellipse" unit:"deg"`
	Skewness  float64  `field:"skewness" desc:"measure of the asymmetry"`
	Kurtosis  float64  `field:"kurtosis" desc:"measure of the tailedness"`
}

func (HillasParametersContainer) ContainerName() string { return "HillasParametersContainer" }

func NewHillasParametersContainer() *HillasParametersContainer {
	return &HillasParametersContainer{
		Phi: Degrees(0),
		Psi: Degrees(0),
	}
}
