package models

// FrequencySweep is an ascending list of positive frequencies in Hz
type FrequencySweep []float64

// ImpedanceCurve holds throat impedance and reflection per sweep frequency.
// All slices are parallel to FrequenciesHz.
type ImpedanceCurve struct {
	FrequenciesHz []float64 `json:"frequencies_hz" doc:"Sweep frequencies in Hz"`
	Real          []float64 `json:"impedance_real" doc:"Throat impedance real part"`
	Imag          []float64 `json:"impedance_imag" doc:"Throat impedance imaginary part"`
	Magnitude     []float64 `json:"impedance_magnitude" doc:"Throat impedance magnitude"`
	PhaseDeg      []float64 `json:"impedance_phase" doc:"Throat impedance phase in degrees"`
	Reflection    []float64 `json:"reflection_coefficient" doc:"Throat reflection coefficient magnitude"`
	CutoffHz      float64   `json:"cutoff_hz" doc:"Horn flare cutoff frequency in Hz"`
}

// Len returns the number of sweep points
func (c ImpedanceCurve) Len() int { return len(c.FrequenciesHz) }

// DirectivityPoint is the relative level at one polar angle
type DirectivityPoint struct {
	AngleDeg float64 `json:"angle_deg"`
	LevelDB  float64 `json:"relative_spl_db"`
}

// DirectivityPattern is the far-field polar response at a single frequency
type DirectivityPattern struct {
	FrequencyHz        float64            `json:"frequency_hz"`
	MouthRadiusMM      float64            `json:"mouth_radius_mm"`
	KA                 float64            `json:"ka"`
	Points             []DirectivityPoint `json:"directivity"`
	Coverage6dBDeg     float64            `json:"coverage_6db_deg"`
	Coverage10dBDeg    float64            `json:"coverage_10db_deg"`
	DirectivityIndexDB float64            `json:"directivity_index_db"`
}

// Passband is the -3 dB region of a frequency response
type Passband struct {
	LowHz  float64 `json:"low"`
	HighHz float64 `json:"high"`
}

// FrequencyResponse is the on-axis SPL curve of a horn
type FrequencyResponse struct {
	FrequenciesHz  []float64 `json:"frequencies_hz"`
	SPL            []float64 `json:"spl_db"`
	Passband       Passband  `json:"passband_hz"`
	AverageLevelDB float64   `json:"average_level_db"`
	SensitivityDB  float64   `json:"sensitivity_db"`
	FlatnessDB     float64   `json:"flatness_db"`
}

// Simulation bundles every analytic result for one profile
type Simulation struct {
	Geometry                  GeometrySummary      `json:"geometry"`
	Impedance                 ImpedanceCurve       `json:"impedance"`
	MeanImpedance             float64              `json:"mean_impedance_magnitude"`
	AverageReflection         float64              `json:"reflection_coefficient_avg"`
	PhaseMinDeg               float64              `json:"phase_min_deg"`
	PhaseMaxDeg               float64              `json:"phase_max_deg"`
	Response                  FrequencyResponse    `json:"frequency_response"`
	Directivity               []DirectivityPattern `json:"directivity"`
	AverageDirectivityIndexDB float64              `json:"average_di_db"`
}

// GeometrySummary is the profile geometry as seen by the acoustic engines
type GeometrySummary struct {
	ThroatDiameterMM float64 `json:"throat_diameter_mm"`
	MouthDiameterMM  float64 `json:"mouth_diameter_mm"`
	LengthMM         float64 `json:"length_mm"`
	ExpansionRatio   float64 `json:"expansion_ratio"`
}

// AcousticScore is the weighted quality summary of a simulation
type AcousticScore struct {
	ImpedanceSmoothness float64 `json:"impedance_smoothness"`
	FrequencyFlatness   float64 `json:"frequency_flatness"`
	PolarUniformity     float64 `json:"polar_uniformity"`
	DistortionScore     float64 `json:"distortion_score"`
	Overall             float64 `json:"overall"`
	Recommendation      string  `json:"recommendation"`
}

// ComparisonRow is one candidate in a comparison. Error is set when the
// candidate could not be evaluated; such rows carry no score.
type ComparisonRow struct {
	ID                string  `json:"id"`
	Score             float64 `json:"score"`
	Smoothness        float64 `json:"impedance_smoothness"`
	AverageReflection float64 `json:"reflection_coefficient_avg"`
	Error             string  `json:"error,omitempty"`
}

// RankedResult is a stable descending ordering of scored candidates
type RankedResult struct {
	Rows        []ComparisonRow `json:"rows"`
	Ranking     []string        `json:"ranking"`
	Recommended string          `json:"recommended,omitempty"`
}
