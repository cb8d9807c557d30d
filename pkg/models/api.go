package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CreateDesignRequestBody describes the horn to synthesize
type CreateDesignRequestBody struct {
	Name             string      `json:"name" minLength:"1" maxLength:"100" required:"true" doc:"Design name"`
	Mode             ProfileMode `json:"mode" enum:"hilbert,peano,mandelbrot,conical,exponential,tractrix" required:"true" doc:"Profile generation mode"`
	ThroatDiameterMM float64     `json:"throat_diameter_mm" exclusiveMinimum:"0" required:"true" doc:"Throat diameter in mm"`
	MouthDiameterMM  float64     `json:"mouth_diameter_mm" exclusiveMinimum:"0" required:"true" doc:"Mouth diameter in mm"`
	LengthMM         float64     `json:"length_mm" exclusiveMinimum:"0" required:"true" doc:"Horn length in mm"`
	Order            int         `json:"order,omitempty" minimum:"0" maximum:"6" doc:"Hilbert curve order (1-6, default 4)"`
	Iterations       int         `json:"iterations,omitempty" minimum:"0" maximum:"1000" doc:"Peano iterations (1-5) or Mandelbrot iteration count (10-1000)"`
	CReal            float64     `json:"c_real,omitempty" default:"-0.75" doc:"Real part of the Mandelbrot sample point"`
	CImag            float64     `json:"c_imag,omitempty" doc:"Imaginary part of the Mandelbrot sample point"`
	Resolution       int         `json:"resolution,omitempty" minimum:"0" maximum:"2000" doc:"Profile segments; samples = resolution + 1"`
}

// Params converts the request body into synthesis parameters
func (b CreateDesignRequestBody) Params() SynthesisParams {
	return SynthesisParams{
		Mode:             b.Mode,
		ThroatDiameterMM: b.ThroatDiameterMM,
		MouthDiameterMM:  b.MouthDiameterMM,
		LengthMM:         b.LengthMM,
		Order:            b.Order,
		Iterations:       b.Iterations,
		CReal:            b.CReal,
		CImag:            b.CImag,
		Resolution:       b.Resolution,
	}
}

// CreateDesignRequest represents a request to synthesize and store a new design
type CreateDesignRequest struct {
	Body CreateDesignRequestBody
}

// CreateDesignResponse represents the response from creating a design
type CreateDesignResponse struct {
	Body GetDesignResponseBody
}

// GetDesignRequest represents a request addressed to a single design
type GetDesignRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// GetDesignResponseBody is the body of the design status response
type GetDesignResponseBody struct {
	ID       string          `json:"id" doc:"Design ID"`
	Name     string          `json:"name" doc:"Design name"`
	Status   string          `json:"status" enum:"pending,processing,completed,failed" doc:"Simulation status"`
	Progress int             `json:"progress" minimum:"0" maximum:"100" doc:"Simulation progress percentage"`
	Message  string          `json:"message,omitempty" doc:"Human-readable status message"`
	Params   SynthesisParams `json:"params" doc:"Synthesis parameters"`
	Metadata ProfileMetadata `json:"metadata" doc:"Synthesis metadata"`
	Error    *string         `json:"error_message,omitempty" doc:"Failure reason"`
}

// GetDesignResponse represents the current status of a design
type GetDesignResponse struct {
	Body GetDesignResponseBody
}

// GetProfileResponseBody is the body of the profile response
type GetProfileResponseBody struct {
	ID          string           `json:"id" doc:"Design ID"`
	Profile     ExpansionProfile `json:"profile" doc:"Throat-to-mouth radius samples"`
	DownloadURL string           `json:"download_url,omitempty" doc:"Pre-signed URL of the stored profile JSON"`
}

// GetProfileResponse returns the stored expansion profile of a design
type GetProfileResponse struct {
	Body GetProfileResponseBody
}

// StartSimulationResponse represents the response from starting a simulation
type StartSimulationResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// GetResultsResponseBody is the body of the results response
type GetResultsResponseBody struct {
	ID         string         `json:"id" doc:"Results ID"`
	DesignID   string         `json:"design_id" doc:"Design ID"`
	Simulation Simulation     `json:"simulation" doc:"Impedance, frequency response and directivity"`
	Fractal    FractalMetrics `json:"fractal" doc:"Fractal analysis of the profile"`
	Score      AcousticScore  `json:"score" doc:"Weighted acoustic score"`
	Warnings   []string       `json:"warnings,omitempty" doc:"Quality warnings"`
	CreatedAt  time.Time      `json:"created_at" doc:"Simulation timestamp"`
}

// GetResultsResponse represents the complete simulation results
type GetResultsResponse struct {
	Body GetResultsResponseBody
}

// CreateComparisonRequest represents a request to rank several designs
type CreateComparisonRequest struct {
	Body struct {
		DesignIDs []string `json:"design_ids" minItems:"2" maxItems:"5" required:"true" doc:"Designs to compare"`
	}
}

// GetComparisonRequest represents a request for a stored comparison
type GetComparisonRequest struct {
	ID string `path:"id" doc:"Comparison ID"`
}

// ComparisonResponse returns a ranked comparison
type ComparisonResponse struct {
	Body *Comparison
}
