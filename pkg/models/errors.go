package models

import "errors"

var (
	// ErrInvalidInput marks a parameter outside its documented bounds
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedProfile marks a profile that cannot be evaluated
	ErrMalformedProfile = errors.New("malformed profile")

	// ErrNotFound marks a missing design, result or stored profile
	ErrNotFound = errors.New("not found")

	// ErrSimulationRunning marks a design whose simulation is already in progress
	ErrSimulationRunning = errors.New("simulation already running")
)
