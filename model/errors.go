package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomain is returned when a log scale receives a non-positive value or bound.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrInvalidParameter is returned for bad periods, deviations, tensions or log bases.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInsufficientData marks inputs too short to produce anything at all.
	ErrInsufficientData = errors.New("insufficient data")
)

// DomainError describes a value rejected by a scale domain.
type DomainError struct {
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v %s", ErrInvalidDomain, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrInvalidDomain
}

// ParameterError describes a rejected configuration parameter.
type ParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
