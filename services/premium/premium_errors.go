package premium

import (
	"errors"
	"fmt"
)

var (
	ErrInternal        = fmt.Errorf("internal server error")
	ErrInvalidInput    = fmt.Errorf("invalid request")
	ErrRiskCalculation = fmt.Errorf("cannot calculate risk for input")
)

// Wire codes carried in error response bodies.
const (
	CodeInternal        = "001"
	CodeInvalidInput    = "002"
	CodeInvalidHeader   = "003"
	CodeRiskCalculation = "004"
)

// CodeFor maps a service error to its wire code.
func CodeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrRiskCalculation):
		return CodeRiskCalculation
	default:
		return CodeInternal
	}
}
