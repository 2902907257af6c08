package premium

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid input", ErrInvalidInput, CodeInvalidInput},
		{"wrapped invalid input", fmt.Errorf("sum insured %q: %w", "abc", ErrInvalidInput), CodeInvalidInput},
		{"risk calculation", ErrRiskCalculation, CodeRiskCalculation},
		{"wrapped risk calculation", fmt.Errorf("age 10 is not ratable: %w", ErrRiskCalculation), CodeRiskCalculation},
		{"internal", ErrInternal, CodeInternal},
		{"unknown error", fmt.Errorf("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFor(tt.err))
		})
	}
}
