package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerowx/carbice-advisory/internal/domain"
)

func TestParseUnitArg(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Unit
	}{
		{"C", domain.UnitCelsius},
		{"F", domain.UnitFahrenheit},
		{"c", domain.UnitCelsius},
		{"f", domain.UnitFahrenheit},
		{" f ", domain.UnitFahrenheit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseUnitArg(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnitArg_Invalid(t *testing.T) {
	for _, input := range []string{"K", "celsius", ""} {
		t.Run(input, func(t *testing.T) {
			_, err := parseUnitArg(input)
			assert.Error(t, err)
		})
	}
}
