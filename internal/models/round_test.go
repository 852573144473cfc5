package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "red", input: "red", want: ColorRed},
		{name: "green", input: "green", want: ColorGreen},
		{name: "violet", input: "violet", want: ColorViolet},
		{name: "unknown", input: "blue", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorMultiplier(t *testing.T) {
	assert.Equal(t, 2.0, ColorRed.Multiplier())
	assert.Equal(t, 2.0, ColorGreen.Multiplier())
	assert.Equal(t, 4.5, ColorViolet.Multiplier())
	assert.Equal(t, 0.0, Color("blue").Multiplier())
}
