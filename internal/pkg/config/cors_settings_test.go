//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSSettings_Normalize(t *testing.T) {
	settings := &CORSSettings{Origins: []string{" http://localhost:5173 ,http://localhost:3000", "", "  "}}

	settings.Normalize()

	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, settings.Origins)
}

func TestCORSSettings_AllowsAll(t *testing.T) {
	assert.True(t, (&CORSSettings{Origins: []string{"*"}}).AllowsAll())
	assert.True(t, (&CORSSettings{Origins: []string{"http://localhost:5173", "*"}}).AllowsAll())
	assert.False(t, (&CORSSettings{Origins: []string{"http://localhost:5173"}}).AllowsAll())
}

func TestCORSSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		expectedError bool
	}{
		{"wildcard", []string{"*"}, false},
		{"explicit origins", []string{"http://localhost:5173", "https://staffy.example.com"}, false},
		{"empty list", nil, true},
		{"only blanks", []string{" ", ","}, true},
		{"missing scheme", []string{"localhost:5173"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &CORSSettings{Origins: tt.origins}
			err := settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
