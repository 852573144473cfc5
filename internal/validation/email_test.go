package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid email",
			email:   "alice@example.com",
			wantErr: false,
		},
		{
			name:    "valid email - subdomain",
			email:   "alice@mail.example.com",
			wantErr: false,
		},
		{
			name:    "valid email - plus tag",
			email:   "alice+game@example.com",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			email:   "",
			wantErr: true,
			errMsg:  "email cannot be empty",
		},
		{
			name:    "invalid - no at sign",
			email:   "alice.example.com",
			wantErr: true,
			errMsg:  "must look like",
		},
		{
			name:    "invalid - no domain dot",
			email:   "alice@localhost",
			wantErr: true,
			errMsg:  "must look like",
		},
		{
			name:    "invalid - with space",
			email:   "alice smith@example.com",
			wantErr: true,
			errMsg:  "must look like",
		},
		{
			name:    "invalid - too long",
			email:   strings.Repeat("a", 250) + "@example.com",
			wantErr: true,
			errMsg:  "must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))

	err := ValidatePassword("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}
