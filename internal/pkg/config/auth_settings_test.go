//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{
			name:          "disabled auth needs nothing",
			settings:      &AuthSettings{},
			expectedError: false,
		},
		{
			name: "valid RS256",
			settings: &AuthSettings{
				Enabled:      true,
				Issuer:       "https://sso.example.com/realms/hades",
				Algorithm:    AuthAlgorithmRS256,
				PublicKeyPEM: "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----",
				ClientID:     "hades-lite",
			},
			expectedError: false,
		},
		{
			name: "valid HS256",
			settings: &AuthSettings{
				Enabled:   true,
				Issuer:    "http://localhost:8081/realms/dev",
				Algorithm: AuthAlgorithmHS256,
				Secret:    "s3cr3t",
				ClientID:  "hades-lite",
			},
			expectedError: false,
		},
		{
			name: "missing issuer",
			settings: &AuthSettings{
				Enabled:   true,
				Algorithm: AuthAlgorithmHS256,
				Secret:    "s3cr3t",
				ClientID:  "hades-lite",
			},
			expectedError: true,
		},
		{
			name: "issuer is not a URL",
			settings: &AuthSettings{
				Enabled:   true,
				Issuer:    "realms/hades",
				Algorithm: AuthAlgorithmHS256,
				Secret:    "s3cr3t",
				ClientID:  "hades-lite",
			},
			expectedError: true,
		},
		{
			name: "RS256 without public key",
			settings: &AuthSettings{
				Enabled:   true,
				Issuer:    "https://sso.example.com/realms/hades",
				Algorithm: AuthAlgorithmRS256,
				ClientID:  "hades-lite",
			},
			expectedError: true,
		},
		{
			name: "unsupported algorithm",
			settings: &AuthSettings{
				Enabled:   true,
				Issuer:    "https://sso.example.com/realms/hades",
				Algorithm: "ES512",
				ClientID:  "hades-lite",
			},
			expectedError: true,
		},
		{
			name: "missing client id",
			settings: &AuthSettings{
				Enabled:   true,
				Issuer:    "https://sso.example.com/realms/hades",
				Algorithm: AuthAlgorithmHS256,
				Secret:    "s3cr3t",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthSettings_Endpoints(t *testing.T) {
	settings := &AuthSettings{
		Issuer:   "https://sso.example.com/realms/hades/",
		ClientID: "hades-lite",
	}

	assert.Equal(t, "https://sso.example.com/realms/hades/protocol/openid-connect/auth", settings.AuthURL())
	assert.Equal(t, "https://sso.example.com/realms/hades/protocol/openid-connect/token", settings.TokenURL())
	assert.Equal(t, "hades-lite", settings.ExpectedAudience())

	settings.Audience = "account"
	assert.Equal(t, "account", settings.ExpectedAudience())
}
