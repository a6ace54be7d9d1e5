package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures Keycloak single sign-on.
//
// Issuer is the realm URL (https://sso.example.com/realms/hades). Tokens are
// verified either with the realm public key (RS256) or a shared secret
// (HS256). ClientID doubles as the expected audience when Audience is empty.
type AuthSettings struct {
	Enabled      bool   `mapstructure:"enabled"`
	Issuer       string `mapstructure:"issuer" validate:"required_if=Enabled true"`
	Audience     string `mapstructure:"audience"`
	Algorithm    string `mapstructure:"algorithm" validate:"required_if=Enabled true"`
	PublicKeyPEM string `mapstructure:"public_key_pem"`
	Secret       string `mapstructure:"secret"`
	RequiredRole string `mapstructure:"required_role"`
	ClientID     string `mapstructure:"client_id" validate:"required_if=Enabled true"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if !s.Enabled {
		return nil
	}

	if !strings.HasPrefix(s.Issuer, "http://") && !strings.HasPrefix(s.Issuer, "https://") {
		return fmt.Errorf("issuer must be an http(s) realm URL")
	}

	switch s.Algorithm {
	case AuthAlgorithmRS256:
		if s.PublicKeyPEM == "" {
			return fmt.Errorf("public key is required for RS256 tokens")
		}
	case AuthAlgorithmHS256:
		if s.Secret == "" {
			return fmt.Errorf("secret is required for HS256 tokens")
		}
	default:
		return fmt.Errorf("unsupported token algorithm: %s", s.Algorithm)
	}

	return nil
}

// ExpectedAudience returns the audience tokens must carry.
func (s *AuthSettings) ExpectedAudience() string {
	if s.Audience != "" {
		return s.Audience
	}
	return s.ClientID
}

// AuthURL returns the Keycloak authorization endpoint of the realm.
func (s *AuthSettings) AuthURL() string {
	return strings.TrimRight(s.Issuer, "/") + "/protocol/openid-connect/auth"
}

// TokenURL returns the Keycloak token endpoint of the realm.
func (s *AuthSettings) TokenURL() string {
	return strings.TrimRight(s.Issuer, "/") + "/protocol/openid-connect/token"
}
