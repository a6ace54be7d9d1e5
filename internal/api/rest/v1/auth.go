package v1

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
)

// AnonymousUserID owns every document created while authentication is disabled.
const AnonymousUserID = "anonymous"

const principalKey = "hades.principal"

// Principal is the caller identified by a Keycloak access token.
type Principal struct {
	Subject  string
	Username string
	Roles    []string
}

// HasRole reports whether the realm granted role to the caller.
func (p *Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

var anonymous = &Principal{Subject: AnonymousUserID, Username: AnonymousUserID}

type realmAccess struct {
	Roles []string `json:"roles"`
}

type keycloakClaims struct {
	jwt.RegisteredClaims
	PreferredUsername string      `json:"preferred_username"`
	AuthorizedParty   string      `json:"azp"`
	RealmAccess       realmAccess `json:"realm_access"`
}

// TokenVerifier validates access tokens issued by a Keycloak realm.
type TokenVerifier struct {
	issuer   string
	audience string
	method   string
	key      any
	now      func() time.Time
}

// NewTokenVerifier builds a verifier from the realm settings. RS256 keys may
// be given as a PEM block or as the bare base64 key Keycloak displays.
func NewTokenVerifier(settings *config.AuthSettings) (*TokenVerifier, error) {
	v := &TokenVerifier{
		issuer:   settings.Issuer,
		audience: settings.ExpectedAudience(),
		method:   settings.Algorithm,
		now:      time.Now,
	}

	switch settings.Algorithm {
	case config.AuthAlgorithmRS256:
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM(settings.PublicKeyPEM)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse realm public key: %w", err)
		}
		v.key = key
	case config.AuthAlgorithmHS256:
		v.key = []byte(settings.Secret)
	default:
		return nil, fmt.Errorf("unsupported token algorithm: %s", settings.Algorithm)
	}

	return v, nil
}

func publicKeyPEM(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "-----BEGIN") {
		return key
	}
	return "-----BEGIN PUBLIC KEY-----\n" + key + "\n-----END PUBLIC KEY-----"
}

// Verify checks signature, issuer, expiry and audience of raw. The audience
// may also be carried as the authorized party, which is how Keycloak marks
// tokens issued to the client itself.
func (v *TokenVerifier) Verify(raw string) (*Principal, error) {
	var claims keycloakClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{v.method}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if v.audience != "" && !slices.Contains(claims.Audience, v.audience) && claims.AuthorizedParty != v.audience {
		return nil, errors.New("invalid token: audience mismatch")
	}
	if claims.Subject == "" {
		return nil, errors.New("invalid token: subject is required")
	}

	return &Principal{
		Subject:  claims.Subject,
		Username: claims.PreferredUsername,
		Roles:    claims.RealmAccess.Roles,
	}, nil
}

// NewAuthMiddleware returns the middleware guarding the document routes. With
// authentication disabled every request runs as the anonymous user.
func NewAuthMiddleware(settings *config.AuthSettings) (gin.HandlerFunc, error) {
	if !settings.Enabled {
		return func(ctx *gin.Context) {
			ctx.Set(principalKey, anonymous)
			ctx.Next()
		}, nil
	}

	verifier, err := NewTokenVerifier(settings)
	if err != nil {
		return nil, err
	}
	return AuthMiddleware(verifier, settings.RequiredRole), nil
}

// AuthMiddleware rejects requests without a valid bearer token with 401 and
// callers lacking requiredRole with 403.
func AuthMiddleware(verifier *TokenVerifier, requiredRole string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortWithError(ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		principal, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			abortWithError(ctx, http.StatusUnauthorized, err.Error())
			return
		}

		if requiredRole != "" && !principal.HasRole(requiredRole) {
			abortWithError(ctx, http.StatusForbidden, fmt.Sprintf("role %s is required", requiredRole))
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// PrincipalFrom returns the caller stored by the auth middleware, or the
// anonymous user when the middleware did not run.
func PrincipalFrom(ctx *gin.Context) *Principal {
	if v, ok := ctx.Get(principalKey); ok {
		if p, ok := v.(*Principal); ok {
			return p
		}
	}
	return anonymous
}
