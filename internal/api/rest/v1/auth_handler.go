package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
)

const (
	stateCookie    = "hades_oauth_state"
	verifierCookie = "hades_oauth_verifier"
	cookieMaxAge   = 300
)

// AuthHandler defines the interface for the Keycloak login flow
type AuthHandler interface {
	Login(ctx *gin.Context)
	Callback(ctx *gin.Context)
}

type authHandler struct {
	oauthConfig *oauth2.Config
}

// NewAuthHandler creates a new AuthHandler for the realm in settings
func NewAuthHandler(settings *config.AuthSettings) AuthHandler {
	return &authHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			RedirectURL:  settings.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  settings.AuthURL(),
				TokenURL: settings.TokenURL(),
			},
		},
	}
}

// Login redirects to the Keycloak authorization endpoint
// @Summary Start the single sign-on flow
// @Tags Auth
// @Success 307
// @Router /auth/login [get]
func (handler *authHandler) Login(ctx *gin.Context) {
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	ctx.SetCookie(stateCookie, state, cookieMaxAge, "/", "", false, true)
	ctx.SetCookie(verifierCookie, verifier, cookieMaxAge, "/", "", false, true)

	url := handler.oauthConfig.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback exchanges the authorization code for the token set
// @Summary Finish the single sign-on flow
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /auth/login"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/callback [get]
func (handler *authHandler) Callback(ctx *gin.Context) {
	state, err := ctx.Cookie(stateCookie)
	if err != nil || state == "" || ctx.Query("state") != state {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid state"})
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing authorization code"})
		return
	}

	verifier, _ := ctx.Cookie(verifierCookie)
	token, err := handler.oauthConfig.Exchange(ctx.Request.Context(), code, oauth2.VerifierOption(verifier))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Message: fmt.Sprintf("token exchange failed: %v", err)})
		return
	}

	ctx.SetCookie(stateCookie, "", -1, "/", "", false, true)
	ctx.SetCookie(verifierCookie, "", -1, "/", "", false, true)

	response := TokenResponse{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		response.IDToken = idToken
	}
	ctx.JSON(http.StatusOK, response)
}
