//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, issuer string) *gin.Engine {
	t.Helper()

	settings := hsSettings()
	settings.Issuer = issuer
	settings.ClientSecret = "client-secret"
	settings.RedirectURL = "http://localhost:8080" + BasePath + "/auth/callback"
	return newTestRouter(t, settings, new(MockDocumentExtractionService), new(MockDocumentMetadataService))
}

func TestAuthHandler_Login_Redirects(t *testing.T) {
	r := newAuthRouter(t, testIssuer)

	req, _ := http.NewRequest("GET", BasePath+"/auth/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "sso.example.com", location.Host)
	assert.Equal(t, "/realms/hades/protocol/openid-connect/auth", location.Path)
	assert.Equal(t, testClientID, location.Query().Get("client_id"))
	assert.Equal(t, "S256", location.Query().Get("code_challenge_method"))
	assert.NotEmpty(t, location.Query().Get("state"))

	cookies := map[string]string{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c.Value
	}
	assert.Equal(t, location.Query().Get("state"), cookies[stateCookie])
	assert.NotEmpty(t, cookies[verifierCookie])
}

func TestAuthHandler_Callback_ExchangesCode(t *testing.T) {
	var form url.Values
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer","refresh_token":"refresh","id_token":"id","expires_in":300}`))
	}))
	defer tokenServer.Close()

	r := newAuthRouter(t, tokenServer.URL+"/realms/hades")

	req, _ := http.NewRequest("GET", BasePath+"/auth/callback?state=abc&code=the-code", nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "abc"})
	req.AddCookie(&http.Cookie{Name: verifierCookie, Value: "verifier"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "access", response.AccessToken)
	assert.Equal(t, "refresh", response.RefreshToken)
	assert.Equal(t, "id", response.IDToken)

	assert.Equal(t, "the-code", form.Get("code"))
	assert.Equal(t, "verifier", form.Get("code_verifier"))
}

func TestAuthHandler_Callback_RejectsState(t *testing.T) {
	r := newAuthRouter(t, testIssuer)

	tests := []struct {
		name   string
		url    string
		cookie string
	}{
		{"no cookie", "/auth/callback?state=abc&code=x", ""},
		{"mismatch", "/auth/callback?state=abc&code=x", "xyz"},
		{"missing code", "/auth/callback?state=abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", BasePath+tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: stateCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

