//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, authSettings *config.AuthSettings, extraction *MockDocumentExtractionService, metadata *MockDocumentMetadataService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, SetupRoutes(r, authSettings, extraction, metadata))
	return r
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	r := newTestRouter(t, &config.AuthSettings{}, new(MockDocumentExtractionService), new(MockDocumentMetadataService))

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"GET", BasePath + "/health"},
		{"POST", BasePath + "/dates/parse"},
		{"POST", BasePath + "/fields/extract"},
		{"POST", BasePath + "/documents"},
		{"POST", BasePath + "/documents/image"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestSetupRoutes_AuthRoutesOnlyWhenEnabled(t *testing.T) {
	r := newTestRouter(t, &config.AuthSettings{}, new(MockDocumentExtractionService), new(MockDocumentMetadataService))

	req, _ := http.NewRequest("GET", BasePath+"/auth/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRoutes_InvalidAuthSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := SetupRoutes(gin.New(), &config.AuthSettings{
		Enabled:      true,
		Issuer:       "https://sso.example.com/realms/hades",
		Algorithm:    config.AuthAlgorithmRS256,
		PublicKeyPEM: "not a key",
		ClientID:     "hades-lite",
	}, new(MockDocumentExtractionService), new(MockDocumentMetadataService))

	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &config.AuthSettings{}, new(MockDocumentExtractionService), new(MockDocumentMetadataService))

	req, _ := http.NewRequest("GET", BasePath+"/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","version":"v1"}`, w.Body.String())
}
