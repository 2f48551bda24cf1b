package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forum-civic/forum-services/api/middleware"
	"github.com/forum-civic/forum-services/internal/appconfig"
	"github.com/forum-civic/forum-services/internal/authn"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// newTestService wires a Service around fresh mocks.
func newTestService() (*Service, *MockForumDB, *MockKeycloakClient, *MockEventPublisher) {
	mockDB := new(MockForumDB)
	mockKC := new(MockKeycloakClient)
	mockPublisher := new(MockEventPublisher)

	cfg := &appconfig.Config{Posts: appconfig.PostsConfig{NeighborhoodRadiusMiles: 5}}
	svc := NewService(cfg, mockDB, mockPublisher, mockKC)
	return svc, mockDB, mockKC, mockPublisher
}

// newRequest builds a request carrying claims for userID (none when empty)
// and the given mux vars.
func newRequest(t *testing.T, method, target string, body interface{}, userID string, vars map[string]string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	r := httptest.NewRequest(method, target, reader)
	if userID != "" {
		claims := authn.Claims{}
		claims.Subject = userID
		r = r.WithContext(context.WithValue(r.Context(), middleware.ClaimsKey, claims))
	}
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "response should be valid JSON: %s", w.Body.String())
}
