package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/auth"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/handler"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/store"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	seed, err := store.DefaultSeed()
	require.NoError(t, err)
	cfg := &config.Config{
		AdminUsername: "admin@example.com",
		AdminPassword: "admin",
	}
	return NewEngine(handler.New(store.New(seed), auth.New(cfg)))
}

func doJSON(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/auth/login", "", model.LoginRequest{
		Username: "admin@example.com",
		Password: "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env model.Envelope[model.LoginResult]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)
	return env.Data.Tokens.Access
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(t)
	w := doJSON(engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestTraceIDHeader(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Trace-ID"))

	w = doJSON(engine, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestLoginFailure(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/auth/login", "", model.LoginRequest{Username: "admin@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid username or password"}`, w.Body.String())

	w = doJSON(engine, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"unknown", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(engine, http.MethodGet, "/api/partners", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestPartnerAndCountryFlow(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	w := doJSON(engine, http.MethodGet, "/api/partners", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var partners model.Envelope[[]model.Partner]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partners))
	assert.Len(t, partners.Data, 7)

	// 国をカテゴリのラベルで登録
	w = doJSON(engine, http.MethodPost, "/api/countries", token, map[string]string{
		"countryName": "Kenya",
		"category":    "Rest of Africa",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var country model.Envelope[model.Country]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &country))
	assert.Equal(t, model.CategoryAfrica, country.Data.Category)

	// パートナーを登録すると国側のpartnersに追加される
	w = doJSON(engine, http.MethodPost, "/api/partners", token, model.Partner{
		Name:      "Safaricom",
		Country:   model.CountryRef{ID: country.Data.ID},
		Mechanism: model.MechanismSRDC,
		MCC:       "639",
		MNC:       "02",
		RDC:       "5",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Envelope[model.Partner]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(engine, http.MethodGet, "/api/countries/"+country.Data.IDString(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &country))
	assert.True(t, country.Data.OwnsPartner(created.Data.ID))

	// 料金表が紐づくパートナーは削除できない
	w = doJSON(engine, http.MethodDelete, "/api/partners/2", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(engine, http.MethodDelete, "/api/partners/"+created.Data.IDString(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
