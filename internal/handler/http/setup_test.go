package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/handler/http/mocks"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	random_generator "github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/validator"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

type testServer struct {
	engine    *gin.Engine
	suppliers *mocks.MockSupplierUsecase
	auth      *mocks.MockAuthUsecase
	users     *mocks.MockUserUsecase
	admin     *mocks.MockAdminUsecase
	locations *mocks.MockLocationUsecase
}

func newTestServer(t *testing.T, opts ...func(*config.Config)) *testServer {
	t.Helper()
	cfg := &config.Config{Env: "test", AppBaseURL: "http://localhost:8080"}
	for _, opt := range opts {
		opt(cfg)
	}
	s := &testServer{
		engine:    gin.New(),
		suppliers: mocks.NewMockSupplierUsecase(),
		auth:      mocks.NewMockAuthUsecase(),
		users:     mocks.NewMockUserUsecase(),
		admin:     mocks.NewMockAdminUsecase(),
		locations: mocks.NewMockLocationUsecase(),
	}
	router := handler.NewRouter(s.suppliers, s.auth, s.users, s.admin, s.locations, random_generator.NewRandomGenerator(), cfg, nil)
	router.SetupRoutes(s.engine)
	return s
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
