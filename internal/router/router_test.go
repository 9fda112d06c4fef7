package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wanderplan/internal/domain"
	"wanderplan/internal/handler"
	"wanderplan/internal/router"
	"wanderplan/internal/service"
	"wanderplan/mocks"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newEngine() (*gin.Engine, *mocks.MockAuthService, *mocks.MockPlanService) {
	gin.SetMode(gin.TestMode)
	authSvc := new(mocks.MockAuthService)
	planSvc := new(mocks.MockPlanService)
	r := router.Setup(authSvc, router.Handlers{
		Health: handler.NewHealthHandler(okPinger{}),
		Parse:  handler.NewParseHandler(1024),
		Plan:   handler.NewPlanHandler(planSvc, 900, 1<<20),
	}, []string{"https://app.example.com"})
	return r, authSvc, planSvc
}

func TestRouter_HealthIsPublic(t *testing.T) {
	r, _, _ := newEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_ParseIsPublic(t *testing.T) {
	r, _, _ := newEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader("# Oslo\nHeading to Oslo!"))
	req.Header.Set("Content-Type", "text/markdown")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"destination":"Oslo"`)
}

func TestRouter_PlansRequireToken(t *testing.T) {
	r, _, planSvc := newEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/plans", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	planSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_PlansWithToken(t *testing.T) {
	r, authSvc, planSvc := newEngine()
	userID := uuid.New()

	authSvc.On("ValidateToken", "good").Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{},
		UserID:           userID,
		Email:            "owner@example.com",
	}, nil)
	planSvc.On("List", mock.Anything, userID, 0, 20).Return([]domain.Plan{}, 0, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/plans", http.NoBody)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	planSvc.AssertExpectations(t)
}

func TestRouter_RejectedToken(t *testing.T) {
	r, authSvc, _ := newEngine()
	authSvc.On("ValidateToken", "stale").Return(nil, errors.New("token expired"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/plans/"+uuid.New().String(), http.NoBody)
	req.Header.Set("Authorization", "Bearer stale")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Preflight(t *testing.T) {
	r, _, _ := newEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/plans", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
