package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sriram315/project-dashboard-go/internal/domain/dashboard"
	"github.com/sriram315/project-dashboard-go/internal/domain/user"
	"github.com/sriram315/project-dashboard-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// ===== FAKE SERVICE =====

type fakeDashboardService struct {
	dashboardResp *dashboard.DashboardResponse
	dashboardErr  error
	filtersResp   *dashboard.FiltersResponse
	filtersErr    error
	updateResp    *dashboard.UpdateFiltersResponse
	updateErr     error
	refreshResp   *dashboard.DashboardResponse
	refreshErr    error

	lastUpdate dashboard.UpdateFiltersRequest
}

func (f *fakeDashboardService) GetDashboard(_ context.Context) (*dashboard.DashboardResponse, error) {
	return f.dashboardResp, f.dashboardErr
}

func (f *fakeDashboardService) GetFilters(_ context.Context) (*dashboard.FiltersResponse, error) {
	return f.filtersResp, f.filtersErr
}

func (f *fakeDashboardService) UpdateFilters(_ context.Context, req dashboard.UpdateFiltersRequest) (*dashboard.UpdateFiltersResponse, error) {
	f.lastUpdate = req
	return f.updateResp, f.updateErr
}

func (f *fakeDashboardService) Refresh(_ context.Context) (*dashboard.DashboardResponse, error) {
	return f.refreshResp, f.refreshErr
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// ===== HANDLER TESTS =====

func TestDashboardHandler_GetDashboard_Success(t *testing.T) {
	svc := &fakeDashboardService{
		dashboardResp: &dashboard.DashboardResponse{Generation: 3},
	}
	handler := NewDashboardHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["generation"])
	assert.Empty(t, resp["message"])
}

func TestDashboardHandler_GetDashboard_PartialCarriesNotice(t *testing.T) {
	svc := &fakeDashboardService{
		dashboardResp: &dashboard.DashboardResponse{Generation: 1, Partial: true},
	}
	handler := NewDashboardHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "a degraded snapshot is still a success")
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	assert.NotEmpty(t, resp["message"])
}

func TestDashboardHandler_GetDashboard_NoSnapshot(t *testing.T) {
	svc := &fakeDashboardService{dashboardErr: dashboard.ErrNoSnapshot}
	handler := NewDashboardHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	handler.GetDashboard(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestDashboardHandler_UpdateFilters_InvalidJSON(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardService{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/filters", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.UpdateFilters(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardHandler_UpdateFilters_MalformedID(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardService{})

	body := []byte(`{"projects": "has space"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/filters", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdateFilters(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

func TestDashboardHandler_UpdateFilters_Success(t *testing.T) {
	svc := &fakeDashboardService{
		updateResp: &dashboard.UpdateFiltersResponse{
			Dashboard: &dashboard.DashboardResponse{Generation: 2},
		},
	}
	handler := NewDashboardHandler(svc)

	body := []byte(`{"projects": ["p1", "p2"], "employees": "e1"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/filters", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdateFilters(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastUpdate.Projects)
	assert.Equal(t, []string{"p1", "p2"}, svc.lastUpdate.Projects.IDs())
	require.NotNil(t, svc.lastUpdate.Employees)
	assert.Equal(t, []string{"e1"}, svc.lastUpdate.Employees.IDs())
	assert.Nil(t, svc.lastUpdate.StartDate)
}

func TestDashboardHandler_UpdateFilters_PartialStillRenders(t *testing.T) {
	svc := &fakeDashboardService{
		updateResp: &dashboard.UpdateFiltersResponse{
			Dashboard: &dashboard.DashboardResponse{Generation: 2, Partial: true},
		},
		updateErr: dashboard.ErrPartialResults,
	}
	handler := NewDashboardHandler(svc)

	body := []byte(`{"projects": ["p1"]}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/filters", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdateFilters(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	assert.NotEmpty(t, resp["message"])
}

func TestDashboardHandler_Refresh_TotalFailure(t *testing.T) {
	svc := &fakeDashboardService{refreshErr: dashboard.ErrAllSourcesFailed}
	handler := NewDashboardHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/refresh", nil)
	w := httptest.NewRecorder()

	handler.Refresh(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp["success"].(bool))
}

// ===== ROUTER / AUTH CHAIN TESTS =====

func TestRouter_RequiresToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	router := NewRouter(jwtSvc, NewDashboardHandler(&fakeDashboardService{}), "http://localhost:3000", "test")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AcceptsIssuedToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	svc := &fakeDashboardService{
		dashboardResp: &dashboard.DashboardResponse{Generation: 1},
	}
	router := NewRouter(jwtSvc, NewDashboardHandler(svc), "http://localhost:3000", "test")

	token, _, err := jwtSvc.GenerateAccessToken("e1", user.RoleManager)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
}

func TestRouter_RejectsWrongSecret(t *testing.T) {
	otherSvc := jwt.NewJWTService("a-different-secret", "1h")
	token, _, err := otherSvc.GenerateAccessToken("e1", user.RoleManager)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	router := NewRouter(jwtSvc, NewDashboardHandler(&fakeDashboardService{}), "http://localhost:3000", "test")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
