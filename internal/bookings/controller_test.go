package bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventrental/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _, _ := newTestService(t, nil)
	r := gin.New()
	SetupBookingRoutes(r.Group("/api/v1"), NewController(svc))
	return r
}

func doRequest(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, response.StandardApiResponse) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.StandardApiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestController_CreateQuote(t *testing.T) {
	r := setupRouter(t)

	body := `{"category":"Wedding","tier":"Premier","guests":400,"venue_code":"H","date":"2026-06-05"}`
	w, resp := doRequest(r, http.MethodPost, "/api/v1/quotes", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, w.Body.String(), `"total":159000`)
}

func TestController_CreateQuote_BadRequests(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"category":`, http.StatusBadRequest},
		{"missing guests", `{"category":"Wedding","tier":"Luxo"}`, http.StatusBadRequest},
		{"negative guests", `{"category":"Wedding","tier":"Luxo","guests":-1}`, http.StatusBadRequest},
		{"bad date format", `{"category":"Wedding","tier":"Luxo","guests":10,"date":"05/06/2026"}`, http.StatusBadRequest},
		{"negative quantity", `{"category":"Wedding","tier":"Luxo","guests":10,"beverages":[{"name":"Água","quantity":-2}]}`, http.StatusBadRequest},
		{"unknown category", `{"category":"Baptism","tier":"Luxo","guests":10}`, http.StatusBadRequest},
		{"no venue fits", `{"category":"Wedding","tier":"Luxo","guests":900}`, http.StatusNotFound},
		{"unknown venue", `{"category":"Wedding","tier":"Luxo","guests":10,"venue_code":"Q"}`, http.StatusNotFound},
		{"repeated food", `{"category":"Wedding","tier":"Standard","guests":10,"foods":["Coxinha","Coxinha","Coxinha","Coxinha"]}`, http.StatusBadRequest},
		{"date inside lead time", `{"category":"Wedding","tier":"Luxo","guests":10,"date":"2026-01-06"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(r, http.MethodPost, "/api/v1/quotes", tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "error", resp.Status)
		})
	}
}

func TestController_CreateBookingAndCalendar(t *testing.T) {
	r := setupRouter(t)

	body := `{"category":"BirthdayParty","guests":70,"venue_code":"A","date":"2026-02-14"}`
	w, _ := doRequest(r, http.MethodPost, "/api/v1/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doRequest(r, http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doRequest(r, http.MethodGet, "/api/v1/calendar", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), "Nome do espaço: A")
}

func TestController_GetBeverageMenu(t *testing.T) {
	r := setupRouter(t)

	w, _ := doRequest(r, http.MethodGet, "/api/v1/menus/beverages?tier=Premier", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Whisky")

	w, _ = doRequest(r, http.MethodGet, "/api/v1/menus/beverages?tier=Ouro", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(r, http.MethodGet, "/api/v1/menus/beverages?quantity=20", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":20`)

	w, _ = doRequest(r, http.MethodGet, "/api/v1/menus/beverages?quantity=muitos", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
