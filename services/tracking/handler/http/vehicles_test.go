package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"github.com/shegerlabs/transitlive/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVehicles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		FleetSnapshot().
		Return([]*models.VehicleState{
			{VehicleID: "bus-1", RouteID: "route-7"},
			{VehicleID: "bus-2", RouteID: "route-4"},
		})

	handler := NewVehicleHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*models.VehicleState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		Vehicle("bus-1").
		Return(&models.VehicleState{VehicleID: "bus-1", RouteID: "route-7"}, nil)

	handler := NewVehicleHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/vehicles/:id")
	c.SetParamNames("id")
	c.SetParamValues("bus-1")

	require.NoError(t, handler.GetVehicle(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.VehicleState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bus-1", got.VehicleID)
}

func TestGetVehicle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		Vehicle("ghost").
		Return(nil, errs.ErrNotFound)

	handler := NewVehicleHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/vehicles/:id")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.GetVehicle(c)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestNearbyVehicles_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		NearbyVehicles(gomock.Any(), 9.0107, 38.7613, 500.0).
		Return([]*models.NearbyVehicle{
			{VehicleID: "bus-1", DistanceM: 120.5},
		}, nil)

	handler := NewVehicleHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/nearby?lat=9.0107&lng=38.7613&radius_m=500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.NearbyVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*models.NearbyVehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "bus-1", got[0].VehicleID)
}

func TestNearbyVehicles_DefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		NearbyVehicles(gomock.Any(), 9.0107, 38.7613, 1000.0).
		Return(nil, nil)

	handler := NewVehicleHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/nearby?lat=9.0107&lng=38.7613", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.NearbyVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNearbyVehicles_InvalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewVehicleHandler(mocks.NewMockTrackingUC(ctrl))

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing lat", query: "lng=38.7613"},
		{name: "missing lng", query: "lat=9.0107"},
		{name: "malformed lat", query: "lat=abc&lng=38.7613"},
		{name: "negative radius", query: "lat=9.0107&lng=38.7613&radius_m=-5"},
		{name: "malformed radius", query: "lat=9.0107&lng=38.7613&radius_m=wide"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/vehicles/nearby?"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.NearbyVehicles(c)
			require.Error(t, err)

			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}
