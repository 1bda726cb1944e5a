package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shegerlabs/transitlive/internal/pkg/errs"
	"github.com/shegerlabs/transitlive/services/tracking"
)

// VehicleHandler exposes the read side of the fleet picture over HTTP.
type VehicleHandler struct {
	trackingUC tracking.TrackingUC
}

// NewVehicleHandler creates a vehicle read handler
func NewVehicleHandler(trackingUC tracking.TrackingUC) *VehicleHandler {
	return &VehicleHandler{trackingUC: trackingUC}
}

// ListVehicles returns the last-known state of every vehicle.
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.trackingUC.FleetSnapshot())
}

// GetVehicle returns the last-known state of one vehicle.
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	state, err := h.trackingUC.Vehicle(c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "vehicle not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load vehicle state")
	}
	return c.JSON(http.StatusOK, state)
}

// NearbyVehicles returns vehicles within a radius of a point, nearest first.
// Query parameters: lat, lng, radius_m (default 1000).
func (h *VehicleHandler) NearbyVehicles(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lat")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lng")
	}

	radiusM := 1000.0
	if raw := c.QueryParam("radius_m"); raw != "" {
		radiusM, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusM <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid radius_m")
		}
	}

	vehicles, err := h.trackingUC.NearbyVehicles(c.Request().Context(), lat, lng, radiusM)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to query nearby vehicles")
	}
	return c.JSON(http.StatusOK, vehicles)
}
