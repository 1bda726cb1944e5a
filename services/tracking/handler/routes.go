package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
	httpHandler "github.com/shegerlabs/transitlive/services/tracking/handler/http"
	natsHandler "github.com/shegerlabs/transitlive/services/tracking/handler/nats"
	wsHandler "github.com/shegerlabs/transitlive/services/tracking/handler/websocket"
)

// Handler coordinates all protocol handlers for the tracking service
type Handler struct {
	vehicleHandler *httpHandler.VehicleHandler
	sessionHandler *wsHandler.SessionHandler
	fleetHandler   *natsHandler.FleetHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	vehicleHandler *httpHandler.VehicleHandler,
	sessionHandler *wsHandler.SessionHandler,
	fleetHandler *natsHandler.FleetHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		vehicleHandler: vehicleHandler,
		sessionHandler: sessionHandler,
		fleetHandler:   fleetHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes.
// WebSocket authentication happens inside the connection manager, which
// validates the identity collaborator's bearer token during the upgrade.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	vehicleGroup := e.Group("/vehicles")
	vehicleGroup.GET("", h.vehicleHandler.ListVehicles)
	vehicleGroup.GET("/nearby", h.vehicleHandler.NearbyVehicles)
	vehicleGroup.GET("/:id", h.vehicleHandler.GetVehicle)

	e.GET("/ws", h.sessionHandler.HandleWebSocket)
}
