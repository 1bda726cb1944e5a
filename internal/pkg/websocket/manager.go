package websocket

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// Identity is the authenticated actor presented by the identity collaborator
// at connection-establishment time. The core performs no credential
// verification beyond validating the token hand-off.
type Identity struct {
	ActorID string
	Role    models.ActorRole
}

// Manager upgrades and authenticates incoming WebSocket connections
type Manager struct {
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		cfg: jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection,
// then hands the session to the supplied handler.
func (m *Manager) HandleConnection(c echo.Context, handleSession func(Identity, *websocket.Conn) error) error {
	identity, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleSession(identity, ws)
}

// authenticate validates the bearer token and extracts the actor identity
func (m *Manager) authenticate(c echo.Context) (Identity, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return Identity{ActorID: claims.ActorID, Role: claims.Role}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WSClaims, error) {
	claims := &models.WSClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ActorID == "" {
		return nil, fmt.Errorf("missing actor id in token")
	}

	return claims, nil
}
