package handler

import (
	"log/slog"
	"net/http"

	"padpro/internal/delivery/http/response"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for alert-related handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// GetActiveAlerts handles retrieving the user's currently eligible,
// undismissed alerts.
func (h *AlertHandler) GetActiveAlerts(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	alerts, err := h.alertUC.GetActiveAlerts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}

// DismissAlert handles hiding an alert for its owner.
func (h *AlertHandler) DismissAlert(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	if err := h.alertUC.DismissAlert(c.Request().Context(), userID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Alert dismissed successfully"})
}

// getUserID extracts the user ID from the context
func (h *AlertHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
