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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// WebhookRequest represents the normalized billing webhook payload
type WebhookRequest struct {
	UserID           uuid.UUID `json:"user_id" validate:"required"`
	Provider         string    `json:"provider" validate:"required,oneof=stripe apple"`
	ProviderRef      string    `json:"provider_ref" validate:"required"`
	Plan             string    `json:"plan" validate:"required"`
	Status           string    `json:"status" validate:"required,oneof=active past_due canceled"`
	CurrentPeriodEnd string    `json:"current_period_end" validate:"required"`
}

// HandleWebhook applies a billing provider's webhook notification.
// Providers retry deliveries, so the underlying upsert is idempotent.
func (h *SubscriptionHandler) HandleWebhook(c echo.Context) error {
	var req WebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.ApplyWebhook(c.Request().Context(), &usecase.SubscriptionWebhookInput{
		UserID:           req.UserID,
		Provider:         req.Provider,
		ProviderRef:      req.ProviderRef,
		Plan:             req.Plan,
		Status:           req.Status,
		CurrentPeriodEnd: req.CurrentPeriodEnd,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription)
}

// GetUserSubscription handles retrieving the caller's subscription record.
func (h *SubscriptionHandler) GetUserSubscription(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	subscription, err := h.subscriptionUC.GetUserSubscription(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription)
}

// getUserID extracts the user ID from the context
func (h *SubscriptionHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
