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

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
	Logger      *slog.Logger
}

// PromotionHandler holds dependencies for promotion-related handlers
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
		logger:      params.Logger,
	}
}

// CreatePromotion handles storing a promotional booklet with its scanned
// pages. Processing is kicked off asynchronously through the event publisher.
func (h *PromotionHandler) CreatePromotion(c echo.Context) error {
	var input usecase.CreatePromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	if input.Title == "" || input.SaleStartDate == "" || input.SaleEndDate == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "title, sale_start_date and sale_end_date are required")
	}
	if len(input.Pages) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "promotion must contain at least one page")
	}

	promotion, err := h.promotionUC.CreatePromotion(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, promotion)
}

// ProcessPromotion handles a manual trigger of one chunked processing run.
// The Pub/Sub worker uses the same usecase; this endpoint exists for
// operational reprocessing.
func (h *PromotionHandler) ProcessPromotion(c echo.Context) error {
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotion ID")
	}

	output, err := h.promotionUC.ProcessPromotion(c.Request().Context(), promotionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
