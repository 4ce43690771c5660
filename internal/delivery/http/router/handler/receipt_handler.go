package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"padpro/internal/delivery/http/response"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReceiptHandlerParams holds dependencies for ReceiptHandler, injected by Fx.
type ReceiptHandlerParams struct {
	fx.In

	ReceiptUC usecase.ReceiptUsecase
	Logger    *slog.Logger
}

// ReceiptHandler holds dependencies for receipt-related handlers
type ReceiptHandler struct {
	receiptUC usecase.ReceiptUsecase
	logger    *slog.Logger
}

// NewReceiptHandler is the constructor for ReceiptHandler
func NewReceiptHandler(params ReceiptHandlerParams) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUC: params.ReceiptUC,
		logger:    params.Logger,
	}
}

// IngestReceipt handles storing a parsed receipt and running the matching
// pass over its lines.
func (h *ReceiptHandler) IngestReceipt(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var input usecase.IngestReceiptInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}

	if input.StoreNumber == "" || input.TransactionDate == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "store_number and transaction_date are required")
	}
	if len(input.Items) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "receipt must contain at least one item")
	}

	output, err := h.receiptUC.IngestReceipt(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetUserReceipts handles retrieving the user's receipts, newest first.
func (h *ReceiptHandler) GetUserReceipts(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)

	receipts, err := h.receiptUC.GetUserReceipts(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipts)
}

// DeleteReceipt handles removing a receipt and the alerts keyed to its
// purchase context.
func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid receipt ID")
	}

	if err := h.receiptUC.DeleteReceipt(c.Request().Context(), userID, receiptID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Receipt deleted successfully"})
}

// getUserID extracts the user ID from the context
func (h *ReceiptHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// parsePagination reads limit/offset query parameters with sane defaults.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 20
	offset = 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
