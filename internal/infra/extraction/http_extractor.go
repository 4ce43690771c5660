// Package extraction calls the external text-to-sale-items gateway.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"padpro/config"
	"padpro/internal/domain/entity"
	"padpro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultExtractionTimeout = 60 * time.Second

// httpExtractor implements SaleItemExtractor by posting raw page text to an
// external extraction service and decoding the structured items it returns.
type httpExtractor struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// extractRequest is the wire shape sent to the extraction service.
type extractRequest struct {
	PageText string `json:"page_text"`
}

// extractedItem is the wire shape of one item in the extraction response.
type extractedItem struct {
	ItemCode      string           `json:"item_code"`
	Description   string           `json:"description"`
	RegularPrice  *decimal.Decimal `json:"regular_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	InstantRebate *decimal.Decimal `json:"instant_rebate"`
	SaleType      string           `json:"sale_type"`
}

type extractResponse struct {
	Items []extractedItem `json:"items"`
}

// NewHTTPExtractor creates a new extraction gateway client.
func NewHTTPExtractor(cfg *config.Config, logger *slog.Logger) (service.SaleItemExtractor, error) {
	if cfg.Extraction == nil || cfg.Extraction.Endpoint == "" {
		return nil, errors.New("extraction endpoint must be configured")
	}

	timeout := cfg.Extraction.Timeout
	if timeout <= 0 {
		timeout = defaultExtractionTimeout
	}

	return &httpExtractor{
		endpoint: cfg.Extraction.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// ExtractSaleItems parses one page of sale-book text into sale items.
// Items with an unknown sale type or no item code are skipped, not errored:
// the extraction service sees noisy scans and partial rows are expected.
func (e *httpExtractor) ExtractSaleItems(ctx context.Context, promotionID uuid.UUID, pageText string) ([]*entity.OfficialSaleItem, error) {
	body, err := json.Marshal(extractRequest{PageText: pageText})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "extraction request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read extraction response")
	}

	var decoded extractResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode extraction response")
	}

	items := make([]*entity.OfficialSaleItem, 0, len(decoded.Items))
	for _, raw := range decoded.Items {
		saleType := entity.SaleType(raw.SaleType)
		if raw.ItemCode == "" || !saleType.Valid() {
			e.logger.Warn("Skipping unusable extracted item",
				slog.String("item_code", raw.ItemCode),
				slog.String("sale_type", raw.SaleType),
			)

			continue
		}

		items = append(items, &entity.OfficialSaleItem{
			PromotionID:   promotionID,
			ItemCode:      raw.ItemCode,
			Description:   raw.Description,
			RegularPrice:  raw.RegularPrice,
			SalePrice:     raw.SalePrice,
			InstantRebate: raw.InstantRebate,
			SaleType:      saleType,
		})
	}

	return items, nil
}
