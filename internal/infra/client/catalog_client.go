package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/219WD/jamrock-front-sub001/internal/domain/model"
	"github.com/rs/zerolog"
)

// ICatalogClient 商品目錄服務，對本端而言唯讀
type ICatalogClient interface {
	ListProducts(ctx context.Context) ([]model.CatalogEntry, error)
}

type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

var _ ICatalogClient = (*CatalogClient)(nil)

func NewCatalogClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) *CatalogClient {
	return &CatalogClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListProducts 取回目錄商品
// 每個 entry 各自解碼，解不開的略過，不當成整體錯誤
func (c *CatalogClient) ListProducts(ctx context.Context) ([]model.CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperr.ServiceError{Op: "GET /products", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperr.ServiceError{
			Op:      "GET /products",
			Status:  resp.StatusCode,
			Message: readServiceMessage(resp.Body),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.ServiceError{Op: "GET /products", Message: err.Error()}
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &apperr.ServiceError{Op: "GET /products", Status: resp.StatusCode, Message: "malformed response from catalog service"}
	}

	entries := make([]model.CatalogEntry, 0, len(raws))
	for _, raw := range raws {
		var entry model.CatalogEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			c.logger.Debug().Err(err).Msg("skipping undecodable catalog entry")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
