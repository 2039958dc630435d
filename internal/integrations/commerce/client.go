package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// launchLayouts форматы даты запуска, которые встречаются в каталоге
var launchLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

const stockStatusOutOfStock = "outofstock"

// Client клиент каталога товаров магазина
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProduct получает товар по ID
// Для id <= 0 возвращает (nil, nil) без запроса: курс может быть не привязан к товару
func (c *Client) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	if productID <= 0 {
		return nil, nil
	}

	url := fmt.Sprintf("%s/internal/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.toDomain(&product), nil
}

// GetProductWithGracefulDegradation получает товар с graceful degradation
// ErrProductNotFound пробрасывается как есть, остальные ошибки превращаются в ErrServiceDegraded
func (c *Client) GetProductWithGracefulDegradation(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.log.Warn("Product not found in catalog, product_id=%d", productID)
			return nil, err
		}

		c.log.Error("Commerce catalog unavailable, applying graceful degradation for product_id=%d: %v", productID, err)
		return nil, fmt.Errorf("%w: product_id=%d, error=%v", ErrServiceDegraded, productID, err)
	}

	return product, nil
}

func (c *Client) toDomain(p *Product) *domain.Product {
	product := &domain.Product{
		ID:      p.ID,
		Name:    p.Name,
		InStock: p.InStock,
	}
	if p.StockStatus != "" {
		product.InStock = p.StockStatus != stockStatusOutOfStock
	}

	if raw := strings.TrimSpace(p.LaunchAt); raw != "" {
		launchAt, ok := parseLaunchAt(raw)
		if !ok {
			c.log.Warn("Unparseable launch date for product_id=%d: %q", p.ID, raw)
		} else {
			product.LaunchAt = &launchAt
		}
	}

	return product
}

func parseLaunchAt(raw string) (time.Time, bool) {
	for _, layout := range launchLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
