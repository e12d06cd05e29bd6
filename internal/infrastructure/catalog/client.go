package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peekay08/storefront/internal/domain"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"resty.dev/v3"
)

// DefaultURL is the fake store API the storefront was built against
const DefaultURL = "https://fakestoreapi.com/products"

// Config holds catalog client settings
type Config struct {
	URL               string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
}

// Client handles communication with the catalog API
type Client struct {
	httpClient  *resty.Client
	url         string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog API client
func NewClient(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetHeader("User-Agent", "PeeKay08-Storefront/1.0").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient:  httpClient,
		url:         strings.TrimRight(cfg.URL, "/"),
		rateLimiter: rate.NewLimiter(limit, 1),
	}
}

// SetDebug enables or disables request/response dumps
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
	c.httpClient.SetDebug(debug)
}

// Close releases idle connections held by the client
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// get executes a rate limited GET, decoding a JSON 2xx body into result
func (c *Client) get(ctx context.Context, reqURL string, result interface{}) (*resty.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	return c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(reqURL)
}

// FetchCatalog downloads the full product list
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	resp, err := c.get(ctx, c.url, &products)
	if err != nil {
		log.Errorf("[Catalog] Request error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Errorf("[Catalog] API error - Status: %d", resp.StatusCode())
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}

	// nil means the body was not a JSON array; "[]" decodes to an empty slice
	if products == nil {
		log.Errorf("[Catalog] Unexpected response, Content-Type: %s", resp.Header().Get("Content-Type"))
		return nil, fmt.Errorf("%w: response is not a JSON product list", domain.ErrCatalogUnavailable)
	}

	log.Infof("[Catalog] Fetched %d products", len(products))
	return products, nil
}

// FetchProduct downloads a single product by id.
// The API answers unknown ids with 200 and an empty or null body, which maps to ErrProductNotFound.
func (c *Client) FetchProduct(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	resp, err := c.get(ctx, c.url+"/"+strconv.Itoa(id), &product)
	if err != nil {
		if resp != nil && resp.StatusCode() == http.StatusOK && errors.Is(err, io.EOF) {
			return nil, domain.ErrProductNotFound
		}
		log.Errorf("[Catalog] Request error for product %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrProductNotFound
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}

	// empty and null bodies leave the result zeroed
	if product.ID == 0 {
		return nil, domain.ErrProductNotFound
	}

	return &product, nil
}
