package ptax

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/biz-days/pkg/dateutil"
)

const (
	// DefaultEndpoint is the Banco Central do Brasil OData resource for daily dollar quotes
	DefaultEndpoint = "https://olinda.bcb.gov.br/olinda/servico/PTAX/versao/v1/odata/CotacaoDolarDia(dataCotacao=@dataCotacao)"

	// DefaultTimeout bounds a single quote request
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// ErrUnavailable is wrapped by every FetchBuyRate failure
var ErrUnavailable = errors.New("usd/brl rate unavailable")

// RateSource returns the USD/BRL buy rate for a date
type RateSource interface {
	FetchBuyRate(ctx context.Context, date time.Time) (float64, error)
}

// Client is a PTAX API client
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new PTAX client. Zero timeout means the package default.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchBuyRate returns cotacaoCompra of the first quote published for date
func (c *Client) FetchBuyRate(ctx context.Context, date time.Time) (float64, error) {
	url := c.buildURL(date)

	c.logger.Debug("Fetching USD/BRL quote",
		zap.String("url", url),
		zap.String("date", dateutil.FormatISODate(date)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: request failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: API returned status %d: %s", ErrUnavailable, resp.StatusCode, truncate(string(body), 200))
	}

	var quotes quoteResponse
	if err := json.Unmarshal(body, &quotes); err != nil {
		return 0, fmt.Errorf("%w: failed to parse response: %v", ErrUnavailable, err)
	}

	if len(quotes.Value) == 0 {
		return 0, fmt.Errorf("%w: no quote published for %s", ErrUnavailable, dateutil.FormatMDY(date))
	}

	buy := quotes.Value[0].BuyRate
	if buy == nil {
		return 0, fmt.Errorf("%w: quote has no cotacaoCompra", ErrUnavailable)
	}

	c.logger.Info("USD/BRL quote fetched",
		zap.String("date", dateutil.FormatISODate(date)),
		zap.Float64("buy_rate", *buy),
		zap.String("quoted_at", quotes.Value[0].QuotedAt))

	return *buy, nil
}

// buildURL keeps the OData parameter names literal; the service expects
// @dataCotacao and $top/$format unescaped.
func (c *Client) buildURL(date time.Time) string {
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s@dataCotacao='%s'&$top=100&$format=json",
		c.endpoint, sep, dateutil.FormatMDY(date))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
