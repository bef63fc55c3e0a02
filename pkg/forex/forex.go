package forex

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/kmaina/sokoboard/internal/utils"
)

const (
	// DefaultRate is the USD to KES fallback used whenever the upstream
	// is unreachable or returns an unexpected shape.
	DefaultRate = 140

	DefaultBaseURL = "https://api.exchangerate-host.com"
)

// Client fetches the current exchange rate. The fetch is best-effort
// enrichment: it never retries and never surfaces an error, it just
// hands back the previous value.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	base    string
	symbol  string
}

func NewClient(baseURL, base, symbol string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if base == "" {
		base = "USD"
	}
	if symbol == "" {
		symbol = "KES"
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = stdlog.New(io.Discard, "", 0)
	rc.HTTPClient.Timeout = 10 * time.Second

	return &Client{http: rc, baseURL: baseURL, base: base, symbol: symbol}
}

// Rate returns the latest rate, or current unchanged on any failure.
func (c *Client) Rate(ctx context.Context, current float64) float64 {
	url := fmt.Sprintf("%s/latest?base=%s&symbols=%s", c.baseURL, c.base, c.symbol)
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		utils.Log.Debugf("exchange rate request build failed: %v", err)
		return current
	}

	resp, err := c.http.Do(req)
	if err != nil {
		utils.Log.Debug("Using fallback exchange rate")
		return current
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.Log.Debug("Using fallback exchange rate")
		return current
	}

	rate := gjson.GetBytes(body, "rates."+c.symbol)
	if !rate.Exists() || rate.Float() <= 0 {
		utils.Log.Debugf("exchange rate response missing rates.%s", c.symbol)
		return current
	}
	return rate.Float()
}
