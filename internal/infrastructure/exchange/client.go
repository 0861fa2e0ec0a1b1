package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// RateSource yields the rate table of a base currency: target code → rate.
type RateSource interface {
	Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// Client talks to an exchangerate-api style endpoint:
// GET {base_url}/latest/{BASE} → {"conversion_rates": {"USD": 1.08, ...}}
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

type ratesResponse struct {
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

func (c *Client) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := c.baseURL + "/latest/" + strings.ToUpper(base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d for base %s", resp.StatusCode, base)
	}
	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.ConversionRates) == 0 {
		return nil, fmt.Errorf("rate source returned no rates for base %s", base)
	}
	return body.ConversionRates, nil
}
