package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client resolves a country name to its primary currency code via a
// restcountries-style endpoint:
// GET {base_url}/name/{country}?fields=currencies → [{"currencies":{"EUR":{...}}}]
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

func (c *Client) CurrencyForCountry(ctx context.Context, country string) (string, error) {
	u := c.baseURL + "/name/" + url.PathEscape(country) + "?fields=currencies"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("country source returned status %d for %q", resp.StatusCode, country)
	}
	var body []struct {
		Currencies map[string]json.RawMessage `json:"currencies"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body) == 0 || len(body[0].Currencies) == 0 {
		return "", fmt.Errorf("no currency found for country %q", country)
	}
	for code := range body[0].Currencies {
		return strings.ToUpper(code), nil
	}
	return "", fmt.Errorf("no currency found for country %q", country)
}
