// Package whitelist implements the Ministry-of-Finance VAT white-list check
// used to verify company tax IDs.
package whitelist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/bank/config"
)

// statusActive is the status the white-list reports for a VAT-registered,
// active company.
const statusActive = "Czynny"

// Client queries the MF white-list API. It implements
// account.WhitelistChecker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// searchResponse mirrors the relevant part of the white-list payload.
// See: https://wl-api.mf.gov.pl
type searchResponse struct {
	Result struct {
		Subject *struct {
			StatusVat string `json:"statusVat"`
		} `json:"subject"`
	} `json:"result"`
}

// New creates a white-list client from config.
func New(cfg config.Whitelist, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// IsActive reports whether the company behind nip is VAT-active as of the
// given date. Transport errors, non-200 responses and payloads without a
// subject all surface as errors so the caller can refuse the registration.
func (c *Client) IsActive(ctx context.Context, nip string, asOf time.Time) (bool, error) {
	url := fmt.Sprintf("%s/api/search/nip/%s?date=%s", c.baseURL, nip, asOf.Format("2006-01-02"))
	c.logger.Info("Checking NIP against VAT white-list", "nip", nip, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build white-list request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("white-list request failed: %w", err)
	}
	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("white-list API returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("failed to decode white-list response: %w", err)
	}
	if payload.Result.Subject == nil {
		return false, fmt.Errorf("white-list response has no subject for nip %s", nip)
	}
	return payload.Result.Subject.StatusVat == statusActive, nil
}
