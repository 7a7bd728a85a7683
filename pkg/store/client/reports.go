package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	dailySalesPath       = "/api/reports/daily-sales"
	monthlySalesPath     = "/api/reports/monthly-sales"
	inventoryPath        = "/api/reports/inventory"
	financialSummaryPath = "/api/reports/financial-summary"

	defaultTimeout = 30 * time.Second
)

// ReportsClient reads the four report endpoints of the reporting API.
type ReportsClient interface {
	GetDailySales(ctx context.Context, date time.Time) (*api.DailySalesPayload, error)
	GetMonthlySales(ctx context.Context, year int, month time.Month) (*api.MonthlySalesPayload, error)
	GetInventory(ctx context.Context) (*api.InventoryPayload, error)
	GetFinancialSummary(ctx context.Context, period domain.DateRange) (*api.FinancialSummaryPayload, error)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewReportsClient(profile domain.APIProfile) (*Client, error) {
	if profile.BaseURL == "" {
		return nil, fmt.Errorf("profile %q has no base_url", profile.Name)
	}
	if _, err := url.Parse(profile.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base_url for profile %q: %w", profile.Name, err)
	}

	timeout := profile.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(profile.BaseURL, "/"),
		token:      profile.Token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) GetDailySales(ctx context.Context, date time.Time) (*api.DailySalesPayload, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateLayout))
	return getJSON[api.DailySalesPayload](ctx, c, dailySalesPath, query)
}

func (c *Client) GetMonthlySales(ctx context.Context, year int, month time.Month) (*api.MonthlySalesPayload, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(int(month)))
	return getJSON[api.MonthlySalesPayload](ctx, c, monthlySalesPath, query)
}

func (c *Client) GetInventory(ctx context.Context) (*api.InventoryPayload, error) {
	return getJSON[api.InventoryPayload](ctx, c, inventoryPath, nil)
}

func (c *Client) GetFinancialSummary(ctx context.Context, period domain.DateRange) (*api.FinancialSummaryPayload, error) {
	query := url.Values{}
	query.Set("startDate", period.StartDate())
	query.Set("endDate", period.EndDate())
	return getJSON[api.FinancialSummaryPayload](ctx, c, financialSummaryPath, query)
}

func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	logger := zerolog.Ctx(ctx)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: err}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	var envelope api.Envelope[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to unmarshal response: %w", err),
		}
	}

	if !envelope.Success || envelope.Data == nil {
		msg := envelope.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return nil, &TransportError{Endpoint: path, StatusCode: resp.StatusCode, Err: ErrUnsuccessful, Message: msg}
	}

	return envelope.Data, nil
}
