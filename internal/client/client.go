// Package client talks to the FinTrack REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

func (c *Client) SetToken(token string) {
	c.token = token
}

// do sends body as JSON and decodes the envelope's data into out when out is not nil.
// It returns the envelope message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("decoding response from %s: %w", path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decoding data from %s: %w", path, err)
		}
	}
	return env.Message, nil
}

func (c *Client) Signup(ctx context.Context, email, username, password string) (string, error) {
	var data struct {
		UserID string `json:"user_id"`
	}
	_, err := c.do(ctx, http.MethodPost, "/api/signup", map[string]string{
		"email": email, "username": username, "password": password,
	}, &data)
	return data.UserID, err
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var data struct {
		AccessToken string `json:"access_token"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &data); err != nil {
		return "", err
	}
	c.token = data.AccessToken
	return data.AccessToken, nil
}

func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	_, err := c.do(ctx, http.MethodGet, "/api/protected/accounts", nil, &accounts)
	return accounts, err
}

func (c *Client) CreateAccount(ctx context.Context, name, accountType string) (string, error) {
	return c.do(ctx, http.MethodPost, "/api/protected/accounts", map[string]string{
		"account_name": name, "account_type": accountType,
	}, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, name string) (string, error) {
	return c.do(ctx, http.MethodDelete, "/api/protected/accounts/"+url.PathEscape(name), nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	_, err := c.do(ctx, http.MethodGet, "/api/protected/categories", nil, &categories)
	return categories, err
}

type CategoryInput struct {
	Nickname     string                 `json:"nickname"`
	CategoryType string                 `json:"category_type"`
	Budget       decimal.Decimal        `json:"budget"`
	BudgetFreq   domain.BudgetFrequency `json:"budget_freq"`
}

func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (string, error) {
	return c.do(ctx, http.MethodPost, "/api/protected/categories", input, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, nickname, field, newValue string) (*domain.Category, error) {
	var category domain.Category
	_, err := c.do(ctx, http.MethodPatch, "/api/protected/categories/"+url.PathEscape(nickname), map[string]string{
		"field": field, "new_value": newValue,
	}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, nickname string) (string, error) {
	return c.do(ctx, http.MethodDelete, "/api/protected/categories/"+url.PathEscape(nickname), nil, nil)
}

func (c *Client) AddTransaction(ctx context.Context, input domain.ClientTransaction) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if _, err := c.do(ctx, http.MethodPost, "/api/protected/transactions", input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, transactionID int) (string, error) {
	return c.do(ctx, http.MethodDelete, "/api/protected/transactions/"+strconv.Itoa(transactionID), nil, nil)
}

func (c *Client) CategoryTransactions(ctx context.Context, nickname string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	_, err := c.do(ctx, http.MethodGet, "/api/protected/categories/"+url.PathEscape(nickname)+"/transactions", nil, &transactions)
	return transactions, err
}

func (c *Client) AccountTransactions(ctx context.Context, name string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	_, err := c.do(ctx, http.MethodGet, "/api/protected/accounts/"+url.PathEscape(name)+"/transactions", nil, &transactions)
	return transactions, err
}

func (c *Client) ReportDetails(ctx context.Context) ([]domain.CategorySummary, error) {
	var report []domain.CategorySummary
	_, err := c.do(ctx, http.MethodGet, "/api/protected/reports/details", nil, &report)
	return report, err
}

func (c *Client) ReportOverview(ctx context.Context) ([]string, error) {
	var lines []string
	_, err := c.do(ctx, http.MethodGet, "/api/protected/reports/overview", nil, &lines)
	return lines, err
}
