package pos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCash  = "cash"
	PaymentGcash = "gcash"
)

type Receipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
	Payments  []Payment `json:"payments"`
}

type Item struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Payment struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// SalesAPI is the read surface of the lounge's point-of-sale system.
type SalesAPI interface {
	FetchReceipts(ctx context.Context, from, to time.Time) ([]Receipt, error)
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) SalesAPI {
	return &client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) FetchReceipts(ctx context.Context, from, to time.Time) ([]Receipt, error) {
	endpoint := fmt.Sprintf("%s/receipts?%s", c.baseURL, url.Values{
		"from": {from.UTC().Format(time.RFC3339)},
		"to":   {to.UTC().Format(time.RFC3339)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sales api returned status %d", resp.StatusCode)
	}

	var payload struct {
		Receipts []Receipt `json:"receipts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Receipts, nil
}
