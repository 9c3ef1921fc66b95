package gatewayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alovak/cardflow-gateway/gateway/models"
)

// Client calls a running gateway over HTTP.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// ExportFields asks the gateway for the field export of card.
func (c *Client) ExportFields(ctx context.Context, card models.CreditCardRequest) (models.Fields, error) {
	b, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("encoding card: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/payment-methods/credit-card/fields", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("export fields: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("export fields status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	fields := models.Fields{}
	if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}

	return fields, nil
}
