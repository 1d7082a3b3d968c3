// Package razorpay is a small REST client for the parts of the Razorpay API
// the subscription flow needs.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/fatflowers/coursehub/pkg/metrics"
)

const defaultBaseURL = "https://api.razorpay.com"

type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	gw := cfg.Gateway
	baseURL := gw.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := gw.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		keyID:      gw.KeyID,
		keySecret:  gw.KeySecret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// KeyID is the publishable key used by the checkout widget.
func (c *Client) KeyID() string { return c.keyID }

func (c *Client) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, "create_subscription", http.MethodPost, "/v1/subscriptions", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels immediately rather than at cycle end.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	var sub Subscription
	path := "/v1/subscriptions/" + url.PathEscape(subscriptionID) + "/cancel"
	if err := c.do(ctx, "cancel_subscription", http.MethodPost, path, cancelSubscriptionRequest{}, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// RefundPayment issues a full refund of paymentID.
func (c *Client) RefundPayment(ctx context.Context, paymentID string) (*Refund, error) {
	var refund Refund
	path := "/v1/payments/" + url.PathEscape(paymentID) + "/refund"
	if err := c.do(ctx, "refund_payment", http.MethodPost, path, struct{}{}, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.GatewayDuration.WithLabelValues(op, metrics.Outcome(err)).Observe(metrics.MillisecondsSince(start))
	}()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("razorpay %s: encode request: %w", op, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("razorpay %s: %w", op, err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("razorpay %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("razorpay %s: read response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		if json.Unmarshal(data, &env) == nil && env.Error != nil {
			env.Error.StatusCode = resp.StatusCode
			return fmt.Errorf("razorpay %s: %w", op, env.Error)
		}
		return fmt.Errorf("razorpay %s: %w", op, &APIError{StatusCode: resp.StatusCode, Description: resp.Status})
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("razorpay %s: decode response: %w", op, err)
	}
	return nil
}
