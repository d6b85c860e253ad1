package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"learnhub/config"
)

// Order is the gateway-side handle for a pending charge. Field shapes follow
// the Razorpay Orders API response and are consumed as-is.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"` // minor currency units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client creates payment orders on the gateway.
type Client interface {
	CreateOrder(amount int, receipt string) (*Order, error)
	KeyID() string
}

type razorpayClient struct {
	baseURL   string
	keyID     string
	keySecret string
	currency  string
	http      *resty.Client
}

// NewRazorpayClient builds a gateway client from configuration. The client is
// passed into the payment controller explicitly; nothing holds it globally.
func NewRazorpayClient(cfg *config.Config) Client {
	return &razorpayClient{
		baseURL:   cfg.RazorpayBaseURL,
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		currency:  cfg.RazorpayCurrency,
		http:      resty.New(),
	}
}

// KeyID exposes the public key for the client-side checkout widget.
func (rc *razorpayClient) KeyID() string {
	return rc.keyID
}

// CreateOrder requests a capture-on-payment order for the given amount in
// minor currency units. Single synchronous call, no retries.
func (rc *razorpayClient) CreateOrder(amount int, receipt string) (*Order, error) {
	resp, err := rc.http.R().
		SetBasicAuth(rc.keyID, rc.keySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":          amount,
			"currency":        rc.currency,
			"receipt":         receipt,
			"payment_capture": 1,
		}).
		Post(rc.baseURL + "/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gateway error: %s", resp.String())
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %v", err)
	}

	return &order, nil
}
