package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/config"
)

func newTestClient(baseURL string) Client {
	return NewRazorpayClient(&config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "rzp_test_secret",
		RazorpayBaseURL:   baseURL,
		RazorpayCurrency:  "INR",
	})
}

func TestCreateOrder(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", username)
		assert.Equal(t, "rzp_test_secret", password)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test123",
			"amount":   gotBody["amount"],
			"currency": "INR",
			"receipt":  gotBody["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	order, err := client.CreateOrder(49900, "receipt-1")
	require.NoError(t, err)

	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, 49900, order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "receipt-1", order.Receipt)

	assert.EqualValues(t, 49900, gotBody["amount"])
	assert.EqualValues(t, 1, gotBody["payment_capture"])
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(100, "receipt-1")
	assert.Error(t, err)
}

func TestKeyID(t *testing.T) {
	client := newTestClient("http://localhost")
	assert.Equal(t, "rzp_test_key", client.KeyID())
}
