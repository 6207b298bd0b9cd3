package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent_SendsFormEncodedRequest(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	var gotForm map[string]string
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())

		gotAuth = r.Header.Get("Authorization")
		gotForm = map[string]string{
			"amount":                             r.PostFormValue("amount"),
			"currency":                           r.PostFormValue("currency"),
			"automatic_payment_methods[enabled]": r.PostFormValue("automatic_payment_methods[enabled]"),
			"metadata[customerEmail]":            r.PostFormValue("metadata[customerEmail]"),
			"metadata[cartItems]":                r.PostFormValue("metadata[cartItems]"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","status":"requires_payment_method","amount":2599,"currency":"usd"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	intent, err := client.CreatePaymentIntent(context.Background(), CreateIntentParams{
		Amount:   2599,
		Currency: "usd",
		Metadata: map[string]string{
			"customerEmail": "a@b.com",
			"cartItems":     `[{"id":"1","quantity":2}]`,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "2599", gotForm["amount"])
	assert.Equal(t, "usd", gotForm["currency"])
	assert.Equal(t, "true", gotForm["automatic_payment_methods[enabled]"])
	assert.Equal(t, "a@b.com", gotForm["metadata[customerEmail]"])
	assert.Equal(t, `[{"id":"1","quantity":2}]`, gotForm["metadata[cartItems]"])
}

func TestCreatePaymentIntent_ProviderError(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Amount must be at least 50 cents"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	intent, err := client.CreatePaymentIntent(context.Background(), CreateIntentParams{Amount: 10, Currency: "usd"})

	require.Error(t, err)
	assert.Nil(t, intent)
	assert.Contains(t, err.Error(), "status 400")
}

func TestCreatePaymentIntent_MissingSecretKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	client := NewClientWithBaseURL("http://localhost:0")
	_, err := client.CreatePaymentIntent(context.Background(), CreateIntentParams{Amount: 100, Currency: "usd"})

	require.Error(t, err)
}

func TestRetrievePaymentIntent_DecodesMetadataAndShipping(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "pi_123",
			"status": "succeeded",
			"amount": 2599,
			"currency": "usd",
			"metadata": {"customerEmail": "a@b.com", "cartItems": "[]"},
			"shipping": {
				"name": "Jane Doe",
				"address": {"line1": "1 Main St", "city": "Springfield", "state": "IL", "postal_code": "62701", "country": "US"}
			}
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	intent, err := client.RetrievePaymentIntent(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
	assert.Equal(t, int64(2599), intent.Amount)
	assert.Equal(t, "a@b.com", intent.Metadata["customerEmail"])
	require.NotNil(t, intent.Shipping)
	assert.Equal(t, "Jane Doe", intent.Shipping.Name)
	require.NotNil(t, intent.Shipping.Address)
	assert.Equal(t, "Springfield", intent.Shipping.Address.City)
}

func TestRetrievePaymentIntent_MalformedResponse(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.RetrievePaymentIntent(context.Background(), "pi_123")

	require.Error(t, err)
}
