package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.stripe.com"

// StatusSucceeded is the only intent status that means money moved.
const StatusSucceeded = "succeeded"

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Shipping struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address *Address `json:"address"`
}

// PaymentIntent mirrors the fields of Stripe's payment intent object
// this service reads. Amount is in the currency's minor unit.
type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Metadata     map[string]string `json:"metadata"`
	Shipping     *Shipping         `json:"shipping"`
}

type CreateIntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Client talks to the Stripe REST API with the account's secret key.
type Client struct {
	secretKey string
	baseURL   string
	http      *resty.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL exists so tests can point the client at a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		secretKey: os.Getenv("STRIPE_SECRET_KEY"),
		baseURL:   baseURL,
		http:      resty.New().SetTimeout(30 * time.Second),
	}
}

// CreatePaymentIntent creates an intent with automatic payment methods
// enabled. The metadata carries the order contents forward to
// confirmation, it is the only channel that does.
func (c *Client) CreatePaymentIntent(ctx context.Context, params CreateIntentParams) (*PaymentIntent, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not set")
	}

	form := map[string]string{
		"amount":                             strconv.FormatInt(params.Amount, 10),
		"currency":                           params.Currency,
		"automatic_payment_methods[enabled]": "true",
	}
	for key, value := range params.Metadata {
		form["metadata["+key+"]"] = value
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.secretKey).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		Post(c.baseURL + "/v1/payment_intents")

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe payment intent creation failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return parsePaymentIntent(resp.Body())
}

// RetrievePaymentIntent fetches an intent by id. Callers must check
// Status themselves; a retrievable intent has not necessarily been paid.
func (c *Client) RetrievePaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not set")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.secretKey).
		SetHeader("Accept", "application/json").
		Get(c.baseURL + "/v1/payment_intents/" + id)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe payment intent retrieval failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return parsePaymentIntent(resp.Body())
}

func parsePaymentIntent(body []byte) (*PaymentIntent, error) {
	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent response: %w", err)
	}
	if intent.ID == "" {
		return nil, fmt.Errorf("payment intent id not found in response")
	}
	return &intent, nil
}
