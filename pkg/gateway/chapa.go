package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.chapa.co"

// minPhoneDigits is the shortest sanitized phone number the provider will
// accept; anything shorter is dropped from the request entirely.
const minPhoneDigits = 9

// ChapaClient implements the Gateway interface against the Chapa API.
type ChapaClient struct {
	HTTPClient  *http.Client
	BaseURL     string
	SecretKey   string
	CallbackURL string
}

// NewChapaClient creates a new ChapaClient.
func NewChapaClient(secretKey, callbackURL string) *ChapaClient {
	return &ChapaClient{
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		BaseURL:     defaultBaseURL,
		SecretKey:   secretKey,
		CallbackURL: callbackURL,
	}
}

// Make sure we conform to the interface
var _ Gateway = (*ChapaClient)(nil)

type chapaInitPayload struct {
	Amount        string             `json:"amount"`
	Currency      string             `json:"currency"`
	Email         string             `json:"email"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	PhoneNumber   string             `json:"phone_number,omitempty"`
	TxRef         string             `json:"tx_ref"`
	CallbackURL   string             `json:"callback_url,omitempty"`
	ReturnURL     string             `json:"return_url,omitempty"`
	Customization chapaCustomization `json:"customization"`
}

type chapaCustomization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type chapaResponse struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
		Status      string `json:"status"`
	} `json:"data"`
}

// Initiate opens a Chapa checkout session for the given request.
func (c *ChapaClient) Initiate(ctx context.Context, req *InitRequest) (*InitResult, error) {
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	if string(req.Email) == "" {
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	}
	if req.TxRef == "" {
		return nil, &ValidationError{Field: "tx_ref", Reason: "is required"}
	}

	payload := chapaInitPayload{
		Amount:      fmt.Sprintf("%.2f", float64(req.Amount)),
		Currency:    "ETB",
		Email:       string(req.Email),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		TxRef:       req.TxRef,
		CallbackURL: c.CallbackURL,
		ReturnURL:   req.ReturnURL,
		Customization: chapaCustomization{
			Title:       "Wedding Payment",
			Description: "Payment for wedding services",
		},
	}
	if phone := sanitizePhone(req.PhoneNumber); phone != "" {
		payload.PhoneNumber = phone
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initiation payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build initiation request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	var parsed chapaResponse
	if err := decodeBody(resp.Body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if parsed.Status != "success" || parsed.Data.CheckoutURL == "" {
		return nil, &InitError{Message: providerMessage(parsed.Message)}
	}

	return &InitResult{CheckoutURL: parsed.Data.CheckoutURL, TxRef: req.TxRef}, nil
}

// Verify resolves a transaction reference against Chapa. A transaction the
// provider has not confirmed yet is OutcomePending, not an error.
func (c *ChapaClient) Verify(ctx context.Context, txRef string) (Outcome, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/transaction/verify/"+txRef, nil)
	if err != nil {
		return OutcomePending, fmt.Errorf("failed to build verification request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return OutcomePending, fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return OutcomePending, fmt.Errorf("provider verification failed with status %d", resp.StatusCode)
	}

	var parsed chapaResponse
	if err := decodeBody(resp.Body, &parsed); err != nil {
		return OutcomePending, fmt.Errorf("failed to decode provider response: %w", err)
	}

	switch strings.ToLower(parsed.Data.Status) {
	case "success":
		return OutcomePaid, nil
	case "failed":
		return OutcomeFailed, nil
	default:
		// Unknown reference or not yet confirmed: keep polling.
		return OutcomePending, nil
	}
}

func decodeBody(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// providerMessage flattens Chapa's message field, which is a string on
// some rejections and a field->errors object on others.
func providerMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "Failed to initialize payment"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		var parts []string
		for _, msgs := range fields {
			parts = append(parts, msgs...)
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return "Failed to initialize payment"
}

// sanitizePhone keeps only + and digits, and drops numbers too short for
// the provider to accept.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() < minPhoneDigits {
		return ""
	}
	return b.String()
}
