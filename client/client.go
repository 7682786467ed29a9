package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"aarasalon/models"
)

// apiEnvelope mirrors the server's uniform response shape.
type apiEnvelope struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Status   string           `json:"status"`
	Time     string           `json:"time"`
	Booking  *models.Booking  `json:"booking"`
	Bookings []models.Booking `json:"bookings"`
}

// APIError carries a non-success response from the booking API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// APIClient is a small JSON client for the booking API.
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

func (c *APIClient) do(ctx context.Context, method, path string, payload any) (*apiEnvelope, error) {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode >= 400 || !envelope.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
	return &envelope, nil
}

// CreateBooking submits a booking payload to POST /api/book.
func (c *APIClient) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	envelope, err := c.do(ctx, http.MethodPost, "/api/book", input)
	if err != nil {
		return nil, err
	}
	return envelope.Booking, nil
}

// ListBookings fetches all bookings, most recent first.
func (c *APIClient) ListBookings(ctx context.Context) ([]models.Booking, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/api/bookings", nil)
	if err != nil {
		return nil, err
	}
	return envelope.Bookings, nil
}

// GetBooking fetches a single booking by id.
func (c *APIClient) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/api/bookings/"+id, nil)
	if err != nil {
		return nil, err
	}
	return envelope.Booking, nil
}

// Health reports the API health status string.
func (c *APIClient) Health(ctx context.Context) (string, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return "", err
	}
	return envelope.Status, nil
}
