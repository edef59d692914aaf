// Package mail submits transactional email to a Resend-compatible API.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrDeliveryFailed reports a non-2xx response from the provider.
	// Never retried; the caller decides whether it is fatal.
	ErrDeliveryFailed = errors.New("mail: delivery failed")

	// ErrTimeout reports the provider not answering within the bound.
	ErrTimeout = errors.New("mail: provider timed out")
)

// DefaultAPIURL is the Resend API base.
const DefaultAPIURL = "https://api.resend.com"

// Message is one outbound transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender dispatches one message and returns the provider's email ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendClient talks to the Resend HTTP API.
type ResendClient struct {
	client *resty.Client
	from   string
}

// NewResendClient builds a client with a bounded per-request timeout. All
// mail goes out from the given sender address.
func NewResendClient(baseURL, apiKey, from string, timeout time.Duration) *ResendClient {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &ResendClient{client: client, from: from}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send submits the message. Non-2xx responses map to ErrDeliveryFailed,
// deadline misses to ErrTimeout; nothing is retried.
func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	var body sendResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    c.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		SetResult(&body).
		SetError(&body).
		Post("/emails")
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode(), body.Message)
	}

	return body.ID, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
