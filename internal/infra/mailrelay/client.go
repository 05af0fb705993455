package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"bluehaven/internal/pkg/errs"
)

var (
	ErrRelayUnreachable = errs.New("mail relay unreachable")
	ErrRelayRejected    = errs.New("mail relay rejected the send")
)

// Client posts template sends to the EmailJS REST endpoint.
type Client struct {
	endpoint   string
	serviceID  string
	publicKey  string
	privateKey string
	httpClient *http.Client
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams map[string]any `json:"template_params"`
}

func NewClient(endpoint, serviceID, publicKey, privateKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		serviceID:  serviceID,
		publicKey:  publicKey,
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Send(ctx context.Context, templateID string, params map[string]any) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode mail relay request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build mail relay request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "mail relay request failed"), ErrRelayUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(errs.Newf("mail relay returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg)), ErrRelayRejected)
	}
	return nil
}
