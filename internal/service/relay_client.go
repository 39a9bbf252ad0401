package service

import (
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/config"
	"github.com/jthmssse/saisonnales-app-v2/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RelayClient forwards new reservations to an external form endpoint
// (notification mailer, CRM webhook). Submission is best effort: the
// reservation is already committed when the relay fires, and a relay failure
// is only logged.
type RelayClient struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

// NewRelayClient returns nil when no relay URL is configured.
func NewRelayClient(cfg config.RelayConfig, logger *zap.Logger) *RelayClient {
	if cfg.URL == "" {
		return nil
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)
	return &RelayClient{client: client, url: cfg.URL, logger: logger}
}

type relayPayload struct {
	Name      string `json:"name"`
	Room      string `json:"room"`
	GIR       string `json:"gir"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// SendReservation posts the reservation summary to the relay endpoint.
func (c *RelayClient) SendReservation(r domain.Resident) {
	payload := relayPayload{
		Name:      r.Name,
		Room:      r.Room,
		GIR:       r.GIR,
		Arrival:   r.Arrival,
		Departure: r.Departure,
		Phone:     r.Phone,
		Email:     r.Email,
	}

	resp, err := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(c.url)
	if err != nil {
		c.logger.Warn("reservation relay failed", zap.Error(err), zap.String("url", c.url))
		return
	}
	if resp.IsError() {
		c.logger.Warn("reservation relay rejected",
			zap.Int("status", resp.StatusCode()),
			zap.String("url", c.url))
		return
	}
	c.logger.Info("reservation relayed", zap.String("name", r.Name), zap.String("room", r.Room))
}
