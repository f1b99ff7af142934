package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ===========================================================================
// Centrifugo Client
// Publish dashboard events to a Centrifugo server over its HTTP API
// ===========================================================================

// Dashboard channels
const (
	ChannelConversations = "dashboard:conversations"
	ChannelAnnouncements = "dashboard:announcements"
)

// Event types carried in the Type field of every payload
const (
	EventMessageCreated      = "message.created"
	EventAnnouncementCreated = "announcement.created"
)

// Publisher interface for realtime events
type Publisher interface {
	// PublishNewMessage publishes a message appended to a conversation
	PublishNewMessage(ctx context.Context, event *MessageEvent) error

	// PublishAnnouncement publishes a newly created announcement
	PublishAnnouncement(ctx context.Context, event *AnnouncementEvent) error
}

// MessageEvent a message was appended to a conversation
type MessageEvent struct {
	Type           string    `json:"type"`
	MessageID      uint      `json:"messageId"`
	ConversationID uint      `json:"conversationId"`
	ChannelID      uint      `json:"channelId"`
	UserID         uint      `json:"userId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AnnouncementEvent an announcement was sent
type AnnouncementEvent struct {
	Type            string    `json:"type"`
	AnnouncementID  uint      `json:"announcementId"`
	Title           string    `json:"title"`
	SenderID        uint      `json:"senderId"`
	TotalRecipients int       `json:"totalRecipients"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CentrifugoClient implements Publisher
type CentrifugoClient struct {
	url    string
	apiKey string
	client *http.Client
	log    *zap.Logger
}

// NewCentrifugoClient creates a new Centrifugo client
func NewCentrifugoClient(url, apiKey string, log *zap.Logger) *CentrifugoClient {
	return &CentrifugoClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

// publishRequest sends a request to Centrifugo API
type publishRequest struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type publishParams struct {
	Channel string      `json:"channel"`
	Data    interface{} `json:"data"`
}

func (c *CentrifugoClient) publish(ctx context.Context, channel string, data interface{}) error {
	req := publishRequest{
		Method: "publish",
		Params: publishParams{
			Channel: channel,
			Data:    data,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Warn("centrifugo publish failed", zap.Error(err))
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("centrifugo publish bad status",
			zap.Int("status", resp.StatusCode),
			zap.String("channel", channel),
		)
		return fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	c.log.Debug("published to centrifugo",
		zap.String("channel", channel),
	)

	return nil
}

// PublishNewMessage publishes a message event on the conversations channel
func (c *CentrifugoClient) PublishNewMessage(ctx context.Context, event *MessageEvent) error {
	return c.publish(ctx, ChannelConversations, event)
}

// PublishAnnouncement publishes an announcement event on the announcements channel
func (c *CentrifugoClient) PublishAnnouncement(ctx context.Context, event *AnnouncementEvent) error {
	return c.publish(ctx, ChannelAnnouncements, event)
}

// ===========================================================================
// Noop Publisher (for when Centrifugo is not configured)
// ===========================================================================

// NoopPublisher does nothing (used when realtime is disabled)
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) PublishNewMessage(ctx context.Context, event *MessageEvent) error {
	return nil
}

func (n *NoopPublisher) PublishAnnouncement(ctx context.Context, event *AnnouncementEvent) error {
	return nil
}
