package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCentrifugoClient_PublishNewMessage(t *testing.T) {
	var got struct {
		Method string `json:"method"`
		Params struct {
			Channel string       `json:"channel"`
			Data    MessageEvent `json:"data"`
		} `json:"params"`
	}
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewCentrifugoClient(srv.URL, "secret", zap.NewNop())
	err := c.PublishNewMessage(context.Background(), &MessageEvent{Type: EventMessageCreated, MessageID: 9, ConversationID: 3, Content: "Olá"})
	require.NoError(t, err)

	assert.Equal(t, "apikey secret", auth)
	assert.Equal(t, "publish", got.Method)
	assert.Equal(t, ChannelConversations, got.Params.Channel)
	assert.Equal(t, EventMessageCreated, got.Params.Data.Type)
	assert.Equal(t, uint(9), got.Params.Data.MessageID)
}

func TestCentrifugoClient_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewCentrifugoClient(srv.URL, "wrong", zap.NewNop())
	err := c.PublishAnnouncement(context.Background(), &AnnouncementEvent{AnnouncementID: 1})
	assert.Error(t, err)
}
