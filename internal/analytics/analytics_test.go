package analytics

import (
	"testing"
	"time"

	"classapp-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

func msg(id, conv, user uint, offset time.Duration) models.Message {
	m := models.Message{ConversationID: conv, UserID: user, Content: "x"}
	m.ID = id
	m.CreatedAt = t0.Add(offset)
	return m
}

func channel(id uint, name string, stored *float64) models.Channel {
	c := models.Channel{Name: name, AverageResponseTime: stored}
	c.ID = id
	return c
}

func conversation(id, channelID, owner uint) models.Conversation {
	c := models.Conversation{ChannelID: channelID, UserID: owner}
	c.ID = id
	return c
}

func TestComputeChannelStats(t *testing.T) {
	stored := 42.0
	channels := []models.Channel{
		channel(3, "Sem dados", nil),
		channel(1, "Secretaria", nil),
		channel(2, "Financeiro", &stored),
	}
	conversations := []models.Conversation{
		conversation(10, 1, 100), // answered after 10 minutes, then again after 20
		conversation(11, 1, 101), // never answered
		conversation(12, 2, 102), // only staff wrote
	}
	messages := []models.Message{
		msg(1, 10, 100, 0),
		msg(2, 10, 100, 5*time.Minute),
		msg(3, 10, 900, 10*time.Minute),
		msg(4, 10, 100, 30*time.Minute),
		msg(5, 10, 900, 50*time.Minute),
		msg(6, 11, 101, time.Minute),
		msg(7, 12, 900, time.Minute),
		msg(8, 99, 100, time.Minute), // orphan, ignored
	}

	stats := ComputeChannelStats(channels, conversations, messages)

	require.Len(t, stats.ResponseRates, 3)
	require.Len(t, stats.ResponseTimes, 3)
	require.Len(t, stats.Details, 3)
	assert.Equal(t, []uint{1, 2, 3}, []uint{stats.Details[0].ID, stats.Details[1].ID, stats.Details[2].ID})

	// Secretaria: 1 of 2 owner threads answered, gaps 10 and 20 minutes
	assert.Equal(t, 50.0, stats.ResponseRates[0].Rate)
	assert.Equal(t, SourceConversations, stats.ResponseRates[0].Source)
	assert.False(t, stats.ResponseRates[0].Synthetic)
	assert.Equal(t, 15.0, stats.ResponseTimes[0].AvgTime)
	assert.Equal(t, SourceMessages, stats.ResponseTimes[0].Source)
	assert.Equal(t, 6, stats.Details[0].MessageCount)

	// Financeiro: no owner message, stored average used
	assert.True(t, stats.ResponseRates[1].Synthetic)
	assert.Equal(t, SourcePlaceholder, stats.ResponseRates[1].Source)
	assert.Equal(t, 42.0, stats.ResponseTimes[1].AvgTime)
	assert.Equal(t, SourceChannel, stats.ResponseTimes[1].Source)
	assert.False(t, stats.ResponseTimes[1].Synthetic)
	assert.Equal(t, 1, stats.Details[1].MessageCount)

	// Sem dados: placeholders everywhere
	assert.Equal(t, 0.0, stats.ResponseTimes[2].AvgTime)
	assert.True(t, stats.Details[2].ResponseRateSynthetic)
	assert.True(t, stats.Details[2].AverageResponseTimeSynthetic)
	assert.Equal(t, 0, stats.Details[2].MessageCount)
}

func TestComputeChannelStats_NoChannels(t *testing.T) {
	stats := ComputeChannelStats(nil, nil, nil)
	assert.NotNil(t, stats.ResponseRates)
	assert.Empty(t, stats.Details)
}

func TestDailyVolume_EmptyStore(t *testing.T) {
	points := DailyVolume(nil, 30, t0, time.UTC)

	require.Len(t, points, 30)
	assert.Equal(t, "2024-06-03", points[29].Date)
	assert.Equal(t, "2024-05-05", points[0].Date)
	for i, p := range points {
		assert.Equal(t, 0, p.Count)
		assert.False(t, p.Synthetic)
		if i > 0 {
			assert.Less(t, points[i-1].Date, p.Date)
		}
	}
}

func TestDailyVolume_CountsInLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	messages := []models.Message{
		msg(1, 1, 1, 0),                // 06:00 local, June 3
		msg(2, 1, 1, -10*time.Hour),    // 20:00 local, June 2
		msg(3, 1, 1, -11*time.Hour),    // 19:00 local, June 2
		msg(4, 1, 1, -40*24*time.Hour), // outside the window
	}
	points := DailyVolume(messages, 7, t0, loc)

	require.Len(t, points, 7)
	assert.Equal(t, "2024-06-03", points[6].Date)
	assert.Equal(t, 1, points[6].Count)
	assert.Equal(t, "2024-06-02", points[5].Date)
	assert.Equal(t, 2, points[5].Count)
}
