// Package analytics computes conversation statistics from stored records.
//
// Every metric carries its provenance: values derived from real records
// name the records they came from, values that could not be derived are
// zero placeholders flagged Synthetic.
package analytics

import (
	"math"
	"sort"
	"time"

	"classapp-admin/internal/models"
)

// Source where a metric value came from
type Source string

const (
	// SourceConversations derived from conversation reply patterns
	SourceConversations Source = "conversations"

	// SourceMessages derived from message timestamps
	SourceMessages Source = "messages"

	// SourceChannel the value stored on the channel record
	SourceChannel Source = "channel"

	// SourcePlaceholder no data, the value is a zero placeholder
	SourcePlaceholder Source = "placeholder"
)

// Synthetic reports whether the value is a placeholder
func (s Source) Synthetic() bool {
	return s == SourcePlaceholder
}

// ResponseRate share of answered conversations of a channel, 0-100
type ResponseRate struct {
	ChannelID   uint    `json:"channelId"`
	ChannelName string  `json:"channelName"`
	Rate        float64 `json:"rate"`
	Source      Source  `json:"source"`
	Synthetic   bool    `json:"synthetic"`
}

// ResponseTime average minutes until an owner message gets a reply
type ResponseTime struct {
	ChannelID   uint    `json:"channelId"`
	ChannelName string  `json:"channelName"`
	AvgTime     float64 `json:"avgTime"`
	Source      Source  `json:"source"`
	Synthetic   bool    `json:"synthetic"`
}

// ChannelDetail per channel summary row
type ChannelDetail struct {
	ID                           uint    `json:"id"`
	Name                         string  `json:"name"`
	MessageCount                 int     `json:"messageCount"`
	ResponseRate                 float64 `json:"responseRate"`
	AverageResponseTime          float64 `json:"averageResponseTime"`
	ResponseRateSynthetic        bool    `json:"responseRateSynthetic"`
	AverageResponseTimeSynthetic bool    `json:"averageResponseTimeSynthetic"`
}

// VolumePoint number of messages created on one calendar day
type VolumePoint struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Synthetic bool   `json:"synthetic"`
}

// ChannelStats per channel lists, each in channel id order
type ChannelStats struct {
	ResponseRates []ResponseRate
	ResponseTimes []ResponseTime
	Details       []ChannelDetail
}

// DateLayout format of VolumePoint.Date
const DateLayout = "2006-01-02"

// ComputeChannelStats builds one entry per channel in each list
func ComputeChannelStats(channels []models.Channel, conversations []models.Conversation, messages []models.Message) ChannelStats {
	chans := append([]models.Channel(nil), channels...)
	sort.Slice(chans, func(i, j int) bool { return chans[i].ID < chans[j].ID })

	convByID := make(map[uint]models.Conversation, len(conversations))
	for _, c := range conversations {
		convByID[c.ID] = c
	}

	// group messages per conversation, chronological
	threads := make(map[uint][]models.Message)
	for _, m := range messages {
		if _, ok := convByID[m.ConversationID]; ok {
			threads[m.ConversationID] = append(threads[m.ConversationID], m)
		}
	}
	for id := range threads {
		sortChronological(threads[id])
	}

	type acc struct {
		messages        int
		ownerThreads    int
		answeredThreads int
		gapsMinutes     float64
		gaps            int
	}
	perChannel := make(map[uint]*acc, len(chans))
	for _, ch := range chans {
		perChannel[ch.ID] = &acc{}
	}

	for convID, thread := range threads {
		conv := convByID[convID]
		a, ok := perChannel[conv.ChannelID]
		if !ok {
			continue
		}
		a.messages += len(thread)

		t := replyPattern(conv.UserID, thread)
		if t.hasOwnerMessage {
			a.ownerThreads++
			if t.answered {
				a.answeredThreads++
			}
		}
		a.gapsMinutes += t.gapMinutes
		a.gaps += t.gaps
	}

	stats := ChannelStats{
		ResponseRates: make([]ResponseRate, 0, len(chans)),
		ResponseTimes: make([]ResponseTime, 0, len(chans)),
		Details:       make([]ChannelDetail, 0, len(chans)),
	}
	for _, ch := range chans {
		a := perChannel[ch.ID]

		rate, rateSource := 0.0, SourcePlaceholder
		if a.ownerThreads > 0 {
			rate = round1(float64(a.answeredThreads) / float64(a.ownerThreads) * 100)
			rateSource = SourceConversations
		}

		avg, avgSource := 0.0, SourcePlaceholder
		switch {
		case a.gaps > 0:
			avg = round1(a.gapsMinutes / float64(a.gaps))
			avgSource = SourceMessages
		case ch.AverageResponseTime != nil:
			avg = *ch.AverageResponseTime
			avgSource = SourceChannel
		}

		stats.ResponseRates = append(stats.ResponseRates, ResponseRate{
			ChannelID:   ch.ID,
			ChannelName: ch.Name,
			Rate:        rate,
			Source:      rateSource,
			Synthetic:   rateSource.Synthetic(),
		})
		stats.ResponseTimes = append(stats.ResponseTimes, ResponseTime{
			ChannelID:   ch.ID,
			ChannelName: ch.Name,
			AvgTime:     avg,
			Source:      avgSource,
			Synthetic:   avgSource.Synthetic(),
		})
		stats.Details = append(stats.Details, ChannelDetail{
			ID:                           ch.ID,
			Name:                         ch.Name,
			MessageCount:                 a.messages,
			ResponseRate:                 rate,
			AverageResponseTime:          avg,
			ResponseRateSynthetic:        rateSource.Synthetic(),
			AverageResponseTimeSynthetic: avgSource.Synthetic(),
		})
	}
	return stats
}

type threadPattern struct {
	hasOwnerMessage bool
	answered        bool
	gapMinutes      float64
	gaps            int
}

// replyPattern walks a chronological thread. A reply is any message by
// someone other than owner that follows an unanswered owner message.
func replyPattern(owner uint, thread []models.Message) threadPattern {
	var p threadPattern
	var pending *time.Time
	for i := range thread {
		m := thread[i]
		if m.UserID == owner {
			p.hasOwnerMessage = true
			if pending == nil {
				at := m.CreatedAt
				pending = &at
			}
			continue
		}
		if pending != nil {
			p.answered = true
			p.gapMinutes += m.CreatedAt.Sub(*pending).Minutes()
			p.gaps++
			pending = nil
		}
	}
	return p
}

// DailyVolume counts messages per calendar day in loc over the `days`
// days ending on now's day. Always returns exactly `days` points.
func DailyVolume(messages []models.Message, days int, now time.Time, loc *time.Location) []VolumePoint {
	if days < 1 {
		return []VolumePoint{}
	}
	if loc == nil {
		loc = time.UTC
	}

	counts := make(map[string]int, days)
	for _, m := range messages {
		counts[m.CreatedAt.In(loc).Format(DateLayout)]++
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	points := make([]VolumePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		// AddDate keeps wall-clock midnight across DST changes
		day := today.AddDate(0, 0, -i).Format(DateLayout)
		points = append(points, VolumePoint{Date: day, Count: counts[day]})
	}
	return points
}

func sortChronological(msgs []models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round1 rounds to one decimal place, for KPI values
func Round1(v float64) float64 {
	return round1(v)
}
