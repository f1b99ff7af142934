package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementReadRate(t *testing.T) {
	cases := []struct {
		read, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{10, 10, 100},
		{12, 10, 100},
		{-1, 10, 0},
	}
	for _, tc := range cases {
		a := Announcement{ReadCount: tc.read, TotalRecipients: tc.total}
		assert.Equal(t, tc.want, a.ReadRate(), "read=%d total=%d", tc.read, tc.total)
	}
}

func TestConversationTouch_NeverMovesBack(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := Conversation{LastMessageAt: base}

	assert.False(t, c.Touch(base.Add(-time.Hour)))
	assert.Equal(t, base, c.LastMessageAt)

	assert.True(t, c.Touch(base.Add(time.Minute)))
	assert.Equal(t, base.Add(time.Minute), c.LastMessageAt)
}

func TestOrganizationSettingsPatch_Apply(t *testing.T) {
	s := DefaultOrganizationSettings(time.Now())
	name := "Escola Nova"
	off := false

	OrganizationSettingsPatch{Name: &name, MessagesEnabled: &off}.Apply(s)

	assert.Equal(t, "Escola Nova", s.Name)
	assert.False(t, s.MessagesEnabled)
	assert.Equal(t, "colegiovila", s.Subdomain)
	assert.True(t, s.MediaEnabled)
	assert.Equal(t, 1000, s.PlanMessagesLimit)
}

func TestUserPassword(t *testing.T) {
	u := User{}
	require.NoError(t, u.SetPassword("s3cret"))
	assert.NotEqual(t, "s3cret", u.Password)
	assert.True(t, u.CheckPassword("s3cret"))
	assert.False(t, u.CheckPassword("nope"))
}
