package seed

import (
	"context"
	"testing"
	"time"

	"classapp-admin/internal/query"
	"classapp-admin/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewSet()
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	res, err := Run(ctx, repos, now, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 5, res.Users)
	assert.Equal(t, 4, res.Groups)
	assert.Equal(t, 3, res.Channels)
	assert.Equal(t, 4, res.Messages)
	assert.Equal(t, 7, res.Labels)
	assert.Equal(t, 4, res.Announcements)
	assert.Equal(t, 3, res.QuickLinks)

	again, err := Run(ctx, repos, now, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, again.Skipped)

	total, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	admin, err := repos.Users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.CheckPassword(DemoPassword))

	// the math conversation got a reply 45 minutes later
	convs, _, err := repos.Conversations.List(ctx, query.NewConversationFilter("matemática", "", ""), query.NewPage(1, 10, 10, 100))
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.True(t, convs[0].LastMessageAt.Equal(now.Add(-72*time.Hour+45*time.Minute)))

	read, recipients, err := repos.Announcements.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(95+87+92+78), read)
	assert.Equal(t, int64(400), recipients)
}
