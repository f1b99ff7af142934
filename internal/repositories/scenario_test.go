package repositories_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"classapp-admin/internal/database"
	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
	"classapp-admin/internal/repositories"
	"classapp-admin/internal/repositories/memory"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Every scenario runs against both backends
// ===========================================================================

var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newSQLiteSet(t *testing.T) *repositories.Set {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "classapp.db")), database.GormConfig(zap.NewNop()))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return repositories.NewGormSet(db)
}

func eachBackend(t *testing.T, fn func(t *testing.T, set *repositories.Set)) {
	t.Run("gorm", func(t *testing.T) { fn(t, newSQLiteSet(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, memory.NewSet()) })
}

func page(n, limit int) query.Page {
	return query.NewPage(n, limit, query.DefaultLimit, query.MaxLimit)
}

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, set *repositories.Set, username, fullName, profile, status string) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Password: "x",
		FullName: fullName,
		Email:    username + "@colegiovila.com.br",
		Profile:  profile,
		Status:   status,
	}
	require.NoError(t, set.Users.Create(context.Background(), u, nil))
	return u
}

func TestUsers_FilterAndPaginate(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		for i := 1; i <= 25; i++ {
			profile := models.ProfileFuncionario
			if i%5 == 1 || i%5 == 3 {
				profile = models.ProfileAluno
			}
			createUser(t, set, fmt.Sprintf("user%02d", i), fmt.Sprintf("Pessoa %02d", i), profile, models.UserStatusCadastrado)
		}

		users, total, err := set.Users.List(ctx, query.NewUserFilter("", "aluno", "", ""), page(2, 4))
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		require.Len(t, users, 4)
		names := []string{users[0].Username, users[1].Username, users[2].Username, users[3].Username}
		assert.Equal(t, []string{"user11", "user13", "user16", "user18"}, names)

		_, total, err = set.Users.List(ctx, query.NewUserFilter("all", "all", "", "all"), page(1, 100))
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)

		users, total, err = set.Users.List(ctx, query.NewUserFilter("PESSOA 0", "aluno", "", ""), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(4), total) // 01, 03, 06, 08
		assert.Equal(t, "user01", users[0].Username)

		users, total, err = set.Users.List(ctx, query.NewUserFilter("", "aluno", "", ""), page(9, 4))
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		assert.Empty(t, users)
	})
}

func TestUsers_HugePageIsEmpty(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		for _, name := range []string{"ana", "bia", "caio"} {
			createUser(t, set, name, name, models.ProfileAluno, models.UserStatusCadastrado)
		}

		p := query.ParsePage("9223372036854775807", "10", query.DefaultLimit, query.MaxLimit)
		assert.GreaterOrEqual(t, p.Offset(), 0)

		users, total, err := set.Users.List(context.Background(), query.UserFilter{}, p)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, users)
	})
}

// collectPages walks pages of the given size until one starts past the
// total and returns every id in page order
func collectPages(t *testing.T, limit int, fetch func(p query.Page) ([]uint, int64)) []uint {
	t.Helper()
	var ids []uint
	for n := 1; ; n++ {
		p := page(n, limit)
		got, total := fetch(p)
		assert.LessOrEqual(t, len(got), limit)
		ids = append(ids, got...)
		if p.Beyond(total) {
			assert.Empty(t, got)
			return ids
		}
		require.Less(t, n, 1000, "pages never ended")
	}
}

func TestPagination_PagesRebuildFilteredSet(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()

		var wantUsers []uint
		for i := 1; i <= 17; i++ {
			profile := models.ProfileFuncionario
			if i%3 != 0 {
				profile = models.ProfileAluno
			}
			u := createUser(t, set, fmt.Sprintf("walk%02d", i), fmt.Sprintf("Pessoa %02d", i), profile, models.UserStatusCadastrado)
			if profile == models.ProfileAluno {
				wantUsers = append(wantUsers, u.ID)
			}
		}
		sender := wantUsers[0]

		ch1 := &models.Channel{Name: "Secretaria", Type: "support", Icon: "school"}
		ch2 := &models.Channel{Name: "Financeiro", Type: "finance", Icon: "money"}
		require.NoError(t, set.Channels.Create(ctx, ch1))
		require.NoError(t, set.Channels.Create(ctx, ch2))

		var wantConvs []uint
		for i := 1; i <= 13; i++ {
			ch := ch2
			if i%2 == 1 {
				ch = ch1
			}
			c := &models.Conversation{Title: strPtr(fmt.Sprintf("Assunto %d", i)), ChannelID: ch.ID, UserID: sender, Status: models.ConversationStatusPendente}
			c.CreatedAt = base
			c.LastMessageAt = base
			require.NoError(t, set.Conversations.Create(ctx, c))
			if ch == ch1 {
				wantConvs = append(wantConvs, c.ID)
			}
		}

		event := &models.Label{Name: "Evento", Color: "#4caf50", Type: "announcement"}
		require.NoError(t, set.Labels.Create(ctx, event))
		var wantAnns []uint
		for i := 1; i <= 11; i++ {
			var labels []uint
			if i%4 != 2 {
				labels = []uint{event.ID}
			}
			a := &models.Announcement{Title: fmt.Sprintf("Aviso %d", i), Content: "Conteúdo", SenderID: sender, TotalRecipients: 17}
			require.NoError(t, set.Announcements.Create(ctx, a, labels))
			if labels != nil {
				wantAnns = append(wantAnns, a.ID)
			}
		}

		for _, limit := range []int{1, 3, 4, 7, 100} {
			t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
				users := collectPages(t, limit, func(p query.Page) ([]uint, int64) {
					list, total, err := set.Users.List(ctx, query.NewUserFilter("", models.ProfileAluno, "", ""), p)
					require.NoError(t, err)
					ids := make([]uint, 0, len(list))
					for _, u := range list {
						ids = append(ids, u.ID)
					}
					return ids, total
				})
				assert.Equal(t, wantUsers, users)

				convs := collectPages(t, limit, func(p query.Page) ([]uint, int64) {
					list, total, err := set.Conversations.List(ctx, query.NewConversationFilter("", "", fmt.Sprint(ch1.ID)), p)
					require.NoError(t, err)
					ids := make([]uint, 0, len(list))
					for _, c := range list {
						ids = append(ids, c.ID)
					}
					return ids, total
				})
				assert.Equal(t, wantConvs, convs)

				anns := collectPages(t, limit, func(p query.Page) ([]uint, int64) {
					list, total, err := set.Announcements.List(ctx, query.NewAnnouncementFilter("", fmt.Sprint(event.ID)), p)
					require.NoError(t, err)
					ids := make([]uint, 0, len(list))
					for _, a := range list {
						ids = append(ids, a.ID)
					}
					return ids, total
				})
				assert.Equal(t, wantAnns, anns)
			})
		}
	})
}

func TestUsers_GroupFilter(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		ana := createUser(t, set, "ana", "Ana Souza", models.ProfileAluno, models.UserStatusCadastrado)
		bia := createUser(t, set, "bia", "Bia Lima", models.ProfileAluno, models.UserStatusNaoCadastrado)
		createUser(t, set, "caio", "Caio Reis", models.ProfileAluno, models.UserStatusCadastrado)

		g9 := &models.Group{Name: "Turma 9A", Visibility: models.VisibilityPublic}
		g8 := &models.Group{Name: "Turma 8B", Visibility: models.VisibilityPrivate}
		require.NoError(t, set.Groups.Create(ctx, g9))
		require.NoError(t, set.Groups.Create(ctx, g8))
		require.NoError(t, set.Groups.AddMember(ctx, &models.UserGroup{UserID: ana.ID, GroupID: g9.ID}))
		require.NoError(t, set.Groups.AddMember(ctx, &models.UserGroup{UserID: bia.ID, GroupID: g9.ID}))
		require.NoError(t, set.Groups.AddMember(ctx, &models.UserGroup{UserID: bia.ID, GroupID: g8.ID}))

		err := set.Groups.AddMember(ctx, &models.UserGroup{UserID: ana.ID, GroupID: g9.ID})
		assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEntry))

		users, total, err := set.Users.List(ctx, query.NewUserFilter("", "", "", fmt.Sprint(g9.ID)), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, ana.ID, users[0].ID)

		_, total, err = set.Users.List(ctx, query.NewUserFilter("", "", models.UserStatusCadastrado, fmt.Sprint(g9.ID)), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		for _, raw := range []string{"abc", "999", "0"} {
			users, total, err := set.Users.List(ctx, query.NewUserFilter("", "", "", raw), page(1, 10))
			require.NoError(t, err, raw)
			assert.Equal(t, int64(0), total, raw)
			assert.Empty(t, users, raw)
		}

		byUser, err := set.Groups.GroupsForUsers(ctx, []uint{ana.ID, bia.ID})
		require.NoError(t, err)
		require.Len(t, byUser[bia.ID], 2)
		assert.Equal(t, "Turma 9A", byUser[bia.ID][0].Name)
		assert.Len(t, byUser[ana.ID], 1)

		counts, err := set.Groups.MemberCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[g9.ID])
		assert.Equal(t, int64(1), counts[g8.ID])
	})
}

func TestUsers_DuplicateUsername(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		createUser(t, set, "admin", "Admin", models.ProfileAdmin, models.UserStatusCadastrado)

		err := set.Users.Create(context.Background(), &models.User{Username: "admin", Password: "x", FullName: "Outro", Email: "o@x"}, nil)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEntry))

		_, err = set.Users.FindByID(context.Background(), 404)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

		u, err := set.Users.FindByUsername(context.Background(), "admin")
		require.NoError(t, err)
		assert.Equal(t, "Admin", u.FullName)
	})
}

func TestUsers_CreateWithGroupsIsAtomic(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		g := &models.Group{Name: "Turma 9A", Visibility: models.VisibilityPublic}
		require.NoError(t, set.Groups.Create(ctx, g))

		ana := &models.User{Username: "ana", Password: "x", FullName: "Ana", Email: "ana@x"}
		require.NoError(t, set.Users.Create(ctx, ana, []uint{g.ID}))
		byUser, err := set.Groups.GroupsForUsers(ctx, []uint{ana.ID})
		require.NoError(t, err)
		require.Len(t, byUser[ana.ID], 1)

		err = set.Users.Create(ctx, &models.User{Username: "bia", Password: "x", FullName: "Bia", Email: "bia@x"}, []uint{g.ID, 999})
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		_, err = set.Users.FindByUsername(ctx, "bia")
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

		err = set.Users.Create(ctx, &models.User{Username: "ana", Password: "x", FullName: "Outra", Email: "o@x"}, []uint{g.ID})
		assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEntry))

		counts, err := set.Groups.MemberCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[g.ID], "failed creates leave no membership behind")
		total, err := set.Users.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func seedConversations(t *testing.T, set *repositories.Set) (owner, staff *models.User, ch1, ch2 *models.Channel) {
	t.Helper()
	ctx := context.Background()
	owner = createUser(t, set, "aluno1", "Aluno Um", models.ProfileAluno, models.UserStatusCadastrado)
	staff = createUser(t, set, "sec", "Secretaria", models.ProfileFuncionario, models.UserStatusCadastrado)

	ch1 = &models.Channel{Name: "Secretaria", Type: "support", Icon: "school"}
	ch2 = &models.Channel{Name: "Financeiro", Type: "finance", Icon: "money"}
	require.NoError(t, set.Channels.Create(ctx, ch1))
	require.NoError(t, set.Channels.Create(ctx, ch2))

	convs := []models.Conversation{
		{Title: strPtr("Matrícula 2024"), ChannelID: ch1.ID, UserID: owner.ID, Status: models.ConversationStatusPendente},
		{Title: strPtr("Boleto atrasado"), ChannelID: ch2.ID, UserID: owner.ID, Status: models.ConversationStatusFinalizado},
		{Title: nil, ChannelID: ch1.ID, UserID: owner.ID, Status: models.ConversationStatusFinalizado},
	}
	for i := range convs {
		convs[i].CreatedAt = base
		convs[i].LastMessageAt = base
		require.NoError(t, set.Conversations.Create(ctx, &convs[i]))
	}
	return owner, staff, ch1, ch2
}

func TestConversations_List(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		_, _, ch1, _ := seedConversations(t, set)

		convs, total, err := set.Conversations.List(ctx, query.NewConversationFilter("", "", fmt.Sprint(ch1.ID)), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Less(t, convs[0].ID, convs[1].ID)

		_, total, err = set.Conversations.List(ctx, query.NewConversationFilter("", models.ConversationStatusFinalizado, fmt.Sprint(ch1.ID)), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		convs, total, err = set.Conversations.List(ctx, query.NewConversationFilter("boleto", "all", "all"), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Boleto atrasado", *convs[0].Title)

		_, total, err = set.Conversations.List(ctx, query.NewConversationFilter("", "", "secretaria"), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)

		_, total, err = set.Conversations.List(ctx, query.NewConversationFilter("", "", "77"), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestMessages_AppendKeepsLastMessageAtMonotonic(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		owner, staff, _, _ := seedConversations(t, set)

		first := &models.Message{ConversationID: 1, UserID: owner.ID, Content: "Olá"}
		first.CreatedAt = base.Add(10 * time.Minute)
		require.NoError(t, set.Messages.Append(ctx, first))

		late := &models.Message{ConversationID: 1, UserID: staff.ID, Content: "mensagem atrasada"}
		late.CreatedAt = base.Add(5 * time.Minute)
		require.NoError(t, set.Messages.Append(ctx, late))

		conv, err := set.Conversations.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, conv.LastMessageAt.Equal(base.Add(10*time.Minute)), conv.LastMessageAt)
		assert.False(t, conv.LastMessageAt.Before(conv.CreatedAt))

		err = set.Messages.Append(ctx, &models.Message{ConversationID: 999, UserID: owner.ID, Content: "?"})
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

		latest, err := set.Messages.LatestByConversations(ctx, []uint{1, 2})
		require.NoError(t, err)
		assert.Equal(t, "Olá", latest[1].Content)
		_, ok := latest[2]
		assert.False(t, ok)

		msgs, total, err := set.Messages.ListByConversation(ctx, 1, page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, "Olá", msgs[0].Content)
	})
}

func TestMessages_MarkRead(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		owner, _, _, _ := seedConversations(t, set)

		msg := &models.Message{ConversationID: 1, UserID: owner.ID, Content: "Oi"}
		require.NoError(t, set.Messages.Append(ctx, msg))

		unread, err := set.Messages.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), unread)

		readAt := base.Add(time.Hour)
		got, err := set.Messages.MarkRead(ctx, msg.ID, readAt)
		require.NoError(t, err)
		require.NotNil(t, got.ReadAt)
		assert.True(t, got.ReadAt.Equal(readAt))

		again, err := set.Messages.MarkRead(ctx, msg.ID, readAt.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, again.ReadAt.Equal(readAt))

		unread, err = set.Messages.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unread)

		_, err = set.Messages.MarkRead(ctx, 999, readAt)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestAnnouncements_LabelsAndReads(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		sender := createUser(t, set, "dir", "Direção", models.ProfileAdmin, models.UserStatusCadastrado)

		urgent := &models.Label{Name: "Urgente", Color: "#f44336", Type: "announcement"}
		event := &models.Label{Name: "Evento", Color: "#4caf50", Type: "announcement"}
		require.NoError(t, set.Labels.Create(ctx, urgent))
		require.NoError(t, set.Labels.Create(ctx, event))

		a1 := &models.Announcement{Title: "Reunião de pais", Content: "Sexta às 19h", SenderID: sender.ID, TotalRecipients: 2}
		a2 := &models.Announcement{Title: "Festa junina", Content: "Traje caipira", SenderID: sender.ID, ReadCount: 1, TotalRecipients: 4}
		require.NoError(t, set.Announcements.Create(ctx, a1, []uint{event.ID, urgent.ID}))
		require.NoError(t, set.Announcements.Create(ctx, a2, []uint{event.ID}))

		list, total, err := set.Announcements.List(ctx, query.NewAnnouncementFilter("", fmt.Sprint(urgent.ID)), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, a1.ID, list[0].ID)

		_, total, err = set.Announcements.List(ctx, query.NewAnnouncementFilter("CAIPIRA", ""), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		_, total, err = set.Announcements.List(ctx, query.NewAnnouncementFilter("", "x1"), page(1, 10))
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)

		labels, err := set.Announcements.LabelsForAnnouncements(ctx, []uint{a1.ID, a2.ID})
		require.NoError(t, err)
		require.Len(t, labels[a1.ID], 2)
		assert.Equal(t, "Urgente", labels[a1.ID][0].Name)
		assert.Len(t, labels[a2.ID], 1)

		for i := 0; i < 3; i++ {
			_, err = set.Announcements.RecordRead(ctx, a1.ID)
			require.NoError(t, err)
		}
		got, err := set.Announcements.FindByID(ctx, a1.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ReadCount)

		read, recipients, err := set.Announcements.Totals(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), read)
		assert.Equal(t, int64(6), recipients)

		_, err = set.Announcements.RecordRead(ctx, 999)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestChannels_UserCounts(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		owner, staff, ch1, ch2 := seedConversations(t, set)

		require.NoError(t, set.Channels.AddUser(ctx, &models.ChannelUser{ChannelID: ch1.ID, UserID: staff.ID, IsResponsible: true}))
		require.NoError(t, set.Channels.AddUser(ctx, &models.ChannelUser{ChannelID: ch1.ID, UserID: owner.ID}))
		err := set.Channels.AddUser(ctx, &models.ChannelUser{ChannelID: ch1.ID, UserID: owner.ID})
		assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEntry))

		counts, err := set.Channels.UserCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[ch1.ID])
		assert.Equal(t, int64(0), counts[ch2.ID])

		found, err := set.Channels.FindByIDs(ctx, []uint{ch2.ID, 404})
		require.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, "Financeiro", found[ch2.ID].Name)
	})
}

func TestSettings_GetOrCreateOnce(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()

		var wg sync.WaitGroup
		var mu sync.Mutex
		createdCount := 0
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, created, err := set.Settings.GetOrCreateOrganization(ctx, models.DefaultOrganizationSettings(base))
				assert.NoError(t, err)
				if created {
					mu.Lock()
					createdCount++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, createdCount)

		org, created, err := set.Settings.GetOrCreateOrganization(ctx, models.DefaultOrganizationSettings(base))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Colégio Vila Educação", org.Name)
		assert.Equal(t, models.SingletonID, org.ID)
		assert.False(t, org.AppointmentsEnabled)
	})
}

func TestSettings_UpdateMerges(t *testing.T) {
	eachBackend(t, func(t *testing.T, set *repositories.Set) {
		ctx := context.Background()
		color := "#000000"
		off := false

		org, created, err := set.Settings.UpdateOrganization(ctx, models.DefaultOrganizationSettings(base), func(s *models.OrganizationSettings) {
			models.OrganizationSettingsPatch{PrimaryColor: &color, MediaEnabled: &off}.Apply(s)
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "#000000", org.PrimaryColor)
		assert.False(t, org.MediaEnabled)
		assert.True(t, org.MessagesEnabled)

		org, _, err = set.Settings.GetOrCreateOrganization(ctx, models.DefaultOrganizationSettings(base))
		require.NoError(t, err)
		assert.Equal(t, "#000000", org.PrimaryColor)
		assert.Equal(t, "colegiovila", org.Subdomain)

		rate := 87.5
		kpi, _, err := set.Settings.UpdateKpi(ctx, models.DefaultDashboardKpi(base), func(k *models.DashboardKpi) {
			models.DashboardKpiPatch{ReadRate: &rate}.Apply(k)
		})
		require.NoError(t, err)
		assert.Equal(t, 87.5, kpi.ReadRate)
		assert.Equal(t, 0.0, kpi.CsatScore)

		kpi, created, err = set.Settings.GetOrCreateKpi(ctx, models.DefaultDashboardKpi(base))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 87.5, kpi.ReadRate)
	})
}
