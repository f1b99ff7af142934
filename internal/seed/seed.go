// Package seed inserts the demo school through the repository interfaces,
// so it works on either storage backend.
package seed

import (
	"context"
	"fmt"
	"time"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/models"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// DemoPassword password of every demo user
const DemoPassword = "password123"

// Result what Run inserted
type Result struct {
	Skipped       bool
	Users         int
	Groups        int
	Channels      int
	Conversations int
	Messages      int
	Labels        int
	Announcements int
	QuickLinks    int
}

type demoUser struct {
	username string
	fullName string
	email    string
	profile  string
	status   string
	groups   []string
}

type demoConversation struct {
	title    string
	channel  string
	owner    string
	status   string
	age      time.Duration
	messages []demoMessage
}

type demoMessage struct {
	author  string
	after   time.Duration
	content string
}

type demoAnnouncement struct {
	title      string
	content    string
	sender     string
	read       int
	recipients int
	labels     []string
	age        time.Duration
}

func ptr[T any](v T) *T { return &v }

var (
	groups = []models.Group{
		{Name: "Professores", Description: ptr("Grupo de todos os professores"), Visibility: models.VisibilityPublic},
		{Name: "2° Ano A", Description: ptr("Alunos do 2° Ano A"), Visibility: models.VisibilityPublic},
		{Name: "Coordenação", Description: ptr("Equipe de coordenação pedagógica"), Visibility: models.VisibilityRestricted},
		{Name: "3° Ano B", Description: ptr("Alunos do 3° Ano B"), Visibility: models.VisibilityPublic},
	}

	users = []demoUser{
		{"admin", "Admin Demo", "admin@colegiovila.edu.br", models.ProfileAdmin, models.UserStatusCadastrado, []string{"Coordenação"}},
		{"joao.carlos", "João Carlos", "jcarlos@email.com", models.ProfileAluno, models.UserStatusCadastrado, []string{"2° Ano A"}},
		{"mariana.costa", "Mariana Costa", "mcosta@email.com", models.ProfileFuncionario, models.UserStatusCadastrado, []string{"Professores"}},
		{"ricardo.silva", "Ricardo Silva", "rsilva@email.com", models.ProfileAdmin, models.UserStatusCadastrado, []string{"Coordenação", "Professores"}},
		{"luciana.mendes", "Luciana Mendes", "lmendes@email.com", models.ProfileAluno, models.UserStatusNaoCadastrado, []string{"3° Ano B"}},
	}

	channels = []models.Channel{
		{Name: "Suporte Técnico", Description: ptr("Canal para suporte técnico e TI"), Type: "support", Icon: "support_agent",
			Status: models.ChannelStatusActive, AverageResponseTime: ptr(72.0), CsatScore: ptr(4.8)},
		{Name: "Secretaria Acadêmica", Description: ptr("Canal para assuntos da secretaria"), Type: "academic", Icon: "school",
			Status: models.ChannelStatusActive, AverageResponseTime: ptr(220.0), CsatScore: ptr(4.5)},
		{Name: "Coordenação Pedagógica", Description: ptr("Canal para assuntos pedagógicos"), Type: "pedagogical", Icon: "psychology",
			Status: models.ChannelStatusActive, AverageResponseTime: ptr(320.0), CsatScore: ptr(4.7)},
	}

	// channel members, the first one is responsible for the channel
	channelMembers = map[string][]string{
		"Suporte Técnico":        {"ricardo.silva"},
		"Secretaria Acadêmica":   {"mariana.costa", "admin"},
		"Coordenação Pedagógica": {"admin", "ricardo.silva"},
	}

	conversations = []demoConversation{
		{"Dúvida material de matemática", "Coordenação Pedagógica", "joao.carlos", models.ConversationStatusFinalizado, 72 * time.Hour, []demoMessage{
			{"joao.carlos", 0, "Dúvida sobre o material de matemática resolvida pelo Prof. Carlos."},
			{"admin", 45 * time.Minute, "Que bom! Qualquer dúvida estamos à disposição."},
		}},
		{"Declaração de matrícula", "Secretaria Acadêmica", "mariana.costa", models.ConversationStatusPendente, 26 * time.Hour, []demoMessage{
			{"mariana.costa", 0, "Solicitação de declaração de matrícula para fins de comprovação."},
		}},
		{"Confirmação reunião de pais", "Suporte Técnico", "ricardo.silva", models.ConversationStatusSemStatus, 3 * time.Hour, []demoMessage{
			{"ricardo.silva", 0, "Confirmação de presença na reunião de pais do próximo mês."},
		}},
	}

	labels = []models.Label{
		{Name: "Importante", Color: "#ff8f00", Type: "priority"},
		{Name: "Urgente", Color: "#d32f2f", Type: "priority"},
		{Name: "Rotina", Color: "#455a64", Type: "priority"},
		{Name: "Pedagógico", Color: "#1976d2", Type: "department"},
		{Name: "Enfermagem", Color: "#43a047", Type: "department"},
		{Name: "Cantina", Color: "#ff8f00", Type: "department"},
		{Name: "TI", Color: "#1976d2", Type: "department"},
	}

	announcements = []demoAnnouncement{
		{"Calendário de Provas do 2° Trimestre", "Confira o calendário de provas para o segundo trimestre...",
			"mariana.costa", 95, 100, []string{"Importante", "Pedagógico"}, 96 * time.Hour},
		{"Formulário de Autodeclaração de Saúde", "Todos os alunos devem preencher o formulário de autodeclaração de saúde...",
			"ricardo.silva", 87, 100, []string{"Urgente", "Enfermagem"}, 48 * time.Hour},
		{"Atualização do Cardápio da Cantina", "Informamos que o cardápio da cantina foi atualizado para o mês de julho...",
			"admin", 92, 100, []string{"Rotina", "Cantina"}, 24 * time.Hour},
		{"Manutenção nos Laboratórios de Informática", "Os laboratórios de informática estarão em manutenção nos dias 10 e 11 de julho...",
			"ricardo.silva", 78, 100, []string{"Importante", "TI"}, 2 * time.Hour},
	}

	quickLinks = []models.QuickLink{
		{Name: "Google for Education", URL: "https://classroom.google.com", Icon: "school"},
		{Name: "Árvore de Livros", URL: "https://arvoredelivros.com.br", Icon: "auto_stories"},
		{Name: "Portal da Escola", URL: "https://colegiovila.edu.br", Icon: "web"},
	}
)

// Run inserts the demo data unless the admin user already exists.
// Timestamps are laid out relative to now.
func Run(ctx context.Context, repos *repositories.Set, now time.Time, log *zap.Logger) (*Result, error) {
	if _, err := repos.Users.FindByUsername(ctx, "admin"); err == nil {
		log.Info("demo data already present, skipping seed")
		return &Result{Skipped: true}, nil
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check existing seed: %w", err)
	}

	res := &Result{}
	created := now.Add(-30 * 24 * time.Hour)

	// Groups
	groupIDs := make(map[string]uint, len(groups))
	for _, g := range groups {
		g := g
		g.CreatedAt = created
		if err := repos.Groups.Create(ctx, &g); err != nil {
			return nil, fmt.Errorf("seed group %q: %w", g.Name, err)
		}
		groupIDs[g.Name] = g.ID
		res.Groups++
	}

	// Users + memberships
	userIDs := make(map[string]uint, len(users))
	for _, du := range users {
		u := &models.User{
			Username: du.username,
			FullName: du.fullName,
			Email:    du.email,
			Profile:  du.profile,
			Status:   du.status,
		}
		u.CreatedAt = created
		if err := u.SetPassword(DemoPassword); err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		memberOf := make([]uint, 0, len(du.groups))
		for _, name := range du.groups {
			memberOf = append(memberOf, groupIDs[name])
		}
		if err := repos.Users.Create(ctx, u, memberOf); err != nil {
			return nil, fmt.Errorf("seed user %q: %w", du.username, err)
		}
		userIDs[du.username] = u.ID
		res.Users++
	}

	// Channels + members
	channelIDs := make(map[string]uint, len(channels))
	for _, ch := range channels {
		ch := ch
		ch.CreatedAt = created
		if err := repos.Channels.Create(ctx, &ch); err != nil {
			return nil, fmt.Errorf("seed channel %q: %w", ch.Name, err)
		}
		channelIDs[ch.Name] = ch.ID
		res.Channels++

		for i, username := range channelMembers[ch.Name] {
			member := &models.ChannelUser{ChannelID: ch.ID, UserID: userIDs[username], IsResponsible: i == 0}
			if err := repos.Channels.AddUser(ctx, member); err != nil {
				return nil, fmt.Errorf("seed channel member %s/%s: %w", ch.Name, username, err)
			}
		}
	}

	// Conversations + messages
	for _, dc := range conversations {
		start := now.Add(-dc.age)
		conv := &models.Conversation{
			Title:         ptr(dc.title),
			ChannelID:     channelIDs[dc.channel],
			UserID:        userIDs[dc.owner],
			Status:        dc.status,
			LastMessageAt: start,
		}
		conv.CreatedAt = start
		if err := repos.Conversations.Create(ctx, conv); err != nil {
			return nil, fmt.Errorf("seed conversation %q: %w", dc.title, err)
		}
		res.Conversations++

		for _, dm := range dc.messages {
			msg := &models.Message{ConversationID: conv.ID, UserID: userIDs[dm.author], Content: dm.content}
			msg.CreatedAt = start.Add(dm.after)
			if err := repos.Messages.Append(ctx, msg); err != nil {
				return nil, fmt.Errorf("seed message in %q: %w", dc.title, err)
			}
			res.Messages++
		}
	}

	// Labels
	labelIDs := make(map[string]uint, len(labels))
	for _, l := range labels {
		l := l
		l.CreatedAt = created
		if err := repos.Labels.Create(ctx, &l); err != nil {
			return nil, fmt.Errorf("seed label %q: %w", l.Name, err)
		}
		labelIDs[l.Name] = l.ID
		res.Labels++
	}

	// Announcements, with the read counts of the demo
	for _, da := range announcements {
		a := &models.Announcement{
			Title:           da.title,
			Content:         da.content,
			SenderID:        userIDs[da.sender],
			ReadCount:       da.read,
			TotalRecipients: da.recipients,
		}
		a.CreatedAt = now.Add(-da.age)
		ids := make([]uint, 0, len(da.labels))
		for _, name := range da.labels {
			ids = append(ids, labelIDs[name])
		}
		if err := repos.Announcements.Create(ctx, a, ids); err != nil {
			return nil, fmt.Errorf("seed announcement %q: %w", da.title, err)
		}
		res.Announcements++
	}

	// Quick links
	for _, q := range quickLinks {
		q := q
		q.CreatedAt = created
		if err := repos.QuickLinks.Create(ctx, &q); err != nil {
			return nil, fmt.Errorf("seed quick link %q: %w", q.Name, err)
		}
		res.QuickLinks++
	}

	log.Info("demo data seeded",
		zap.Int("users", res.Users),
		zap.Int("conversations", res.Conversations),
		zap.Int("announcements", res.Announcements),
	)
	return res, nil
}
