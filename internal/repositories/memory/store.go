// Package memory is the in-memory entity store. Every repository of a Set
// shares one Store guarded by a single RWMutex, so multi-record operations
// (message append, singleton get-or-create) are one critical section.
package memory

import (
	"context"
	"sync"
	"time"

	"classapp-admin/internal/models"
	"classapp-admin/internal/repositories"
)

// Store holds every entity in insertion (= id) order
type Store struct {
	mu sync.RWMutex

	users              []models.User
	groups             []models.Group
	userGroups         []models.UserGroup
	channels           []models.Channel
	channelUsers       []models.ChannelUser
	labels             []models.Label
	conversations      []models.Conversation
	messages           []models.Message
	announcements      []models.Announcement
	announcementLabels []models.AnnouncementLabel
	quickLinks         []models.QuickLink

	organization *models.OrganizationSettings
	kpi          *models.DashboardKpi

	// last id handed out per table
	seq map[string]uint

	now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		seq: make(map[string]uint),
		now: time.Now,
	}
}

// NewSet wires every repository on a fresh store
func NewSet() *repositories.Set {
	return NewStore().Set()
}

// Set returns repositories backed by s
func (s *Store) Set() *repositories.Set {
	return &repositories.Set{
		Users:         &userRepo{s: s},
		Groups:        &groupRepo{s: s},
		Channels:      &channelRepo{s: s},
		Conversations: &conversationRepo{s: s},
		Messages:      &messageRepo{s: s},
		Announcements: &announcementRepo{s: s},
		Labels:        &labelRepo{s: s},
		QuickLinks:    &quickLinkRepo{s: s},
		Settings:      &settingsRepo{s: s},
	}
}

// nextID must be called with the write lock held
func (s *Store) nextID(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

// stamp fills a zero creation time, write lock held
func (s *Store) stamp(t *time.Time) {
	if t.IsZero() {
		*t = s.now()
	}
}

// read runs fn under the read lock
func (s *Store) read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn()
}

// write runs fn under the write lock
func (s *Store) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// idSet turns ids into a lookup set
func idSet(ids []uint) map[uint]struct{} {
	out := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
