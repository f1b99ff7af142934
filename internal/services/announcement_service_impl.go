package services

import (
	"context"
	"fmt"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/models"
	"classapp-admin/internal/query"
	"classapp-admin/internal/realtime"
	"classapp-admin/internal/repositories"

	"go.uber.org/zap"
)

// ===========================================================================
// Announcement Service Implementation
// ===========================================================================

// announcementService implements AnnouncementService
type announcementService struct {
	repos     *repositories.Set
	publisher realtime.Publisher
	logger    *zap.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(repos *repositories.Set, publisher realtime.Publisher, logger *zap.Logger) AnnouncementService {
	return &announcementService{
		repos:     repos,
		publisher: publisher,
		logger:    logger,
	}
}

// List one page of enriched announcements
func (s *announcementService) List(ctx context.Context, filter query.AnnouncementFilter, page query.Page) (*AnnouncementPage, error) {
	items, total, err := s.repos.Announcements.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	views, err := s.enrich(ctx, items)
	if err != nil {
		return nil, err
	}
	return &AnnouncementPage{Announcements: views, Total: total}, nil
}

// Create validates sender and labels, then stores the announcement
func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*AnnouncementView, error) {
	if _, err := s.repos.Users.FindByID(ctx, req.SenderID); err != nil {
		return nil, err
	}

	labelIDs := uniqueIDs(req.LabelIDs)
	for _, id := range labelIDs {
		if _, err := s.repos.Labels.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}

	recipients, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count recipients: %w", err)
	}

	announcement := &models.Announcement{
		Title:           req.Title,
		Content:         req.Content,
		SenderID:        req.SenderID,
		TotalRecipients: int(recipients),
	}
	if err := s.repos.Announcements.Create(ctx, announcement, labelIDs); err != nil {
		return nil, err
	}

	event := &realtime.AnnouncementEvent{
		Type:            realtime.EventAnnouncementCreated,
		AnnouncementID:  announcement.ID,
		Title:           announcement.Title,
		SenderID:        announcement.SenderID,
		TotalRecipients: announcement.TotalRecipients,
		CreatedAt:       announcement.CreatedAt,
	}
	publishAsync(ctx, s.logger, event.Type, func(ctx context.Context) error {
		return s.publisher.PublishAnnouncement(ctx, event)
	})

	s.logger.Info("announcement created",
		zap.Uint("announcement_id", announcement.ID),
		zap.Int("recipients", announcement.TotalRecipients),
		zap.Int("labels", len(labelIDs)),
	)

	return s.single(ctx, announcement)
}

// RecordRead counts one read receipt
func (s *announcementService) RecordRead(ctx context.Context, id uint) (*AnnouncementView, error) {
	announcement, err := s.repos.Announcements.RecordRead(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.single(ctx, announcement)
}

func (s *announcementService) single(ctx context.Context, a *models.Announcement) (*AnnouncementView, error) {
	views, err := s.enrich(ctx, []models.Announcement{*a})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// enrich joins sender, labels and the derived read rate
func (s *announcementService) enrich(ctx context.Context, items []models.Announcement) ([]AnnouncementView, error) {
	ids := make([]uint, len(items))
	senderIDs := make([]uint, 0, len(items))
	for i, a := range items {
		ids[i] = a.ID
		senderIDs = append(senderIDs, a.SenderID)
	}

	senders, err := s.repos.Users.FindByIDs(ctx, uniqueIDs(senderIDs))
	if err != nil {
		return nil, fmt.Errorf("load announcement senders: %w", err)
	}
	labels, err := s.repos.Announcements.LabelsForAnnouncements(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load announcement labels: %w", err)
	}

	views := make([]AnnouncementView, len(items))
	for i, a := range items {
		view := AnnouncementView{
			Announcement: a,
			Sender:       AnnouncementSender{Name: UnknownSender},
			ReadRate:     a.ReadRate(),
			Labels:       labels[a.ID],
		}
		if u, ok := senders[a.SenderID]; ok {
			view.Sender.Name = u.FullName
		}
		if view.Labels == nil {
			view.Labels = []models.Label{}
		}
		views[i] = view
	}
	return views, nil
}
