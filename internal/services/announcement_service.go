package services

import (
	"context"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/query"
)

// ===========================================================================
// Announcement Service Interface
// ===========================================================================

// AnnouncementPage one page of enriched announcements
type AnnouncementPage struct {
	Announcements []AnnouncementView
	Total         int64
}

// AnnouncementService interface for announcement operations
type AnnouncementService interface {
	// List one page of announcements matching filter, with sender, read
	// rate and labels
	List(ctx context.Context, filter query.AnnouncementFilter, page query.Page) (*AnnouncementPage, error)

	// Create sends an announcement to every user. TotalRecipients is the
	// user count at send time
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*AnnouncementView, error)

	// RecordRead counts one read receipt, never past TotalRecipients
	RecordRead(ctx context.Context, id uint) (*AnnouncementView, error)
}
