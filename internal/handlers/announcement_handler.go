package handlers

import (
	"net/http"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/query"
	"classapp-admin/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Announcement Handler
// ===========================================================================

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	announcements services.AnnouncementService
	paging        Paging
	logger        *zap.Logger
}

// NewAnnouncementHandler creates a new handler
func NewAnnouncementHandler(announcements services.AnnouncementService, paging Paging, logger *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcements: announcements,
		paging:        paging,
		logger:        logger,
	}
}

// List lists announcements, the filtered total goes in X-Total-Count
// GET /api/announcements?search=&label=&page=1&limit=10
func (h *AnnouncementHandler) List(c *gin.Context) {
	var q dto.ListAnnouncementsQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := query.NewAnnouncementFilter(q.Search, q.Label)
	page, err := h.announcements.List(c.Request.Context(), filter, h.paging.page(q.PaginationQuery))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get announcements")
		return
	}

	setTotal(c, page.Total)
	c.JSON(http.StatusOK, page.Announcements)
}

// Create sends an announcement
// POST /api/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	announcement, err := h.announcements.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create announcement")
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// RecordRead counts one read receipt
// POST /api/announcements/:id/read
func (h *AnnouncementHandler) RecordRead(c *gin.Context) {
	id, ok := pathID(c, "id", "announcement")
	if !ok {
		return
	}

	announcement, err := h.announcements.RecordRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to record announcement read")
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// RegisterRoutes registers the announcement routes
func (h *AnnouncementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	announcements := rg.Group("/announcements")
	{
		announcements.GET("", h.List)
		announcements.POST("", h.Create)
		announcements.POST("/:id/read", h.RecordRead)
	}
}
