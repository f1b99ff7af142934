package handlers

import (
	"net/http"

	"classapp-admin/internal/dto"
	"classapp-admin/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Catalog Handler
// Channels, groups, labels and quick links
// ===========================================================================

// CatalogHandler handles reference data endpoints
type CatalogHandler struct {
	catalog services.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new handler
func NewCatalogHandler(catalog services.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ===========================================================================
// Channels
// ===========================================================================

// ListChannels GET /api/channels
func (h *CatalogHandler) ListChannels(c *gin.Context) {
	channels, err := h.catalog.ListChannels(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get channels")
		return
	}
	c.JSON(http.StatusOK, channels)
}

// CreateChannel POST /api/channels
func (h *CatalogHandler) CreateChannel(c *gin.Context) {
	var req dto.CreateChannelRequest
	if !bindJSON(c, &req) {
		return
	}

	channel, err := h.catalog.CreateChannel(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create channel")
		return
	}
	c.JSON(http.StatusCreated, channel)
}

// AddChannelUser POST /api/channels/:id/users
func (h *CatalogHandler) AddChannelUser(c *gin.Context) {
	id, ok := pathID(c, "id", "channel")
	if !ok {
		return
	}

	var req dto.AddChannelUserRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.catalog.AddChannelUser(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add channel user")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ===========================================================================
// Groups
// ===========================================================================

// ListGroups GET /api/groups
func (h *CatalogHandler) ListGroups(c *gin.Context) {
	groups, err := h.catalog.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// CreateGroup POST /api/groups
func (h *CatalogHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.catalog.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create group")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// AddGroupMember POST /api/groups/:id/members
func (h *CatalogHandler) AddGroupMember(c *gin.Context) {
	id, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	var req dto.AddGroupMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.catalog.AddGroupMember(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add group member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ===========================================================================
// Labels & Quick Links
// ===========================================================================

// ListLabels GET /api/labels
func (h *CatalogHandler) ListLabels(c *gin.Context) {
	labels, err := h.catalog.ListLabels(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get labels")
		return
	}
	c.JSON(http.StatusOK, labels)
}

// CreateLabel POST /api/labels
func (h *CatalogHandler) CreateLabel(c *gin.Context) {
	var req dto.CreateLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.catalog.CreateLabel(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create label")
		return
	}
	c.JSON(http.StatusCreated, label)
}

// ListQuickLinks GET /api/quick-links
func (h *CatalogHandler) ListQuickLinks(c *gin.Context) {
	links, err := h.catalog.ListQuickLinks(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get quick links")
		return
	}
	c.JSON(http.StatusOK, links)
}

// CreateQuickLink POST /api/quick-links
func (h *CatalogHandler) CreateQuickLink(c *gin.Context) {
	var req dto.CreateQuickLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.catalog.CreateQuickLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create quick link")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	channels := rg.Group("/channels")
	{
		channels.GET("", h.ListChannels)
		channels.POST("", h.CreateChannel)
		channels.POST("/:id/users", h.AddChannelUser)
	}

	groups := rg.Group("/groups")
	{
		groups.GET("", h.ListGroups)
		groups.POST("", h.CreateGroup)
		groups.POST("/:id/members", h.AddGroupMember)
	}

	rg.GET("/labels", h.ListLabels)
	rg.POST("/labels", h.CreateLabel)
	rg.GET("/quick-links", h.ListQuickLinks)
	rg.POST("/quick-links", h.CreateQuickLink)
}
