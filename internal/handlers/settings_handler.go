package handlers

import (
	"net/http"

	"classapp-admin/internal/models"
	"classapp-admin/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Settings Handler
// Organization settings and dashboard KPI singletons, plus analytics
// ===========================================================================

// SettingsHandler handles the singleton and analytics endpoints
type SettingsHandler struct {
	settings  services.SettingsService
	analytics services.AnalyticsService
	logger    *zap.Logger
}

// NewSettingsHandler creates a new handler
func NewSettingsHandler(settings services.SettingsService, analytics services.AnalyticsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings:  settings,
		analytics: analytics,
		logger:    logger,
	}
}

// GetOrganization GET /api/organization-settings
func (h *SettingsHandler) GetOrganization(c *gin.Context) {
	settings, err := h.settings.Organization(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get organization settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateOrganization merges the body into the settings
// POST /api/organization-settings
func (h *SettingsHandler) UpdateOrganization(c *gin.Context) {
	var patch models.OrganizationSettingsPatch
	if !bindJSON(c, &patch) {
		return
	}

	settings, err := h.settings.UpdateOrganization(c.Request.Context(), &patch)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update organization settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetKpi GET /api/dashboard-kpis
func (h *SettingsHandler) GetKpi(c *gin.Context) {
	kpi, err := h.settings.Kpi(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get dashboard KPIs")
		return
	}
	c.JSON(http.StatusOK, kpi)
}

// UpdateKpi merges the body into the KPIs
// POST /api/dashboard-kpis
func (h *SettingsHandler) UpdateKpi(c *gin.Context) {
	var patch models.DashboardKpiPatch
	if !bindJSON(c, &patch) {
		return
	}

	kpi, err := h.settings.UpdateKpi(c.Request.Context(), &patch)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update dashboard KPIs")
		return
	}
	c.JSON(http.StatusOK, kpi)
}

// RefreshKpi recomputes the KPIs from stored data
// POST /api/dashboard-kpis/refresh
func (h *SettingsHandler) RefreshKpi(c *gin.Context) {
	kpi, err := h.settings.RefreshKpi(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to refresh dashboard KPIs")
		return
	}
	c.JSON(http.StatusOK, kpi)
}

// ConversationAnalytics GET /api/analytics/conversations
func (h *SettingsHandler) ConversationAnalytics(c *gin.Context) {
	bundle, err := h.analytics.Conversations(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get conversation analytics")
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// RegisterRoutes registers the settings, KPI and analytics routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/organization-settings", h.GetOrganization)
	rg.POST("/organization-settings", h.UpdateOrganization)

	kpis := rg.Group("/dashboard-kpis")
	{
		kpis.GET("", h.GetKpi)
		kpis.POST("", h.UpdateKpi)
		kpis.POST("/refresh", h.RefreshKpi)
	}

	rg.GET("/analytics/conversations", h.ConversationAnalytics)
}
