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
// User Handler
// User directory endpoints
// ===========================================================================

// UserHandler handles user endpoints
type UserHandler struct {
	users  services.UserService
	paging Paging
	logger *zap.Logger
}

// NewUserHandler creates a new handler
func NewUserHandler(users services.UserService, paging Paging, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		paging: paging,
		logger: logger,
	}
}

// List lists users
// GET /api/users?search=&profile=&group=&status=&page=1&limit=10
func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListUsersQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := query.NewUserFilter(q.Search, q.Profile, q.Status, q.Group)
	page, err := h.users.List(c.Request.Context(), filter, h.paging.page(q.PaginationQuery))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get users")
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get returns one user
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Me returns the user the dashboard runs as
// GET /api/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Current(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get current user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Create creates a user
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// RegisterRoutes registers the user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
	}
	rg.GET("/me", h.Me)
}
