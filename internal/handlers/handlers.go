package handlers

import (
	"net/http"
	"strconv"

	"classapp-admin/internal/dto"
	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/middleware"
	"classapp-admin/internal/query"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Shared Handler Helpers
// Binding, id parsing, paging and error mapping used by every handler
// ===========================================================================

// Paging page size bounds applied to every paginated list
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPaging page size bounds when none are configured
func DefaultPaging() Paging {
	return Paging{DefaultLimit: query.DefaultLimit, MaxLimit: query.MaxLimit}
}

// page parses page/limit, never failing
func (p Paging) page(q dto.PaginationQuery) query.Page {
	return query.ParsePage(q.Page, q.Limit, p.DefaultLimit, p.MaxLimit)
}

// respondError logs err and writes the error body for its kind.
// Internal failures only show fallback to the caller.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("route", c.FullPath()),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, fields...)
	} else {
		logger.Debug("request rejected", fields...)
	}

	c.JSON(status, dto.Error(apperrors.ErrorCode(err), apperrors.PublicMessage(err, fallback)))
}

// respondInvalid writes a 400 INVALID_INPUT body
func respondInvalid(c *gin.Context, message string) {
	err := apperrors.Invalid(message)
	c.JSON(err.StatusCode, dto.Error(err.Code, err.Message))
}

// bindJSON binds and validates the body, writing 400 on failure
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondInvalid(c, dto.ValidationMessage(err))
		return false
	}
	return true
}

// bindQuery binds the query string, writing 400 on failure
func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondInvalid(c, dto.ValidationMessage(err))
		return false
	}
	return true
}

// pathID parses a positive integer path parameter, writing 400 on failure
func pathID(c *gin.Context, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondInvalid(c, entity+" id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// setTotal exposes the filtered total of an array listing
func setTotal(c *gin.Context, total int64) {
	c.Header(middleware.TotalCountHeader, strconv.FormatInt(total, 10))
}
