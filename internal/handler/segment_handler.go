package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
	"github.com/sdvn-lab/traffic-backend-go/internal/service"
	"github.com/sdvn-lab/traffic-backend-go/pkg/response"
)

// SegmentHandler handles HTTP requests for segments.
type SegmentHandler struct {
	service *service.SegmentService
}

// NewSegmentHandler creates a new segment handler.
func NewSegmentHandler(service *service.SegmentService) *SegmentHandler {
	return &SegmentHandler{service: service}
}

// GetSegments handles GET /api/v1/segments.
func (h *SegmentHandler) GetSegments(c *gin.Context) {
	var filter models.SegmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	segments, total := h.service.GetSegments(filter)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := total / filter.PageSize
	if total%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, gin.H{
		"data":       segments,
		"total":      total,
		"page":       filter.Page,
		"pageSize":   filter.PageSize,
		"totalPages": totalPages,
	})
}

// GetSegment handles GET /api/v1/segments/:id.
func (h *SegmentHandler) GetSegment(c *gin.Context) {
	segment, err := h.service.GetSegment(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSegmentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Failed to get segment")
		return
	}
	response.Success(c, segment)
}
