package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sdvn-lab/traffic-backend-go/internal/service"
	"github.com/sdvn-lab/traffic-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for dashboard statistics.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetOverview handles GET /api/v1/stats/overview.
func (h *StatsHandler) GetOverview(c *gin.Context) {
	response.Success(c, h.statsService.Overview())
}

// GetClusters handles GET /api/v1/stats/clusters. With a cluster query
// parameter it returns that single cluster's summary.
func (h *StatsHandler) GetClusters(c *gin.Context) {
	if clusterStr := c.Query("cluster"); clusterStr != "" {
		clusterID, err := strconv.Atoi(clusterStr)
		if err != nil {
			response.BadRequest(c, "Invalid cluster parameter")
			return
		}
		summary, err := h.statsService.ClusterSummary(clusterID)
		if err != nil {
			if errors.Is(err, service.ErrNoSuchCluster) {
				response.NotFound(c, err.Error())
				return
			}
			response.InternalError(c, "Failed to compute cluster summary")
			return
		}
		response.Success(c, summary)
		return
	}

	response.Success(c, h.statsService.ClusterSummaries())
}

// GetCategories handles GET /api/v1/stats/categories.
func (h *StatsHandler) GetCategories(c *gin.Context) {
	response.Success(c, h.statsService.CategoryAverages())
}

// GetCompare handles GET /api/v1/stats/compare.
func (h *StatsHandler) GetCompare(c *gin.Context) {
	response.Success(c, h.statsService.Compare())
}
