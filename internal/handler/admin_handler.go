package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/pkg/response"
)

// AdminHandler handles operational endpoints behind admin auth.
type AdminHandler struct {
	store *dataset.Store
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(store *dataset.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ReloadDataset handles POST /api/v1/admin/dataset/reload. On failure the
// previous table keeps serving.
func (h *AdminHandler) ReloadDataset(c *gin.Context) {
	if err := h.store.Reload(); err != nil {
		response.InternalError(c, "Reload failed: "+err.Error())
		return
	}
	response.Success(c, gin.H{"segments": h.store.Table().Len()})
}
