package catalog

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oceangram11/bartlett-connect-hub-1/pkg/response"
)

// Handler serves read-only catalog endpoints.
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a catalog handler.
func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// List handles GET /events. By default the filtered display subset is
// returned; ?all=true returns the full catalog.
func (h *Handler) List(c *gin.Context) {
	showAll := c.Query("all") == "true"
	response.OK(c, gin.H{
		"events": h.catalog.Filter(showAll),
		"total":  h.catalog.Len(),
	})
}

// GetByID handles GET /events/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	event, ok := h.catalog.ByID(id)
	if !ok {
		response.NotFound(c, "event not found")
		return
	}
	response.OK(c, event)
}
