// Package handler wires the HTTP surface to the complaint lifecycle
// service. Identity is resolved per request and passed explicitly into
// every service call; handlers only translate between HTTP and the
// domain's commands and errors.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler містить залежності HTTP-шару.
type Handler struct {
	Complaints *complaint.Service
	Storage    storage.Storage
	Cfg        *config.Config
}

func NewHandler(svc *complaint.Service, s storage.Storage, cfg *config.Config) *Handler {
	return &Handler{Complaints: svc, Storage: s, Cfg: cfg}
}

// respondError maps domain errors onto HTTP statuses. stateMsg overrides
// the generic state-conflict message per operation.
func respondError(c *gin.Context, err error, stateMsg string) {
	var vErr *complaint.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": vErr.Fields})
	case errors.Is(err, complaint.ErrPermission):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
	case errors.Is(err, complaint.ErrState):
		if stateMsg == "" {
			stateMsg = err.Error()
		}
		c.JSON(http.StatusConflict, gin.H{"error": stateMsg})
	case errors.Is(err, complaint.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	default:
		log.Printf("ERROR: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return 0, false
	}
	return uint(id), true
}

func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
