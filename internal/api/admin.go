package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahirli/sofrachef-backend/internal/archive"
	"github.com/tahirli/sofrachef-backend/internal/store"
)

// AdminHandler manages persisted snapshots of the live state. The
// archive and exporter are optional; routes answer 503 when the
// backing service is not configured.
type AdminHandler struct {
	store    *store.Store
	archive  *archive.Archive
	exporter *archive.Exporter
}

func NewAdminHandler(s *store.Store, a *archive.Archive, e *archive.Exporter) *AdminHandler {
	return &AdminHandler{store: s, archive: a, exporter: e}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.POST("/snapshots", h.SaveSnapshot)
		admin.GET("/snapshots", h.ListSnapshots)
		admin.POST("/snapshots/:id/restore", h.RestoreSnapshot)
		admin.POST("/snapshots/:id/export", h.ExportSnapshot)
	}
}

func (h *AdminHandler) requireArchive(c *gin.Context) bool {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot archive is not configured"})
		return false
	}
	return true
}

type saveSnapshotRequest struct {
	Label string `json:"label"`
}

func (h *AdminHandler) SaveSnapshot(c *gin.Context) {
	if !h.requireArchive(c) {
		return
	}

	var req saveSnapshotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	state, err := h.store.State()
	if err != nil {
		respondError(c, err)
		return
	}

	snap, err := h.archive.Save(c.Request.Context(), req.Label, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save snapshot"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        snap.ID,
		"label":     snap.Label,
		"createdAt": snap.CreatedAt,
	})
}

func (h *AdminHandler) ListSnapshots(c *gin.Context) {
	if !h.requireArchive(c) {
		return
	}

	snaps, err := h.archive.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list snapshots"})
		return
	}

	out := make([]gin.H, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, gin.H{
			"id":        s.ID,
			"label":     s.Label,
			"createdAt": s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": out})
}

func (h *AdminHandler) RestoreSnapshot(c *gin.Context) {
	if !h.requireArchive(c) {
		return
	}

	state, err := h.archive.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, archive.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}

	if err := h.store.Restore(state); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *AdminHandler) ExportSnapshot(c *gin.Context) {
	if !h.requireArchive(c) {
		return
	}
	if h.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot export is not configured"})
		return
	}

	snap, err := h.archive.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, archive.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read snapshot"})
		return
	}

	url, err := h.exporter.Export(c.Request.Context(), snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export snapshot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": snap.ID, "url": url})
}
