package handler

import (
	"errors"
	"net/http"

	"github.com/germangodoy93/FinanzasBackend/internal/service"
	"github.com/germangodoy93/FinanzasBackend/internal/util"

	"github.com/gin-gonic/gin"
)

// BackupHandler 负责备份相关接口
type BackupHandler struct {
	Backups *service.BackupService
}

func NewBackupHandler(backups *service.BackupService) *BackupHandler {
	return &BackupHandler{Backups: backups}
}

// Create snapshots the ledger and profile into a new backup file.
func (h *BackupHandler) Create(c *gin.Context) {
	b, err := h.Backups.Create(c.Request.Context())
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "backup failed")
		return
	}
	c.JSON(http.StatusOK, b)
}

// List returns backup descriptors, newest first.
func (h *BackupHandler) List(c *gin.Context) {
	backups, err := h.Backups.List(c.Request.Context())
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	c.JSON(http.StatusOK, backups)
}

// Download streams the snapshot file.
func (h *BackupHandler) Download(c *gin.Context) {
	path, err := h.Backups.FilePath(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrBackupNotFound) {
		util.Fail(c, http.StatusNotFound, "backup not found")
		return
	}
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	c.FileAttachment(path, c.Param("id")+".json")
}

// Restore replaces the ledger and profile with the snapshot content.
func (h *BackupHandler) Restore(c *gin.Context) {
	err := h.Backups.Restore(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrBackupNotFound):
		util.Fail(c, http.StatusNotFound, "backup not found")
	case err != nil:
		util.Fail(c, http.StatusInternalServerError, "restore failed")
	default:
		util.OK(c)
	}
}

// Delete removes the snapshot file and its descriptor.
func (h *BackupHandler) Delete(c *gin.Context) {
	err := h.Backups.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrBackupNotFound):
		util.Fail(c, http.StatusNotFound, "backup not found")
	case err != nil:
		util.Fail(c, http.StatusInternalServerError, "db error")
	default:
		util.OK(c)
	}
}
