package handler

import (
	"encoding/json"
	"net/http"

	"github.com/germangodoy93/FinanzasBackend/internal/service"
	"github.com/germangodoy93/FinanzasBackend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// ProfileHandler 负责唯一的 profile 文档接口
type ProfileHandler struct {
	Profile *service.ProfileService
}

func NewProfileHandler(profile *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profile: profile}
}

// Get returns the stored document verbatim, or JSON null when never saved.
func (h *ProfileHandler) Get(c *gin.Context) {
	doc, found, err := h.Profile.Get(c.Request.Context())
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// Save replaces the slot with the request body and echoes it back. The body is
// treated as an opaque JSON value; only well-formedness is checked.
func (h *ProfileHandler) Save(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		util.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !json.Valid(body) {
		util.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Profile.Save(c.Request.Context(), datatypes.JSON(body)); err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
