package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trendwatch/internal/domain"
	"trendwatch/internal/service"
)

type validateRequest struct {
	URL             string `json:"url"`
	CustomUserAgent string `json:"customUserAgent"`
}

func (h *Handler) listSources(c *gin.Context) {
	sources, err := h.deps.Sources.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if sources == nil {
		sources = []domain.SourceConfig{}
	}
	c.JSON(http.StatusOK, sources)
}

func (h *Handler) getSource(c *gin.Context) {
	src, err := h.deps.Sources.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, src)
}

func (h *Handler) createSource(c *gin.Context) {
	var in domain.SourceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	src, err := h.deps.Sources.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, src)
}

func (h *Handler) updateSource(c *gin.Context) {
	var in domain.SourceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	src, err := h.deps.Sources.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, src)
}

func (h *Handler) deleteSource(c *gin.Context) {
	if err := h.deps.Sources.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) toggleSource(c *gin.Context) {
	src, err := h.deps.Sources.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, src)
}

func (h *Handler) validateSource(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.deps.Sources.Validate(c.Request.Context(),
		strings.TrimSpace(req.URL), strings.TrimSpace(req.CustomUserAgent))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) processSource(c *gin.Context) {
	res := h.deps.Sources.Process(c.Request.Context(), c.Param("id"))
	if res.Error == service.ResultSourceNotFound {
		c.JSON(http.StatusNotFound, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
