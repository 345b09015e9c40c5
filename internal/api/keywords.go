package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trendwatch/internal/domain"
)

func (h *Handler) listKeywords(c *gin.Context) {
	keywords, err := h.deps.Keywords.List(c.Request.Context(), domain.KeywordStatus(c.Query("status")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if keywords == nil {
		keywords = []domain.Keyword{}
	}
	c.JSON(http.StatusOK, keywords)
}

func (h *Handler) getKeyword(c *gin.Context) {
	kw, err := h.deps.Keywords.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kw)
}

func (h *Handler) createKeyword(c *gin.Context) {
	var in domain.KeywordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	kw, err := h.deps.Keywords.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, kw)
}

func (h *Handler) updateKeyword(c *gin.Context) {
	var in domain.KeywordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	kw, err := h.deps.Keywords.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kw)
}

func (h *Handler) archiveKeyword(c *gin.Context) {
	if err := h.deps.Keywords.Archive(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
