package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trendwatch/internal/domain"
)

func (h *Handler) overview(c *gin.Context) {
	r, err := queryRange(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out, err := h.deps.Trends.Overview(c.Request.Context(), r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) keywordTrend(c *gin.Context) {
	r, err := queryRange(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	source, err := querySource(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out, err := h.deps.Trends.KeywordTrend(c.Request.Context(), c.Param("keywordId"),
		domain.TrendQuery{Range: r, Source: source})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
