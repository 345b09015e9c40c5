package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trendwatch/internal/domain"
)

func (h *Handler) listMentions(c *gin.Context) {
	f, err := mentionFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	mentions, total, err := h.deps.Mentions.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if mentions == nil {
		mentions = []domain.Mention{}
	}

	c.JSON(http.StatusOK, domain.MentionPage{
		Mentions: mentions,
		Total:    total,
		Limit:    f.Limit,
		Offset:   f.Offset,
	})
}

func (h *Handler) getMention(c *gin.Context) {
	m, err := h.deps.Mentions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
