package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/programandoparacristo/plataforma/internal/modules/gamification/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/gamification/service"
	"github.com/programandoparacristo/plataforma/pkg/response"
)

const defaultLeaderboardLimit = 10

type GamificationHandler struct {
	service service.GamificationService
}

func NewGamificationHandler(service service.GamificationService) *GamificationHandler {
	return &GamificationHandler{service: service}
}

func (h *GamificationHandler) CompleteChallenge(c *gin.Context) {
	var input dto.CompleteChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	result, err := h.service.CompleteChallenge(c.Request.Context(), userID, input.ChallengeID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GamificationHandler) ReadArticle(c *gin.Context) {
	var input dto.ReadArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	result, err := h.service.ReadArticle(c.Request.Context(), userID, input.ArticleID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GamificationHandler) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limite inválido"})
			return
		}
		limit = parsed
	}

	entries, err := h.service.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
