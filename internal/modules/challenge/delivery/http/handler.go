package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programandoparacristo/plataforma/internal/modules/challenge/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/challenge/service"
	"github.com/programandoparacristo/plataforma/pkg/response"
)

type ChallengeHandler struct {
	service service.ChallengeService
}

func NewChallengeHandler(service service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	var filter dto.ChallengeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, err)
		return
	}

	challenges, err := h.service.ListPublished(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	challenge, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	challenge, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "challenge": challenge})
}

func (h *ChallengeHandler) UpdateChallenge(c *gin.Context) {
	var req dto.UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	challenge, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "challenge": challenge})
}

func (h *ChallengeHandler) DeleteChallenge(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
