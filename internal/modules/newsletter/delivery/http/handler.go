package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programandoparacristo/plataforma/internal/modules/newsletter/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/newsletter/service"
	"github.com/programandoparacristo/plataforma/pkg/response"
)

type NewsletterHandler struct {
	service service.NewsletterService
}

func NewNewsletterHandler(service service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Inscrição realizada com sucesso!",
		"email":   sub.Email,
	})
}
