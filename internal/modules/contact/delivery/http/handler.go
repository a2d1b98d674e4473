package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programandoparacristo/plataforma/internal/modules/contact/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/contact/service"
	"github.com/programandoparacristo/plataforma/pkg/response"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	msg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Mensagem recebida! Retornaremos em breve.",
		"id":      msg.ID,
	})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": messages})
}
