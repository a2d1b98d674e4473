package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programandoparacristo/plataforma/internal/modules/engagement/dto"
	"github.com/programandoparacristo/plataforma/internal/modules/engagement/service"
	"github.com/programandoparacristo/plataforma/pkg/response"
)

type EngagementHandler struct {
	service service.EngagementService
}

func NewEngagementHandler(service service.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	var req dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), userID, req.ContentType, req.ContentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckLike soft-fails: an anonymous or invalid token yields liked:false
// instead of 401.
func (h *EngagementHandler) CheckLike(c *gin.Context) {
	var query dto.LikeCheckQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusOK, gin.H{"liked": false})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"liked": false})
		return
	}

	liked, err := h.service.CheckLike(c.Request.Context(), userID, query.ContentType, query.ContentID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"liked": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *EngagementHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comentário enviado para moderação",
		"comment": comment,
	})
}

func (h *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListApprovedComments(c.Request.Context(), c.Param("contentType"), c.Param("contentId"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *EngagementHandler) ListPendingComments(c *gin.Context) {
	comments, err := h.service.ListPendingComments(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *EngagementHandler) ModerateComment(c *gin.Context) {
	var req dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	adminID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	comment, err := h.service.ModerateComment(
		c.Request.Context(),
		adminID,
		c.Param("contentType"),
		c.Param("contentId"),
		c.Param("commentId"),
		req.Action,
	)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}
