package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/programandoparacristo/plataforma/pkg/apperror"
	appvalidator "github.com/programandoparacristo/plataforma/pkg/validator"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}

	return id, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	if _, ok := err.(validator.ValidationErrors); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": appvalidator.FormatValidationError(err)})
		return
	}

	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": "Erro interno do servidor"})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
