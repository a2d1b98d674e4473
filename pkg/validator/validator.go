package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s deve ter no mínimo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s deve ser no mínimo %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s deve ser no máximo %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s inválido", field)
	default:
		return fmt.Sprintf("%s inválido", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Name":        "Nome",
		"Email":       "Email",
		"Password":    "Senha",
		"Role":        "Tipo de conta",
		"SecretCode":  "Código secreto",
		"Username":    "Nome de usuário",
		"Bio":         "Bio",
		"Title":       "Título",
		"Slug":        "Slug",
		"Content":     "Conteúdo",
		"Category":    "Categoria",
		"Level":       "Nível",
		"Status":      "Status",
		"ContentType": "Tipo de conteúdo",
		"ContentID":   "Conteúdo",
		"Action":      "Ação",
		"Subject":     "Assunto",
		"Message":     "Mensagem",
		"ChallengeID": "Desafio",
		"ArticleID":   "Artigo",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
