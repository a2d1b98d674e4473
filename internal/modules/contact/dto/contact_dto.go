package dto

type CreateContactRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	WhatsApp *string `json:"whatsapp" binding:"omitempty,max=30"`
	Subject  string  `json:"subject" binding:"required,min=3,max=150"`
	Message  string  `json:"message" binding:"required,min=20"`
}
