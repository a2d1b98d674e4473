package entity

import "time"

type Subscriber struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	SourceURL     string    `json:"sourceUrl"`
	UTMCampaign   string    `json:"utmCampaign,omitempty"`
	UTMSource     string    `json:"utmSource,omitempty"`
	UTMMedium     string    `json:"utmMedium,omitempty"`
	OptInWhatsApp bool      `json:"optInWhatsApp"`
	SubscribedAt  time.Time `json:"subscribedAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	WhatsApp  *string   `json:"whatsapp"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
