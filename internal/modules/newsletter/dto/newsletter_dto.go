package dto

type SubscribeRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"omitempty,max=100"`
	Source        string `json:"source" binding:"omitempty,max=100"`
	SourceURL     string `json:"sourceUrl" binding:"omitempty,url"`
	UTMCampaign   string `json:"utmCampaign" binding:"omitempty,max=100"`
	UTMSource     string `json:"utmSource" binding:"omitempty,max=100"`
	UTMMedium     string `json:"utmMedium" binding:"omitempty,max=100"`
	OptInWhatsApp bool   `json:"optInWhatsApp"`
}
