package dto

type ToggleLikeRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=article challenge"`
	ContentID   string `json:"contentId" binding:"required"`
}

type LikeCheckQuery struct {
	ContentType string `form:"contentType" binding:"required,oneof=article challenge"`
	ContentID   string `form:"contentId" binding:"required"`
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

type CreateCommentRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=article challenge"`
	ContentID   string `json:"contentId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

type ModerateCommentRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}
