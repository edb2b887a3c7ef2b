package request_models

type ImproveContentRequest struct {
	Content string `json:"content" binding:"required"`
	PostID  string `json:"postId"`
}
