package request_models

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
}

type ListPostsQuery struct {
	Status   string `form:"status"`
	AuthorID string `form:"authorId"`
	Limit    int    `form:"limit,default=10"`
	Page     int    `form:"page,default=1"`
}

type SearchPostsQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=10"`
}
