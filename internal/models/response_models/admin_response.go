package response_models

type AdminUserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	BlogCount int64  `json:"blogCount"`
}

type AdminStatsResponse struct {
	TotalUsers          int64 `json:"totalUsers"`
	PremiumUsers        int64 `json:"premiumUsers"`
	TotalBlogs          int64 `json:"totalBlogs"`
	BlogsGeneratedToday int64 `json:"blogsGeneratedToday"`
}
