package response_models

import (
	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

type AuthorResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type PostResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	Excerpt   string          `json:"excerpt"`
	Status    string          `json:"status"`
	WordCount int             `json:"wordCount"`
	Likes     int             `json:"likes"`
	AuthorID  string          `json:"authorId"`
	Author    *AuthorResponse `json:"author,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}

func BuildPostResponse(p *db_models.Post) *PostResponse {
	out := &PostResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Status:    string(p.Status),
		WordCount: p.WordCount,
		Likes:     p.Likes,
		AuthorID:  p.AuthorID.String(),
		CreatedAt: utils.FormatRFC3339(p.CreatedAt),
		UpdatedAt: utils.FormatRFC3339(p.UpdatedAt),
	}
	if p.Author.ID != uuid.Nil {
		out.Author = &AuthorResponse{
			ID:     p.Author.ID.String(),
			Name:   p.Author.Name,
			Email:  p.Author.Email,
			Avatar: p.Author.Avatar,
		}
	}
	return out
}

func BuildPostListResponse(posts []db_models.Post, total int64, page, limit int) *PostListResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *BuildPostResponse(&posts[i]))
	}

	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &PostListResponse{
		Posts: out,
		Pagination: Pagination{
			Total: total,
			Pages: pages,
			Page:  page,
			Limit: limit,
		},
	}
}
