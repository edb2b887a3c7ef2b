package response_models

import (
	"inkwell/internal/models/db_models"
	"inkwell/pkg/utils"
)

type CollectionResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	UserID      string         `json:"userId"`
	PostCount   int64          `json:"postCount"`
	Posts       []PostResponse `json:"posts,omitempty"`
	CreatedAt   string         `json:"createdAt"`
}

func BuildCollectionResponse(c *db_models.Collection, postCount int64) *CollectionResponse {
	out := &CollectionResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		UserID:      c.UserID.String(),
		PostCount:   postCount,
		CreatedAt:   utils.FormatRFC3339(c.CreatedAt),
	}
	for i := range c.Posts {
		out.Posts = append(out.Posts, *BuildPostResponse(&c.Posts[i]))
	}
	return out
}
