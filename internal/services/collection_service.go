package services

import (
	"context"

	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/policy"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

type CollectionServiceInterface interface {
	ListCollections(ctx context.Context, auth *policy.AuthContext) ([]response_models.CollectionResponse, error)
	CreateCollection(ctx context.Context, auth *policy.AuthContext, request request_models.CreateCollectionRequest) (*response_models.CollectionResponse, error)
	GetCollection(ctx context.Context, auth *policy.AuthContext, id string) (*response_models.CollectionResponse, error)
	UpdateCollection(ctx context.Context, auth *policy.AuthContext, id string, request request_models.UpdateCollectionRequest) (*response_models.CollectionResponse, error)
	DeleteCollection(ctx context.Context, auth *policy.AuthContext, id string) error
	TogglePost(ctx context.Context, auth *policy.AuthContext, id string, postID string) (*response_models.CollectionResponse, bool, error)
}

type CollectionService struct {
	collectionRepo repositories.CollectionRepository
	postRepo       repositories.PostRepository
}

func NewCollectionService(
	collectionRepo repositories.CollectionRepository,
	postRepo repositories.PostRepository,
) CollectionServiceInterface {
	return &CollectionService{
		collectionRepo: collectionRepo,
		postRepo:       postRepo,
	}
}

func (s *CollectionService) ListCollections(ctx context.Context, auth *policy.AuthContext) ([]response_models.CollectionResponse, error) {
	if auth == nil {
		return nil, utils.ErrUnauthorized
	}

	rows, err := s.collectionRepo.ListByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CollectionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *response_models.BuildCollectionResponse(&rows[i].Collection, rows[i].PostCount))
	}
	return out, nil
}

func (s *CollectionService) CreateCollection(ctx context.Context, auth *policy.AuthContext, request request_models.CreateCollectionRequest) (*response_models.CollectionResponse, error) {
	if auth == nil {
		return nil, utils.ErrUnauthorized
	}

	collection := &db_models.Collection{
		Name:        request.Name,
		Description: request.Description,
		UserID:      auth.UserID,
	}

	if err := s.collectionRepo.Insert(ctx, collection); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildCollectionResponse(collection, 0), nil
}

func (s *CollectionService) GetCollection(ctx context.Context, auth *policy.AuthContext, id string) (*response_models.CollectionResponse, error) {
	collectionID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrCollectionNotFound
	}

	collection, err := s.collectionRepo.FindByIdWithPosts(ctx, collectionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if collection == nil {
		return nil, utils.ErrCollectionNotFound
	}

	if err := policy.Authorize(auth, collection.UserID); err != nil {
		return nil, err
	}

	return response_models.BuildCollectionResponse(collection, int64(len(collection.Posts))), nil
}

func (s *CollectionService) UpdateCollection(ctx context.Context, auth *policy.AuthContext, id string, request request_models.UpdateCollectionRequest) (*response_models.CollectionResponse, error) {
	collection, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return nil, err
	}

	collection.Name = request.Name
	collection.Description = request.Description

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildCollectionResponse(collection, 0), nil
}

func (s *CollectionService) DeleteCollection(ctx context.Context, auth *policy.AuthContext, id string) error {
	collection, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return err
	}

	if err := s.collectionRepo.Delete(ctx, collection); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// TogglePost flips membership of postID in the collection and reports
// the resulting state. Membership references the post; it never deletes
// or copies it.
func (s *CollectionService) TogglePost(ctx context.Context, auth *policy.AuthContext, id string, postID string) (*response_models.CollectionResponse, bool, error) {
	collection, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return nil, false, err
	}

	parsedPostID, err := uuid.Parse(postID)
	if err != nil {
		return nil, false, utils.ErrPostNotFound
	}

	post, err := s.postRepo.FindById(ctx, parsedPostID)
	if err != nil {
		return nil, false, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, false, utils.ErrPostNotFound
	}

	member, err := s.collectionRepo.HasPost(ctx, collection.ID, post.ID)
	if err != nil {
		return nil, false, utils.ErrDatabaseError
	}

	if member {
		if err := s.collectionRepo.RemovePost(ctx, collection, post); err != nil {
			return nil, false, utils.ErrDatabaseError
		}
		return response_models.BuildCollectionResponse(collection, 0), false, nil
	}

	if err := s.collectionRepo.AddPost(ctx, collection, post); err != nil {
		return nil, false, utils.ErrDatabaseError
	}
	return response_models.BuildCollectionResponse(collection, 0), true, nil
}

func (s *CollectionService) findOwned(ctx context.Context, auth *policy.AuthContext, id string) (*db_models.Collection, error) {
	collectionID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrCollectionNotFound
	}

	collection, err := s.collectionRepo.FindById(ctx, collectionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if collection == nil {
		return nil, utils.ErrCollectionNotFound
	}

	if err := policy.Authorize(auth, collection.UserID); err != nil {
		return nil, err
	}

	return collection, nil
}
