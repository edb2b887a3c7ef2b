package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/policy"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

// Embedder turns text into a vector for semantic post search.
type Embedder interface {
	Embed(ctx context.Context, text string) (pgvector.Vector, error)
}

type PostServiceInterface interface {
	ListPosts(ctx context.Context, query request_models.ListPostsQuery) (*response_models.PostListResponse, error)
	GetPost(ctx context.Context, id string) (*response_models.PostResponse, error)
	CreatePost(ctx context.Context, auth *policy.AuthContext, request request_models.CreatePostRequest) (*response_models.PostResponse, error)
	UpdatePost(ctx context.Context, auth *policy.AuthContext, id string, request request_models.UpdatePostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, auth *policy.AuthContext, id string) error
	LikePost(ctx context.Context, auth *policy.AuthContext, id string) (*response_models.PostResponse, error)
	ToggleSave(ctx context.Context, auth *policy.AuthContext, id string) (bool, error)
	SavedPosts(ctx context.Context, auth *policy.AuthContext) ([]response_models.PostResponse, error)
	SearchPosts(ctx context.Context, query request_models.SearchPostsQuery) ([]response_models.PostResponse, error)
}

type PostService struct {
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	savedRepo repositories.SavedPostRepository
	embedder  Embedder
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	savedRepo repositories.SavedPostRepository,
	embedder Embedder,
) PostServiceInterface {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		savedRepo: savedRepo,
		embedder:  embedder,
	}
}

// ListPosts is the one unauthenticated read path; published posts are
// public.
func (s *PostService) ListPosts(ctx context.Context, query request_models.ListPostsQuery) (*response_models.PostListResponse, error) {
	posts, total, err := s.postRepo.List(ctx, repositories.ListPostsFilter{
		Status:   query.Status,
		AuthorID: query.AuthorID,
		Limit:    query.Limit,
		Page:     query.Page,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildPostListResponse(posts, total, query.Page, query.Limit), nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*response_models.PostResponse, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return response_models.BuildPostResponse(post), nil
}

func (s *PostService) CreatePost(ctx context.Context, auth *policy.AuthContext, request request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	if auth == nil {
		return nil, utils.ErrUnauthorized
	}

	status := db_models.PostStatusDraft
	if request.Status != "" {
		status = db_models.PostStatus(request.Status)
		if !status.Valid() {
			return nil, utils.ErrInvalidInput
		}
	}

	user, err := s.userRepo.FindById(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	// Free-tier authorship consumes one generation; the conditional
	// decrement is the quota check. Premium subscribers skip it entirely.
	if user.Subscription == db_models.SubscriptionFree {
		ok, err := s.userRepo.DecrementGenerationIfLeft(ctx, auth.UserID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !ok {
			return nil, utils.ErrQuotaExceeded
		}
	}

	post := &db_models.Post{
		Title:     request.Title,
		Content:   request.Content,
		Excerpt:   request.Excerpt,
		Status:    status,
		WordCount: utils.CountWords(request.Content),
		AuthorID:  auth.UserID,
	}
	if post.Excerpt == "" {
		post.Excerpt = utils.DeriveExcerpt(request.Content)
	}

	if err := s.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, post)

	return response_models.BuildPostResponse(post), nil
}

func (s *PostService) UpdatePost(ctx context.Context, auth *policy.AuthContext, id string, request request_models.UpdatePostRequest) (*response_models.PostResponse, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(auth, post.AuthorID); err != nil {
		return nil, err
	}

	if request.Status != "" {
		status := db_models.PostStatus(request.Status)
		if !status.Valid() {
			return nil, utils.ErrInvalidInput
		}
		post.Status = status
	}

	post.Title = request.Title
	post.Content = request.Content
	post.WordCount = utils.CountWords(request.Content)
	if request.Excerpt != "" {
		post.Excerpt = request.Excerpt
	} else {
		post.Excerpt = utils.DeriveExcerpt(request.Content)
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, post)

	return response_models.BuildPostResponse(post), nil
}

func (s *PostService) DeletePost(ctx context.Context, auth *policy.AuthContext, id string) error {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(auth, post.AuthorID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *PostService) LikePost(ctx context.Context, auth *policy.AuthContext, id string) (*response_models.PostResponse, error) {
	if auth == nil {
		return nil, utils.ErrUnauthorized
	}

	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.postRepo.IncrementLikes(ctx, post.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrPostNotFound
	}

	return response_models.BuildPostResponse(updated), nil
}

// ToggleSave flips the bookmark for (caller, post) and reports the
// resulting state. Two invocations return to the original state.
func (s *PostService) ToggleSave(ctx context.Context, auth *policy.AuthContext, id string) (bool, error) {
	if auth == nil {
		return false, utils.ErrUnauthorized
	}

	post, err := s.findPost(ctx, id)
	if err != nil {
		return false, err
	}

	existing, err := s.savedRepo.FindByUserAndPost(ctx, auth.UserID, post.ID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.savedRepo.Delete(ctx, existing.ID); err != nil {
			return false, utils.ErrDatabaseError
		}
		return false, nil
	}

	saved := &db_models.SavedPost{
		UserID: auth.UserID,
		PostID: post.ID,
	}
	if err := s.savedRepo.Insert(ctx, saved); err != nil {
		return false, utils.ErrDatabaseError
	}

	return true, nil
}

func (s *PostService) SavedPosts(ctx context.Context, auth *policy.AuthContext) ([]response_models.PostResponse, error) {
	if auth == nil {
		return nil, utils.ErrUnauthorized
	}

	posts, err := s.savedRepo.ListPostsSavedBy(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *response_models.BuildPostResponse(&posts[i]))
	}
	return out, nil
}

func (s *PostService) SearchPosts(ctx context.Context, query request_models.SearchPostsQuery) ([]response_models.PostResponse, error) {
	vector, err := s.embedder.Embed(ctx, query.Q)
	if err != nil {
		return nil, utils.ErrAssistFailure
	}

	posts, err := s.postRepo.SearchByEmbedding(ctx, vector, query.Limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *response_models.BuildPostResponse(&posts[i]))
	}
	return out, nil
}

func (s *PostService) findPost(ctx context.Context, id string) (*db_models.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrPostNotFound
	}

	post, err := s.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	return post, nil
}

// refreshEmbedding is best-effort: a failed embedding never fails the
// write, the post just stays out of semantic search results.
func (s *PostService) refreshEmbedding(ctx context.Context, post *db_models.Post) {
	if s.embedder == nil {
		return
	}

	vector, err := s.embedder.Embed(ctx, post.Title+"\n\n"+post.Content)
	if err != nil {
		log.Printf("Embedding failed for post %s: %v", post.ID, err)
		return
	}

	if err := s.postRepo.UpdateEmbedding(ctx, post.ID, vector); err != nil {
		log.Printf("Storing embedding failed for post %s: %v", post.ID, err)
	}
}
