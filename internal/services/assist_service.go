package services

import (
	"context"

	"github.com/google/uuid"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/policy"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

// ContentImprover is the outbound gateway to a generative text service.
// It is an opaque collaborator: no retries, no streaming, fails closed.
type ContentImprover interface {
	Improve(ctx context.Context, content string) (string, error)
}

type AssistServiceInterface interface {
	ImproveContent(ctx context.Context, auth *policy.AuthContext, request request_models.ImproveContentRequest) (string, error)
}

type AssistService struct {
	improver ContentImprover
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

func NewAssistService(
	improver ContentImprover,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
) AssistServiceInterface {
	return &AssistService{
		improver: improver,
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// ImproveContent forwards the text to the generative service and relays
// the result. Free-tier callers consume one generation; when a postId is
// supplied and the caller may mutate that post, the improved content is
// persisted onto it with derived fields recomputed.
func (s *AssistService) ImproveContent(ctx context.Context, auth *policy.AuthContext, request request_models.ImproveContentRequest) (string, error) {
	if auth == nil {
		return "", utils.ErrUnauthorized
	}
	if request.Content == "" {
		return "", utils.ErrInvalidInput
	}

	user, err := s.userRepo.FindById(ctx, auth.UserID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}

	if user.Subscription == db_models.SubscriptionFree {
		ok, err := s.userRepo.DecrementGenerationIfLeft(ctx, auth.UserID)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if !ok {
			return "", utils.ErrQuotaExceeded
		}
	}

	improved, err := s.improver.Improve(ctx, request.Content)
	if err != nil {
		return "", utils.ErrAssistFailure
	}

	if request.PostID != "" {
		if err := s.persistOnto(ctx, auth, request.PostID, improved); err != nil {
			return "", err
		}
	}

	return improved, nil
}

func (s *AssistService) persistOnto(ctx context.Context, auth *policy.AuthContext, postID string, improved string) error {
	parsed, err := uuid.Parse(postID)
	if err != nil {
		return utils.ErrPostNotFound
	}

	post, err := s.postRepo.FindById(ctx, parsed)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := policy.Authorize(auth, post.AuthorID); err != nil {
		return err
	}

	post.Content = improved
	post.WordCount = utils.CountWords(improved)
	post.Excerpt = utils.DeriveExcerpt(improved)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
