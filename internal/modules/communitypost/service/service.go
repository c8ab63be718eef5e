package communitypost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/wisatapedia/internal/entity"
	comment "anoa.com/wisatapedia/internal/modules/comment/service"
	postDto "anoa.com/wisatapedia/internal/modules/communitypost/dto"
	"anoa.com/wisatapedia/internal/modules/communitypost/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/dto"
	"anoa.com/wisatapedia/pkg/ratelimiter"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req postDto.CreatePostRequest) (*postDto.PostResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*postDto.PostResponse, error)
	GetFeed(ctx context.Context, page dto.PageFilter) (*postDto.PaginatedPostResponse, error)
	UpdatePost(ctx context.Context, userID uuid.UUID, id uuid.UUID, req postDto.UpdatePostRequest) (*postDto.PostResponse, error)
	DeletePost(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

type postService struct {
	repo        repository.PostRepository
	commentSvc  comment.CommentService
	redisClient *redis.Client
	sanitizer   *bluemonday.Policy
}

func NewPostService(repo repository.PostRepository, commentSvc comment.CommentService, redisClient *redis.Client) PostService {
	return &postService{
		repo:        repo,
		commentSvc:  commentSvc,
		redisClient: redisClient,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req postDto.CreatePostRequest) (*postDto.PostResponse, error) {
	// Posting cooldown
	postLimit := ratelimiter.GetDurationFromEnv("RATE_LIMIT_POST", 15*time.Second)
	allowed, err := ratelimiter.CheckAndSetRateLimit(ctx, s.redisClient, authorID, "community_post", postLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		ttl, _ := ratelimiter.GetRateLimitTTL(ctx, s.redisClient, authorID, "community_post")
		return nil, &ratelimiter.RateLimitError{
			Message:    fmt.Sprintf("you are posting too fast. Please wait %.0f seconds", ttl.Seconds()),
			RetryAfter: ttl,
		}
	}

	post := &entity.CommunityPost{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  s.sanitizer.Sanitize(req.Content),
		Status:   entity.PostStatusActive,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		// Creation failed, give the cooldown back
		_ = ratelimiter.ClearRateLimit(ctx, s.redisClient, authorID, "community_post")
		return nil, err
	}

	return s.toResponse(ctx, post), nil
}

func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*postDto.PostResponse, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, post), nil
}

func (s *postService) GetFeed(ctx context.Context, page dto.PageFilter) (*postDto.PaginatedPostResponse, error) {
	page.Normalize()

	posts, total, err := s.repo.FindAllActive(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]postDto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, *s.toResponse(ctx, p))
	}

	return &postDto.PaginatedPostResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *postService) UpdatePost(ctx context.Context, userID uuid.UUID, id uuid.UUID, req postDto.UpdatePostRequest) (*postDto.PostResponse, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, apperror.ErrForbidden
	}

	if req.Title != nil {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = s.sanitizer.Sanitize(req.Content)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, post), nil
}

// DeletePost flips status; the row stays for moderation history.
func (s *postService) DeletePost(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != userID && !isAdmin {
		return apperror.ErrForbidden
	}

	return s.repo.UpdateStatus(ctx, id, entity.PostStatusInactive)
}

func (s *postService) findPost(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: community post", apperror.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) toResponse(ctx context.Context, p *entity.CommunityPost) *postDto.PostResponse {
	commentCount, _ := s.commentSvc.CountActive(ctx, p.ID, entity.RefCommunityPost)

	return &postDto.PostResponse{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Status:  p.Status,
		Author: dto.AuthorResponse{
			Username:  p.Author.Username,
			AvatarURL: p.Author.AvatarURL,
		},
		CommentCount: commentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
