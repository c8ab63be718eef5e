package comment

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/wisatapedia/internal/entity"
	commentDto "anoa.com/wisatapedia/internal/modules/comment/dto"
	"anoa.com/wisatapedia/internal/modules/comment/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type CommentService interface {
	PostComment(ctx context.Context, authorID uuid.UUID, ownerID uuid.UUID, ownerType entity.ReferenceType, content string, parentID *uuid.UUID) (*commentDto.CommentResponse, error)
	EditComment(ctx context.Context, authorID uuid.UUID, id uuid.UUID, content string) (*commentDto.CommentResponse, error)
	ModerateComment(ctx context.Context, id uuid.UUID, status int16) (*commentDto.CommentResponse, error)
	ListTopLevel(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType, page dto.PageFilter) (*commentDto.PaginatedCommentResponse, error)
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]commentDto.CommentResponse, error)
	CountActive(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType) (int64, error)
	CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error)
}

type commentService struct {
	repo      repository.CommentRepository
	owners    repository.OwnerLookup
	users     repository.UserLookup
	sanitizer *bluemonday.Policy
}

func NewCommentService(repo repository.CommentRepository, owners repository.OwnerLookup, users repository.UserLookup) CommentService {
	return &commentService{
		repo:      repo,
		owners:    owners,
		users:     users,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *commentService) PostComment(ctx context.Context, authorID uuid.UUID, ownerID uuid.UUID, ownerType entity.ReferenceType, content string, parentID *uuid.UUID) (*commentDto.CommentResponse, error) {
	if !ownerType.Commentable() {
		return nil, fmt.Errorf("%w: reference type %q is not commentable", apperror.ErrInvalidInput, ownerType)
	}

	ownerExists, err := s.owners.Exists(ctx, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	if !ownerExists {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotFound, ownerType)
	}

	authorExists, err := s.users.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !authorExists {
		return nil, fmt.Errorf("%w: author", apperror.ErrNotFound)
	}

	if parentID != nil {
		parent, err := s.repo.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: parent comment", apperror.ErrNotFound)
			}
			return nil, err
		}
		// Cross-item parenting is rejected here, centrally, for every
		// commentable type.
		if parent.OwnerID != ownerID || parent.OwnerType != ownerType {
			return nil, fmt.Errorf("%w: parent comment belongs to different content", apperror.ErrInvalidInput)
		}
	}

	comment := &entity.Comment{
		OwnerID:   ownerID,
		OwnerType: ownerType,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   s.sanitizer.Sanitize(content),
		Status:    entity.CommentStatusActive,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, comment), nil
}

func (s *commentService) EditComment(ctx context.Context, authorID uuid.UUID, id uuid.UUID, content string) (*commentDto.CommentResponse, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != authorID {
		return nil, apperror.ErrForbidden
	}

	// Status stays untouched on edit.
	comment.Content = s.sanitizer.Sanitize(content)

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, comment), nil
}

func (s *commentService) ModerateComment(ctx context.Context, id uuid.UUID, status int16) (*commentDto.CommentResponse, error) {
	if !entity.ValidCommentStatus(status) {
		return nil, fmt.Errorf("%w: status must be -1, 0 or 1", apperror.ErrInvalidInput)
	}

	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Status = status

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, comment), nil
}

func (s *commentService) ListTopLevel(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType, page dto.PageFilter) (*commentDto.PaginatedCommentResponse, error) {
	if !ownerType.Commentable() {
		return nil, fmt.Errorf("%w: reference type %q is not commentable", apperror.ErrInvalidInput, ownerType)
	}

	page.Normalize()

	comments, total, err := s.repo.FindTopLevel(ctx, ownerID, ownerType, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]commentDto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, *s.toResponse(ctx, c))
	}

	return &commentDto.PaginatedCommentResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *commentService) ListReplies(ctx context.Context, parentID uuid.UUID) ([]commentDto.CommentResponse, error) {
	comments, err := s.repo.FindReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}

	responses := make([]commentDto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, *s.toResponse(ctx, c))
	}
	return responses, nil
}

func (s *commentService) CountActive(ctx context.Context, ownerID uuid.UUID, ownerType entity.ReferenceType) (int64, error) {
	return s.repo.CountActiveByOwner(ctx, ownerID, ownerType)
}

func (s *commentService) CountReplies(ctx context.Context, parentID uuid.UUID) (int64, error) {
	return s.repo.CountReplies(ctx, parentID)
}

func (s *commentService) findComment(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment", apperror.ErrNotFound)
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) toResponse(ctx context.Context, c *entity.Comment) *commentDto.CommentResponse {
	replyCount, _ := s.repo.CountReplies(ctx, c.ID)

	return &commentDto.CommentResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		OwnerType: c.OwnerType.String(),
		AuthorID:  c.AuthorID,
		Author: dto.AuthorResponse{
			Username:  c.Author.Username,
			AvatarURL: c.Author.AvatarURL,
		},
		ParentID:   c.ParentID,
		Content:    c.Content,
		Status:     c.Status,
		ReplyCount: replyCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
