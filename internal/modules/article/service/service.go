package article

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"anoa.com/wisatapedia/internal/entity"
	articleDto "anoa.com/wisatapedia/internal/modules/article/dto"
	"anoa.com/wisatapedia/internal/modules/article/repository"
	comment "anoa.com/wisatapedia/internal/modules/comment/service"
	rating "anoa.com/wisatapedia/internal/modules/rating/service"
	search "anoa.com/wisatapedia/internal/modules/search/service"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID uuid.UUID, req articleDto.CreateArticleRequest) (*articleDto.ArticleResponse, error)
	GetArticleBySlug(ctx context.Context, slug string) (*articleDto.ArticleResponse, error)
	GetArticles(ctx context.Context, filter articleDto.ArticleFilter) (*articleDto.PaginatedArticleResponse, error)
	GetMyArticles(ctx context.Context, authorID uuid.UUID, page dto.PageFilter) (*articleDto.PaginatedArticleResponse, error)
	UpdateArticle(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID, req articleDto.UpdateArticleRequest) (*articleDto.ArticleResponse, error)
	DeleteArticle(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

type articleService struct {
	repo       repository.ArticleRepository
	commentSvc comment.CommentService
	ratingSvc  rating.RatingService
	searchSvc  search.SearchService
	sanitizer  *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepository, commentSvc comment.CommentService, ratingSvc rating.RatingService, searchSvc search.SearchService) ArticleService {
	return &articleService{
		repo:       repo,
		commentSvc: commentSvc,
		ratingSvc:  ratingSvc,
		searchSvc:  searchSvc,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

func (s *articleService) CreateArticle(ctx context.Context, authorID uuid.UUID, req articleDto.CreateArticleRequest) (*articleDto.ArticleResponse, error) {
	slug := slugify(req.Title)

	if existing, _ := s.repo.FindBySlug(ctx, slug); existing != nil {
		// Same title already taken, suffix with a short unique fragment
		slug = fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
	}

	status := req.Status
	if status == "" {
		status = entity.ArticleStatusDraft
	}

	article := &entity.Article{
		AuthorID: authorID,
		Title:    req.Title,
		Slug:     slug,
		Content:  s.sanitizer.Sanitize(req.Content),
		Status:   status,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: article slug %s", apperror.ErrDuplicate, slug)
		}
		return nil, err
	}

	if article.Status == entity.ArticleStatusPublished {
		if err := s.searchSvc.IndexArticle(article); err != nil {
			log.Printf("failed to index article %s: %v", article.ID, err)
		}
	}

	return s.toResponse(ctx, article), nil
}

func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*articleDto.ArticleResponse, error) {
	article, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article", apperror.ErrNotFound)
		}
		return nil, err
	}
	return s.toResponse(ctx, article), nil
}

func (s *articleService) GetArticles(ctx context.Context, filter articleDto.ArticleFilter) (*articleDto.PaginatedArticleResponse, error) {
	filter.Normalize()

	status := filter.Status
	if status == "" {
		status = entity.ArticleStatusPublished
	}

	articles, total, err := s.repo.FindAll(ctx, status, filter.Search, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	return s.toPaginated(ctx, articles, filter.Page, filter.Limit, total), nil
}

func (s *articleService) GetMyArticles(ctx context.Context, authorID uuid.UUID, page dto.PageFilter) (*articleDto.PaginatedArticleResponse, error) {
	page.Normalize()

	articles, total, err := s.repo.FindByAuthor(ctx, authorID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	return s.toPaginated(ctx, articles, page.Page, page.Limit, total), nil
}

func (s *articleService) UpdateArticle(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID, req articleDto.UpdateArticleRequest) (*articleDto.ArticleResponse, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article", apperror.ErrNotFound)
		}
		return nil, err
	}

	if article.AuthorID != userID && !isAdmin {
		return nil, apperror.ErrForbidden
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Content != "" {
		article.Content = s.sanitizer.Sanitize(req.Content)
	}
	if req.Status != "" {
		article.Status = req.Status
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	// Keep the search index in line with visibility
	if article.Status == entity.ArticleStatusPublished {
		if err := s.searchSvc.IndexArticle(article); err != nil {
			log.Printf("failed to index article %s: %v", article.ID, err)
		}
	} else {
		if err := s.searchSvc.DeleteArticle(article.ID.String()); err != nil {
			log.Printf("failed to de-index article %s: %v", article.ID, err)
		}
	}

	return s.toResponse(ctx, article), nil
}

func (s *articleService) DeleteArticle(ctx context.Context, userID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: article", apperror.ErrNotFound)
		}
		return err
	}

	if article.AuthorID != userID && !isAdmin {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.searchSvc.DeleteArticle(id.String()); err != nil {
		log.Printf("failed to de-index article %s: %v", id, err)
	}

	return nil
}

func (s *articleService) toResponse(ctx context.Context, a *entity.Article) *articleDto.ArticleResponse {
	commentCount, _ := s.commentSvc.CountActive(ctx, a.ID, entity.RefArticle)

	var summary dto.RatingSummary
	if sum, err := s.ratingSvc.GetSummary(ctx, a.ID, entity.RefArticle); err == nil {
		summary = dto.RatingSummary{Average: sum.Average, Count: sum.Count}
	}

	return &articleDto.ArticleResponse{
		ID:      a.ID,
		Title:   a.Title,
		Slug:    a.Slug,
		Content: a.Content,
		Status:  a.Status,
		Author: dto.AuthorResponse{
			Username:  a.Author.Username,
			AvatarURL: a.Author.AvatarURL,
		},
		CommentCount: commentCount,
		Rating:       summary,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (s *articleService) toPaginated(ctx context.Context, articles []*entity.Article, page, limit int, total int64) *articleDto.PaginatedArticleResponse {
	responses := make([]articleDto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		responses = append(responses, *s.toResponse(ctx, a))
	}

	return &articleDto.PaginatedArticleResponse{
		Data: responses,
		Meta: dto.NewPaginationMeta(page, limit, total),
	}
}
