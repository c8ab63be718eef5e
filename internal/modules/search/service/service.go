package service

import (
	"fmt"
	"log"

	"anoa.com/wisatapedia/internal/entity"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const (
	articlesIndex  = "articles"
	locationsIndex = "locations"
)

// SearchService keeps the Meilisearch indexes in sync with the database.
// Search queries themselves go straight from the frontend to Meilisearch.
type SearchService interface {
	IndexArticle(article *entity.Article) error
	DeleteArticle(id string) error
	IndexLocation(location *entity.Location) error
	DeleteLocation(id string) error
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	// Articles index
	articleFilterable := []any{"status", "author_id"}
	if _, err := s.client.Index(articlesIndex).UpdateFilterableAttributes(&articleFilterable); err != nil {
		log.Printf("Failed to update articles filterable attributes: %v", err)
	}

	articleSortable := []string{"created_at"}
	if _, err := s.client.Index(articlesIndex).UpdateSortableAttributes(&articleSortable); err != nil {
		log.Printf("Failed to update articles sortable attributes: %v", err)
	}

	// Locations index
	locationFilterable := []any{"category", "ward_id"}
	if _, err := s.client.Index(locationsIndex).UpdateFilterableAttributes(&locationFilterable); err != nil {
		log.Printf("Failed to update locations filterable attributes: %v", err)
	}
}

func (s *searchService) IndexArticle(article *entity.Article) error {
	doc := map[string]any{
		"id":         article.ID.String(),
		"title":      article.Title,
		"slug":       article.Slug,
		"content":    s.sanitizer.Sanitize(article.Content),
		"status":     article.Status,
		"author_id":  article.AuthorID.String(),
		"created_at": article.CreatedAt.Unix(),
	}

	if _, err := s.client.Index(articlesIndex).AddDocuments([]map[string]any{doc}, nil); err != nil {
		return fmt.Errorf("failed to index article %s: %w", article.ID, err)
	}
	return nil
}

func (s *searchService) DeleteArticle(id string) error {
	if _, err := s.client.Index(articlesIndex).DeleteDocument(id); err != nil {
		return fmt.Errorf("failed to delete article %s from index: %w", id, err)
	}
	return nil
}

func (s *searchService) IndexLocation(location *entity.Location) error {
	doc := map[string]any{
		"id":          location.ID.String(),
		"name":        location.Name,
		"slug":        location.Slug,
		"category":    location.Category,
		"description": s.sanitizer.Sanitize(location.Description),
		"ward_id":     location.WardID.String(),
	}

	if _, err := s.client.Index(locationsIndex).AddDocuments([]map[string]any{doc}, nil); err != nil {
		return fmt.Errorf("failed to index location %s: %w", location.ID, err)
	}
	return nil
}

func (s *searchService) DeleteLocation(id string) error {
	if _, err := s.client.Index(locationsIndex).DeleteDocument(id); err != nil {
		return fmt.Errorf("failed to delete location %s from index: %w", id, err)
	}
	return nil
}
