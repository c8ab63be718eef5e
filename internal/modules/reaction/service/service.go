package reaction

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"anoa.com/wisatapedia/internal/entity"
	articleRepo "anoa.com/wisatapedia/internal/modules/article/repository"
	postRepo "anoa.com/wisatapedia/internal/modules/communitypost/repository"
	notifService "anoa.com/wisatapedia/internal/modules/notification/service"
	reactionRepo "anoa.com/wisatapedia/internal/modules/reaction/repository"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ReactionService interface {
	ToggleReaction(ctx context.Context, userID uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, emoji string) error
	GetReactions(ctx context.Context, userID *uuid.UUID, refID uuid.UUID, refType entity.ReferenceType) (*dto.ReactionsResponse, error)
}

type reactionService struct {
	repo                reactionRepo.ReactionRepository
	redisClient         *redis.Client
	notificationService notifService.NotificationService
	articleRepo         articleRepo.ArticleRepository
	postRepo            postRepo.PostRepository
}

func NewReactionService(repo reactionRepo.ReactionRepository, redisClient *redis.Client, notificationService notifService.NotificationService, articleRepo articleRepo.ArticleRepository, postRepo postRepo.PostRepository) ReactionService {
	return &reactionService{
		repo:                repo,
		redisClient:         redisClient,
		notificationService: notificationService,
		articleRepo:         articleRepo,
		postRepo:            postRepo,
	}
}

func countsKey(refType entity.ReferenceType, refID uuid.UUID) string {
	return fmt.Sprintf("counts:%s:%s", refType, refID.String())
}

func (s *reactionService) ToggleReaction(ctx context.Context, userID uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, emoji string) error {
	reaction := &entity.Reaction{
		UserID:        userID,
		ReferenceID:   refID,
		ReferenceType: refType,
		Emoji:         emoji,
	}

	// 1. DB toggle (old and new state)
	oldEmoji, newEmoji, err := s.repo.ToggleReaction(ctx, reaction)
	if err != nil {
		return err
	}

	// 2. Redis counter update, pipelined
	if s.redisClient != nil {
		redisKey := countsKey(refType, refID)
		pipe := s.redisClient.Pipeline()

		if oldEmoji != "" {
			pipe.HIncrBy(ctx, redisKey, oldEmoji, -1)
		}
		if newEmoji != "" {
			pipe.HIncrBy(ctx, redisKey, newEmoji, 1)
		}

		if _, err := pipe.Exec(ctx); err != nil {
			// DB already consistent, cache rebuilds on next miss
			log.Printf("redis reaction update failed: %v", err)
		}
	}

	// 3. Notify the content author on a fresh reaction
	if newEmoji != "" && s.notificationService != nil {
		go s.notifyAuthor(userID, refID, refType, emoji)
	}

	return nil
}

// notifyAuthor runs detached from the request; only commentable content has an
// author to notify, ratings on places stay silent.
func (s *reactionService) notifyAuthor(actorID uuid.UUID, refID uuid.UUID, refType entity.ReferenceType, emoji string) {
	ctx := context.Background()

	var authorID uuid.UUID
	var slug string
	var titleSnippet string

	switch refType {
	case entity.RefArticle:
		article, err := s.articleRepo.FindByID(ctx, refID)
		if err != nil {
			return
		}
		authorID = article.AuthorID
		slug = article.Slug
		titleSnippet = article.Title
	case entity.RefCommunityPost:
		post, err := s.postRepo.FindByID(ctx, refID)
		if err != nil {
			return
		}
		authorID = post.AuthorID
		if post.Title != nil {
			titleSnippet = *post.Title
		}
	default:
		return
	}

	// Don't notify yourself
	if authorID == uuid.Nil || authorID == actorID {
		return
	}

	msg := fmt.Sprintf("Someone reacted with %s to your %s", emoji, refType)
	if titleSnippet != "" {
		if len(titleSnippet) > 20 {
			titleSnippet = titleSnippet[:20] + "..."
		}
		msg = fmt.Sprintf("Someone reacted with %s to your %s: %s", emoji, refType, titleSnippet)
	}

	notif := &entity.Notification{
		UserID:     authorID,
		ActorID:    actorID,
		EntityID:   refID,
		EntitySlug: slug,
		EntityType: refType.String(),
		Type:       "reaction",
		Message:    msg,
		IsRead:     false,
	}
	if err := s.notificationService.CreateNotification(ctx, notif); err != nil {
		log.Printf("failed to create reaction notification: %v", err)
	}
}

func (s *reactionService) GetReactions(ctx context.Context, userID *uuid.UUID, refID uuid.UUID, refType entity.ReferenceType) (*dto.ReactionsResponse, error) {
	counts := make(map[string]int64)
	cacheHit := false

	// 1. Try redis for counts
	if s.redisClient != nil {
		redisKey := countsKey(refType, refID)
		val, err := s.redisClient.HGetAll(ctx, redisKey).Result()
		if err == nil && len(val) > 0 {
			cacheHit = true
			for k, v := range val {
				count, _ := strconv.ParseInt(v, 10, 64)
				if count > 0 { // Don't return 0 or negative counts
					counts[k] = count
				}
			}
		}
	}

	// 2. Cache miss, rebuild from DB
	if !cacheHit {
		dbCounts, err := s.repo.GetReactionsCount(ctx, refID, refType)
		if err != nil {
			return nil, err
		}
		counts = dbCounts

		if s.redisClient != nil {
			redisKey := countsKey(refType, refID)
			pipe := s.redisClient.Pipeline()
			pipe.Del(ctx, redisKey)
			for emoji, count := range counts {
				pipe.HSet(ctx, redisKey, emoji, count)
			}
			// TTL so stale keys eventually clean themselves up
			pipe.Expire(ctx, redisKey, 7*24*time.Hour)
			_, _ = pipe.Exec(ctx)
		}
	}

	// 3. Current user's own reaction, if logged in
	var userReacted *string
	if userID != nil {
		reactions, err := s.repo.GetUserReactions(ctx, *userID, refID, refType)
		if err != nil {
			return nil, err
		}
		if len(reactions) > 0 {
			userReacted = &reactions[0]
		}
	}

	if counts == nil {
		counts = make(map[string]int64)
	}

	return &dto.ReactionsResponse{
		Counts:      counts,
		UserReacted: userReacted,
	}, nil
}
