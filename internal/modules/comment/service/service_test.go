package comment

import (
	"context"
	"testing"

	"anoa.com/wisatapedia/internal/entity"
	"anoa.com/wisatapedia/internal/modules/comment/repository"
	"anoa.com/wisatapedia/pkg/apperror"
	"anoa.com/wisatapedia/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	svc     CommentService
	db      *gorm.DB
	author  *entity.User
	article *entity.Article
	post    *entity.CommunityPost
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Article{},
		&entity.CommunityPost{},
		&entity.Comment{},
	))

	author := &entity.User{
		Username:     "traveler",
		Email:        "traveler@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(author).Error)

	article := &entity.Article{
		AuthorID: author.ID,
		Title:    "Hidden beaches",
		Slug:     "hidden-beaches",
		Content:  "body",
		Status:   entity.ArticleStatusPublished,
	}
	require.NoError(t, db.Create(article).Error)

	post := &entity.CommunityPost{
		AuthorID: author.ID,
		Content:  "anyone been to the north coast?",
		Status:   entity.PostStatusActive,
	}
	require.NoError(t, db.Create(post).Error)

	svc := NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewOwnerLookup(db),
		repository.NewUserLookup(db),
	)

	return &fixture{svc: svc, db: db, author: author, article: article, post: post}
}

func TestPostComment_OnlyCommentableTypes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, refType := range []entity.ReferenceType{
		entity.RefLocation,
		entity.RefAccommodation,
		entity.RefFood,
		entity.RefEvent,
		entity.RefOrganizer,
	} {
		_, err := f.svc.PostComment(ctx, f.author.ID, uuid.New(), refType, "hi", nil)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput, "type %s should not be commentable", refType)
	}
}

func TestPostComment_MissingOwnerOrAuthor(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.PostComment(ctx, f.author.ID, uuid.New(), entity.RefArticle, "hi", nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = f.svc.PostComment(ctx, uuid.New(), f.article.ID, entity.RefArticle, "hi", nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPostComment_ReplyThreading(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	top, err := f.svc.PostComment(ctx, f.author.ID, f.article.ID, entity.RefArticle, "first!", nil)
	require.NoError(t, err)
	assert.Nil(t, top.ParentID)

	reply, err := f.svc.PostComment(ctx, f.author.ID, f.article.ID, entity.RefArticle, "welcome", &top.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, top.ID, *reply.ParentID)

	replies, err := f.svc.ListReplies(ctx, top.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)

	count, err := f.svc.CountReplies(ctx, top.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostComment_RejectsCrossOwnerParent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	articleComment, err := f.svc.PostComment(ctx, f.author.ID, f.article.ID, entity.RefArticle, "on the article", nil)
	require.NoError(t, err)

	// Reply targets the community post but points at a parent on the article
	_, err = f.svc.PostComment(ctx, f.author.ID, f.post.ID, entity.RefCommunityPost, "wrong thread", &articleComment.ID)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestEditComment_AuthorOnly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.PostComment(ctx, f.author.ID, f.article.ID, entity.RefArticle, "tpyo", nil)
	require.NoError(t, err)

	_, err = f.svc.EditComment(ctx, uuid.New(), created.ID, "fixed")
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	edited, err := f.svc.EditComment(ctx, f.author.ID, created.ID, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "fixed", edited.Content)
}

func TestModerateComment_HidesWithoutDeleting(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.PostComment(ctx, f.author.ID, f.post.ID, entity.RefCommunityPost, "spam spam", nil)
	require.NoError(t, err)

	_, err = f.svc.ModerateComment(ctx, created.ID, 7)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	rejected, err := f.svc.ModerateComment(ctx, created.ID, entity.CommentStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.CommentStatusRejected, rejected.Status)

	// Hidden from listings and counts
	page, err := f.svc.ListTopLevel(ctx, f.post.ID, entity.RefCommunityPost, dto.PageFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	count, err := f.svc.CountActive(ctx, f.post.ID, entity.RefCommunityPost)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// But the row survives for moderation history
	var stored entity.Comment
	require.NoError(t, f.db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, entity.CommentStatusRejected, stored.Status)

	// Reinstating brings it back
	_, err = f.svc.ModerateComment(ctx, created.ID, entity.CommentStatusActive)
	require.NoError(t, err)

	count, err = f.svc.CountActive(ctx, f.post.ID, entity.RefCommunityPost)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListTopLevel_ExcludesReplies(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	top, err := f.svc.PostComment(ctx, f.author.ID, f.article.ID, entity.RefArticle, "top", nil)
	require.NoError(t, err)
	_, err = f.svc.PostComment(ctx, f.author.ID, f.article.ID, entity.RefArticle, "nested", &top.ID)
	require.NoError(t, err)

	page, err := f.svc.ListTopLevel(ctx, f.article.ID, entity.RefArticle, dto.PageFilter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, top.ID, page.Data[0].ID)
	assert.Equal(t, int64(1), page.Data[0].ReplyCount)
}

func TestPostComment_SanitizesContent(t *testing.T) {
	f := setup(t)

	created, err := f.svc.PostComment(context.Background(), f.author.ID, f.article.ID, entity.RefArticle,
		`<script>alert("x")</script>nice view`, nil)
	require.NoError(t, err)
	assert.Equal(t, "nice view", created.Content)
}
