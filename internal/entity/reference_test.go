package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceType_Valid(t *testing.T) {
	for _, rt := range []ReferenceType{
		RefLocation,
		RefAccommodation,
		RefFood,
		RefArticle,
		RefEvent,
		RefOrganizer,
		RefCommunityPost,
	} {
		assert.True(t, rt.Valid(), "%s should be valid", rt)
	}

	assert.False(t, ReferenceType("hotel").Valid())
	assert.False(t, ReferenceType("").Valid())
	assert.False(t, ReferenceType("Location").Valid(), "tags are case sensitive")
}

func TestParseReferenceType(t *testing.T) {
	parsed, err := ParseReferenceType("community_post")
	require.NoError(t, err)
	assert.Equal(t, RefCommunityPost, parsed)

	_, err = ParseReferenceType("community-post")
	assert.Error(t, err)
}

func TestReferenceType_Commentable(t *testing.T) {
	assert.True(t, RefArticle.Commentable())
	assert.True(t, RefCommunityPost.Commentable())

	for _, rt := range []ReferenceType{RefLocation, RefAccommodation, RefFood, RefEvent, RefOrganizer} {
		assert.False(t, rt.Commentable(), "%s should not accept comments", rt)
	}
}
