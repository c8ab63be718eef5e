package entity

import "fmt"

// ReferenceType tags which entity kind a polymorphic record (rating, media,
// reaction, comment owner) points at. The set is closed: adding a kind means
// adding a constant here and nowhere else.
type ReferenceType string

const (
	RefLocation      ReferenceType = "location"
	RefAccommodation ReferenceType = "accommodation"
	RefFood          ReferenceType = "food"
	RefArticle       ReferenceType = "article"
	RefEvent         ReferenceType = "event"
	RefOrganizer     ReferenceType = "organizer"
	RefCommunityPost ReferenceType = "community_post"
)

var referenceTypes = map[ReferenceType]struct{}{
	RefLocation:      {},
	RefAccommodation: {},
	RefFood:          {},
	RefArticle:       {},
	RefEvent:         {},
	RefOrganizer:     {},
	RefCommunityPost: {},
}

func (t ReferenceType) Valid() bool {
	_, ok := referenceTypes[t]
	return ok
}

func (t ReferenceType) String() string {
	return string(t)
}

// ParseReferenceType validates a raw tag at the boundary. Everything past the
// delivery layer carries the typed value.
func ParseReferenceType(raw string) (ReferenceType, error) {
	t := ReferenceType(raw)
	if !t.Valid() {
		return "", fmt.Errorf("unknown reference type %q", raw)
	}
	return t, nil
}

// CommentableTypes are the reference types the comment engine accepts as
// owning content.
var CommentableTypes = []ReferenceType{RefArticle, RefCommunityPost}

func (t ReferenceType) Commentable() bool {
	for _, c := range CommentableTypes {
		if t == c {
			return true
		}
	}
	return false
}
