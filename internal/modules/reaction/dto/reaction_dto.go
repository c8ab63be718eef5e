package dto

type ReactionToggleRequest struct {
	ReferenceID   string `json:"reference_id" binding:"required,uuid"`
	ReferenceType string `json:"reference_type" binding:"required"`
	Emoji         string `json:"emoji" binding:"required,max=10"`
}
