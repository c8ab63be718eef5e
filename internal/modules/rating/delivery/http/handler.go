package handler

import (
	"net/http"

	"anoa.com/wisatapedia/internal/entity"
	ratingDto "anoa.com/wisatapedia/internal/modules/rating/dto"
	rating "anoa.com/wisatapedia/internal/modules/rating/service"
	"anoa.com/wisatapedia/pkg/response"
	"anoa.com/wisatapedia/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	service rating.RatingService
}

func NewRatingHandler(service rating.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req ratingDto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	refID, err := uuid.Parse(req.ReferenceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference id"})
		return
	}

	refType, err := entity.ParseReferenceType(req.ReferenceType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.CreateRating(c.Request.Context(), userID, refID, refType, req.Value, req.Comment)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *RatingHandler) UpdateRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	var req ratingDto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.service.UpdateRating(c.Request.Context(), userID, id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	isAdmin := c.GetString("user_role") == entity.RoleAdmin

	if err := h.service.DeleteRating(c.Request.Context(), userID, isAdmin, id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}

func (h *RatingHandler) GetRatings(c *gin.Context) {
	refID, refType, ok := parseReferenceParams(c)
	if !ok {
		return
	}

	resp, err := h.service.GetRatings(c.Request.Context(), refID, refType)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *RatingHandler) GetSummary(c *gin.Context) {
	refID, refType, ok := parseReferenceParams(c)
	if !ok {
		return
	}

	resp, err := h.service.GetSummary(c.Request.Context(), refID, refType)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseReferenceParams(c *gin.Context) (uuid.UUID, entity.ReferenceType, bool) {
	refID, err := uuid.Parse(c.Param("refID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference id"})
		return uuid.Nil, "", false
	}

	refType, err := entity.ParseReferenceType(c.Param("refType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, "", false
	}

	return refID, refType, true
}
