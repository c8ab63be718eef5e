package handler

import (
	"net/http"

	geoDto "anoa.com/wisatapedia/internal/modules/geography/dto"
	geography "anoa.com/wisatapedia/internal/modules/geography/service"
	"anoa.com/wisatapedia/pkg/response"
	"anoa.com/wisatapedia/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GeographyHandler struct {
	service geography.GeographyService
}

func NewGeographyHandler(service geography.GeographyService) *GeographyHandler {
	return &GeographyHandler{service: service}
}

// optionalParent parses an optional parent filter from the query string.
func optionalParent(c *gin.Context, key string) (uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *GeographyHandler) CreateContinent(c *gin.Context) {
	var req geoDto.CreateContinentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CreateContinent(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GeographyHandler) ListContinents(c *gin.Context) {
	resp, err := h.service.ListContinents(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) RenameContinent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req geoDto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.RenameContinent(c.Request.Context(), id, req.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) DeleteContinent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteContinent(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "continent deleted"})
}

func (h *GeographyHandler) CreateCountry(c *gin.Context) {
	var req geoDto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CreateCountry(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GeographyHandler) ListCountries(c *gin.Context) {
	continentID, ok := optionalParent(c, "continent_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid continent_id"})
		return
	}

	resp, err := h.service.ListCountries(c.Request.Context(), continentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) RenameCountry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req geoDto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.RenameCountry(c.Request.Context(), id, req.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) DeleteCountry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCountry(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "country deleted"})
}

func (h *GeographyHandler) CreateRegion(c *gin.Context) {
	var req geoDto.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CreateRegion(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GeographyHandler) ListRegions(c *gin.Context) {
	countryID, ok := optionalParent(c, "country_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country_id"})
		return
	}

	resp, err := h.service.ListRegions(c.Request.Context(), countryID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) GetRegionBySlug(c *gin.Context) {
	resp, err := h.service.GetRegionBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) RenameRegion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req geoDto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.RenameRegion(c.Request.Context(), id, req.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) DeleteRegion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRegion(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "region deleted"})
}

func (h *GeographyHandler) CreateDistrict(c *gin.Context) {
	var req geoDto.CreateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CreateDistrict(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GeographyHandler) ListDistricts(c *gin.Context) {
	regionID, ok := optionalParent(c, "region_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region_id"})
		return
	}

	resp, err := h.service.ListDistricts(c.Request.Context(), regionID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) RenameDistrict(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req geoDto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.RenameDistrict(c.Request.Context(), id, req.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) DeleteDistrict(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDistrict(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "district deleted"})
}

func (h *GeographyHandler) CreateWard(c *gin.Context) {
	var req geoDto.CreateWardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CreateWard(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GeographyHandler) ListWards(c *gin.Context) {
	districtID, ok := optionalParent(c, "district_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid district_id"})
		return
	}

	resp, err := h.service.ListWards(c.Request.Context(), districtID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) RenameWard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req geoDto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.RenameWard(c.Request.Context(), id, req.Name)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GeographyHandler) DeleteWard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteWard(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ward deleted"})
}
