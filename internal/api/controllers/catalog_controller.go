package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comicvault/internal/models/request_models"
	"comicvault/internal/services"
	"comicvault/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// AddComic godoc
// @Summary Add a comic to the collection
// @Description Creates a comic if the caller's storage quota allows it
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CreateComicRequest true "Comic payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comics [post]
func (ctl *CatalogController) AddComic(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateComicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comic, err := ctl.catalogService.AddComic(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comic, "Comic added successfully")
}

// ListComics godoc
// @Summary List the caller's comics
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comics [get]
func (ctl *CatalogController) ListComics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	comics, err := ctl.catalogService.ListComics(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comics, "Comics fetched successfully")
}

// GetComic godoc
// @Summary Fetch one comic
// @Tags Catalog
// @Produce json
// @Param id path string true "Comic ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comics/{id} [get]
func (ctl *CatalogController) GetComic(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	comicID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	comic, err := ctl.catalogService.GetComic(c.Request.Context(), userID, comicID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comic, "Comic fetched successfully")
}

// UpdateComic godoc
// @Summary Update a comic
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Comic ID"
// @Param request body request_models.UpdateComicRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comics/{id} [put]
func (ctl *CatalogController) UpdateComic(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	comicID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateComicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comic, err := ctl.catalogService.UpdateComic(c.Request.Context(), userID, comicID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comic, "Comic updated successfully")
}

// DeleteComic godoc
// @Summary Delete a comic
// @Tags Catalog
// @Produce json
// @Param id path string true "Comic ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comics/{id} [delete]
func (ctl *CatalogController) DeleteComic(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	comicID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := ctl.catalogService.DeleteComic(c.Request.Context(), userID, comicID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comic deleted successfully")
}

// FindSimilar godoc
// @Summary Find comics similar to a free-text query
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.SimilarComicsRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comics/similar [post]
func (ctl *CatalogController) FindSimilar(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req request_models.SimilarComicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comics, err := ctl.catalogService.FindSimilar(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comics, "Similar comics fetched successfully")
}
