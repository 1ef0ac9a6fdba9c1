package controllers

import (
	"net/http"
	"strconv"

	"netflix-clone-backend/models"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type SearchController struct {
	searchService *services.SearchService
	logger        hclog.Logger
}

func NewSearchController(searchService *services.SearchService, logger hclog.Logger) *SearchController {
	return &SearchController{
		searchService: searchService,
		logger:        logger.Named("search"),
	}
}

// Search handles GET /search/<domain>/:query.
func (ctl *SearchController) Search(domain models.SearchType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		results, err := ctl.searchService.Search(ctx.Request.Context(), string(domain), ctx.Param("query"))
		if err != nil {
			respondError(ctx, ctl.logger, err)
			return
		}
		ok(ctx, http.StatusOK, results)
	}
}

func (ctl *SearchController) History(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}
	history, err := ctl.searchService.History(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ok(ctx, http.StatusOK, history)
}

func (ctl *SearchController) AddHistory(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}

	var req models.AddHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, bindMessage(err))
		return
	}

	entry, err := ctl.searchService.AddHistory(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ok(ctx, http.StatusCreated, entry)
}

func (ctl *SearchController) RemoveHistory(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		respondError(ctx, ctl.logger, services.ErrInvalidID)
		return
	}

	if err := ctl.searchService.RemoveHistory(ctx.Request.Context(), user.ID, id); err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Item removed from search history"})
}
