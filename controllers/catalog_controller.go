package controllers

import (
	"context"
	"net/http"

	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

// CatalogController serves the actor, collection and trending routes.
type CatalogController struct {
	catalogService *services.CatalogService
	logger         hclog.Logger
}

func NewCatalogController(catalogService *services.CatalogService, logger hclog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger.Named("catalog"),
	}
}

func (ctl *CatalogController) byID(fn func(ctx context.Context, id string) (any, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		content, err := fn(ctx.Request.Context(), ctx.Param("id"))
		if err != nil {
			respondError(ctx, ctl.logger, err)
			return
		}
		ok(ctx, http.StatusOK, content)
	}
}

func (ctl *CatalogController) PopularActors(ctx *gin.Context) {
	actors, err := ctl.catalogService.PopularActors(ctx.Request.Context())
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ok(ctx, http.StatusOK, actors)
}

func (ctl *CatalogController) Actor() gin.HandlerFunc {
	return ctl.byID(func(ctx context.Context, id string) (any, error) {
		return ctl.catalogService.Actor(ctx, id)
	})
}

func (ctl *CatalogController) ActorMovies() gin.HandlerFunc {
	return ctl.byID(func(ctx context.Context, id string) (any, error) {
		return ctl.catalogService.ActorMovies(ctx, id)
	})
}

func (ctl *CatalogController) ActorTV() gin.HandlerFunc {
	return ctl.byID(func(ctx context.Context, id string) (any, error) {
		return ctl.catalogService.ActorTV(ctx, id)
	})
}

func (ctl *CatalogController) ActorImages() gin.HandlerFunc {
	return ctl.byID(func(ctx context.Context, id string) (any, error) {
		return ctl.catalogService.ActorImages(ctx, id)
	})
}

func (ctl *CatalogController) CollectionDetails() gin.HandlerFunc {
	return ctl.byID(func(ctx context.Context, id string) (any, error) {
		return ctl.catalogService.CollectionDetails(ctx, id)
	})
}

func (ctl *CatalogController) CollectionImages() gin.HandlerFunc {
	return ctl.byID(func(ctx context.Context, id string) (any, error) {
		return ctl.catalogService.CollectionImages(ctx, id)
	})
}

func (ctl *CatalogController) Trending(ctx *gin.Context) {
	results, err := ctl.catalogService.Trending(ctx.Request.Context(), ctx.Param("media"), ctx.Param("window"))
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ok(ctx, http.StatusOK, results)
}
