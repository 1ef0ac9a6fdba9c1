package controllers

import (
	"context"
	"net/http"

	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type ContentController struct {
	contentService *services.ContentService
	logger         hclog.Logger
}

func NewContentController(contentService *services.ContentService, logger hclog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger.Named("content"),
	}
}

// serve resolves the :type strategy, rejecting unknown types before fn runs.
func (ctl *ContentController) serve(fn func(ctx context.Context, s services.ContentStrategy, id string) (any, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		strategy, err := ctl.contentService.Strategy(ctx.Param("type"))
		if err != nil {
			respondError(ctx, ctl.logger, err)
			return
		}
		content, err := fn(ctx.Request.Context(), strategy, ctx.Param("id"))
		if err != nil {
			respondError(ctx, ctl.logger, err)
			return
		}
		ok(ctx, http.StatusOK, content)
	}
}

func (ctl *ContentController) Trending() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, _ string) (any, error) {
		return s.Trending(ctx)
	})
}

func (ctl *ContentController) Trailers() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Trailers(ctx, id)
	})
}

func (ctl *ContentController) Details() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Details(ctx, id)
	})
}

func (ctl *ContentController) Similar() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Similar(ctx, id)
	})
}

// Category shares the :id path position with the per-title routes.
func (ctl *ContentController) Category() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, category string) (any, error) {
		return s.Category(ctx, category)
	})
}

func (ctl *ContentController) Reviews() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Reviews(ctx, id)
	})
}

func (ctl *ContentController) Credits() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Cast(ctx, id)
	})
}

func (ctl *ContentController) Recommendations() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Recommendations(ctx, id)
	})
}

func (ctl *ContentController) Images() gin.HandlerFunc {
	return ctl.serve(func(ctx context.Context, s services.ContentStrategy, id string) (any, error) {
		return s.Images(ctx, id)
	})
}
