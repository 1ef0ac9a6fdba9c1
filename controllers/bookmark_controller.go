package controllers

import (
	"net/http"
	"strconv"

	"netflix-clone-backend/models"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type BookmarkController struct {
	bookmarkService *services.BookmarkService
	logger          hclog.Logger
}

func NewBookmarkController(bookmarkService *services.BookmarkService, logger hclog.Logger) *BookmarkController {
	return &BookmarkController{
		bookmarkService: bookmarkService,
		logger:          logger.Named("bookmark"),
	}
}

func (ctl *BookmarkController) Add(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}

	var req models.AddBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, bindMessage(err))
		return
	}

	bookmark, err := ctl.bookmarkService.Add(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ok(ctx, http.StatusCreated, bookmark)
}

// Remove deletes by content id; ?type= narrows it to one content type.
func (ctl *BookmarkController) Remove(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}

	contentID, err := strconv.ParseInt(ctx.Param("contentId"), 10, 64)
	if err != nil {
		respondError(ctx, ctl.logger, services.ErrInvalidID)
		return
	}

	contentType := models.ContentType(ctx.Query("type"))
	if err := ctl.bookmarkService.Remove(ctx.Request.Context(), user.ID, contentID, contentType); err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Bookmark removed"})
}

func (ctl *BookmarkController) List(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}
	bookmarks, err := ctl.bookmarkService.List(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	ok(ctx, http.StatusOK, bookmarks)
}
