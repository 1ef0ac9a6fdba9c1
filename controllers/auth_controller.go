package controllers

import (
	"net/http"

	"netflix-clone-backend/models"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

type AuthController struct {
	authService  *services.AuthService
	cookieName   string
	cookieSecure bool
	logger       hclog.Logger
}

func NewAuthController(authService *services.AuthService, cookieName string, cookieSecure bool, logger hclog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       logger.Named("auth"),
	}
}

func (ctl *AuthController) Signup(ctx *gin.Context) {
	var req models.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, bindMessage(err))
		return
	}

	user, token, err := ctl.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}

	ctl.setSessionCookie(ctx, token)
	okUser(ctx, http.StatusCreated, user)
}

func (ctl *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, bindMessage(err))
		return
	}

	user, token, err := ctl.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}

	ctl.setSessionCookie(ctx, token)
	okUser(ctx, http.StatusOK, user)
}

// Logout clears the session cookie whether or not one was sent.
func (ctl *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(ctl.cookieName, "", -1, "/", "", ctl.cookieSecure, true)
	ctx.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Logged out successfully"})
}

func (ctl *AuthController) AuthCheck(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}
	public := user.Public()
	okUser(ctx, http.StatusOK, &public)
}

func (ctl *AuthController) Update(ctx *gin.Context) {
	user, found := currentUser(ctx)
	if !found {
		return
	}

	var req models.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, bindMessage(err))
		return
	}

	updated, err := ctl.authService.UpdateProfile(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(ctx, ctl.logger, err)
		return
	}
	okUser(ctx, http.StatusOK, updated)
}

func (ctl *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(ctl.cookieName, token, int(ctl.authService.SessionTTL().Seconds()), "/", "", ctl.cookieSecure, true)
}
