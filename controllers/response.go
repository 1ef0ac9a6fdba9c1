package controllers

import (
	"errors"
	"net/http"

	"netflix-clone-backend/data_access"
	"netflix-clone-backend/middleware"
	"netflix-clone-backend/models"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"
)

const internalErrorMessage = "Internal server error"

func ok(c *gin.Context, status int, content any) {
	c.JSON(status, models.Envelope{Success: true, Content: content})
}

func okUser(c *gin.Context, status int, user *models.User) {
	c.JSON(status, models.Envelope{Success: true, User: user})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.Envelope{Success: false, Message: message})
}

// notFound answers 404 with an empty body, distinct from an upstream failure.
func notFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

var badRequestMessages = map[error]string{
	services.ErrInvalidContentType:   "Invalid type",
	services.ErrInvalidCategory:      "Invalid category",
	services.ErrInvalidSearchType:    "Invalid search type",
	services.ErrInvalidMediaType:     "Invalid media type",
	services.ErrInvalidTimeWindow:    "Invalid time window",
	services.ErrInvalidID:            "Invalid id",
	services.ErrUnsupportedOperation: "Operation not supported for this content type",
	services.ErrInvalidCredentials:   "Invalid credentials",
	data_access.ErrEmailTaken:        "Email already exists",
	data_access.ErrUsernameTaken:     "Username already exists",
}

// respondError maps service and store errors onto a status and envelope.
// Anything unrecognised is logged and reported as a generic 500.
func respondError(c *gin.Context, logger hclog.Logger, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		fail(c, http.StatusBadRequest, ve.Message)
		return
	}
	for target, message := range badRequestMessages {
		if errors.Is(err, target) {
			fail(c, http.StatusBadRequest, message)
			return
		}
	}

	var upstream *data_access.UpstreamError
	switch {
	case errors.Is(err, services.ErrNoResults):
		notFound(c)
	case errors.As(err, &upstream) && upstream.NotFound():
		notFound(c)
	case errors.Is(err, data_access.ErrBookmarkExists):
		fail(c, http.StatusConflict, "Content already bookmarked")
	case errors.Is(err, services.ErrUnknownAccount):
		fail(c, http.StatusNotFound, "Invalid credentials")
	case errors.Is(err, data_access.ErrUserNotFound):
		fail(c, http.StatusNotFound, "User not found")
	default:
		logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path,
			"request_id", middleware.RequestIDFrom(c), "error", err)
		fail(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// bindMessage turns a ShouldBindJSON failure into a client-facing message.
func bindMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "Invalid request format"
	}
	// Only show first error
	e := ve[0]
	switch e.Tag() {
	case "required":
		return "All fields are required"
	case "email":
		return "Invalid email"
	case "min":
		if e.Field() == "Password" {
			return "Password must be at least 6 characters"
		}
		return e.Field() + " is too short"
	case "contenttype":
		return "Invalid type"
	case "searchtype":
		return "Invalid search type"
	}
	return "Invalid input data"
}

// currentUser fetches the session user or answers 401.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, found := middleware.CurrentUser(c)
	if !found {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}
