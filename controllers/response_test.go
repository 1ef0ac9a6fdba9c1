package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"netflix-clone-backend/data_access"
	"netflix-clone-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", &services.ValidationError{Message: "Invalid email"}, http.StatusBadRequest, `{"success":false,"message":"Invalid email"}`},
		{"wrapped sentinel", fmt.Errorf("insert: %w", data_access.ErrEmailTaken), http.StatusBadRequest, `{"success":false,"message":"Email already exists"}`},
		{"unsupported", services.ErrUnsupportedOperation, http.StatusBadRequest, `{"success":false,"message":"Operation not supported for this content type"}`},
		{"no results", services.ErrNoResults, http.StatusNotFound, ""},
		{"upstream 404", &data_access.UpstreamError{StatusCode: 404, Path: "/movie/1"}, http.StatusNotFound, ""},
		{"upstream 500", &data_access.UpstreamError{StatusCode: 500, Path: "/movie/1"}, http.StatusInternalServerError, `{"success":false,"message":"Internal server error"}`},
		{"conflict", data_access.ErrBookmarkExists, http.StatusConflict, `{"success":false,"message":"Content already bookmarked"}`},
		{"unknown account", services.ErrUnknownAccount, http.StatusNotFound, `{"success":false,"message":"Invalid credentials"}`},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, `{"success":false,"message":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, hclog.NewNullLogger(), tt.err)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.status, rec.Code)
			if tt.body == "" {
				assert.Zero(t, rec.Body.Len())
			} else {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestBindMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assert.NoError(t, RegisterValidators())

	type probe struct {
		Email    string `binding:"required,email"`
		Password string `binding:"required,min=6"`
		Type     string `binding:"omitempty,contenttype"`
	}

	tests := []struct {
		name  string
		input probe
		want  string
	}{
		{"missing", probe{}, "All fields are required"},
		{"email", probe{Email: "nope", Password: "secret123"}, "Invalid email"},
		{"short password", probe{Email: "a@b.com", Password: "123"}, "Password must be at least 6 characters"},
		{"content type", probe{Email: "a@b.com", Password: "secret123", Type: "anime"}, "Invalid type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.input)
			assert.Equal(t, tt.want, bindMessage(err))
		})
	}

	assert.Equal(t, "Invalid request format", bindMessage(errors.New("unexpected EOF")))
}
