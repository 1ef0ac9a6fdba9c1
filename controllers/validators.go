package controllers

import (
	"errors"
	"sync"

	"netflix-clone-backend/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the contenttype and searchtype binding tags to
// gin's validator. It must run before any route that binds those models.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
			return models.ContentType(fl.Field().String()).Valid()
		}); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("searchtype", func(fl validator.FieldLevel) bool {
			return models.SearchType(fl.Field().String()).Valid()
		})
	})
	return registerErr
}
