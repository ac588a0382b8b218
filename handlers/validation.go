package handlers

import (
	"fmt"

	"foodapp-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain validation tags to gin's binding engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return models.Country(fl.Field().String()).Valid()
	})
}
