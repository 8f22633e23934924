package search

import (
	"retreatly/internal/shared/geo"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom `continent` binding rule. Call once
// during startup, before routes are served.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("continent", func(fl validator.FieldLevel) bool {
		return geo.IsValidContinent(fl.Field().String())
	})
}
