package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodeRx = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterCustomValidators wires the custom binding tags used by the request
// DTOs into gin's validator engine. Must run before the first request is
// bound.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodeRx.MatchString(fl.Field().String())
	})
}
