package api

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var registerOnce sync.Once

// validateLocale accepts any well-formed BCP 47 tag such as "en" or "zh-CN"
func validateLocale(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	return err == nil
}

func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("locale", validateLocale); err != nil {
				slog.Warn("Failed to register locale validator", "error", err)
			}
		}
	})
}
