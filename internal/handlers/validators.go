package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators installs the custom binding tags on gin's validator engine.
// Binding a struct that names an unknown tag panics, so every route registration calls this.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("calendar_date", validateCalendarDate)
		}
	})
}

// validateCalendarDate accepts YYYY-MM-DD strings. Empty values are left to "required".
func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := domain.ParseCalendarDate(value)
	return err == nil
}
