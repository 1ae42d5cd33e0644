package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"client-intake-backend/internal/models"
)

var catalogs = map[string][]models.Option{
	"presentation": models.PresentationOptions,
	"goal":         models.GoalOptions,
	"mood":         models.MoodOptions,
	"contact":      models.ContactMethodOptions,
}

var registerOnce sync.Once

// RegisterValidators adds the "catalog=<name>" tag to gin's validator. The
// field must be empty or hold the id of an entry in the named option catalog.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("catalog", validateCatalog)
	})
}

func validateCatalog(fl validator.FieldLevel) bool {
	options, ok := catalogs[fl.Param()]
	if !ok {
		return false
	}
	id := fl.Field().String()
	if id == "" {
		return true
	}
	_, found := models.LookupOption(options, id)
	return found
}
