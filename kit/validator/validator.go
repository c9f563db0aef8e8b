package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Verify checks struct fields against their validate tags.
func Verify(v interface{}) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Request types carry gin binding tags; reuse them here.
		validate.SetTagName("binding")
	})
	return validate.Struct(v)
}
