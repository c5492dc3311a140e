package dto

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/campusmart/internal/usecase"
)

var registerOnce sync.Once

// RegisterValidators installs custom binding tags on gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("phone", validatePhone)
	})
	return err
}

func validatePhone(fl validator.FieldLevel) bool {
	_, err := usecase.NormalizePhone(fl.Field().String())
	return err == nil
}

// FieldErrors flattens validator errors into field→tag pairs.
func FieldErrors(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
