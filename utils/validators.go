package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("password", ValidatePasswordRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("password", ValidatePasswordRule)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

// ValidatePassword enforces the registration password policy:
// at least 6 characters.
func ValidatePassword(password string) bool {
	return len(password) >= 6
}

// ValidateEmail checks an address against the validator's standard
// email grammar.
func ValidateEmail(email string) bool {
	if Validate == nil {
		InitValidator()
	}
	return Validate.Var(email, "required,email") == nil
}
