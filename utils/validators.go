package utils

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("password", ValidatePasswordRule)
	Validate.RegisterValidation("habitcolor", ValidateHabitColorRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("password", ValidatePasswordRule)
		v.RegisterValidation("habitcolor", ValidateHabitColorRule)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

// ValidatePassword requires at least 6 characters, a number and a special
// character.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	hasNumber := false
	hasSpecial := false
	for _, char := range password {
		switch {
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasNumber && hasSpecial
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func ValidateHabitColorRule(fl validator.FieldLevel) bool {
	return ValidateHabitColor(fl.Field().String())
}

// ValidateHabitColor accepts an empty color (the UI picks a default) or a
// #rgb / #rrggbb token.
func ValidateHabitColor(color string) bool {
	if color == "" {
		return true
	}
	return hexColorPattern.MatchString(color)
}
