package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DatePattern matches YYYY-MM-DD date strings
var DatePattern = `^\d{4}-\d{2}-\d{2}$`

var compiledDatePattern = regexp.MustCompile(DatePattern)

// IsValidDateString reports whether a string is a YYYY-MM-DD date
func IsValidDateString(date string) bool {
	return compiledDatePattern.MatchString(date)
}

// dateFormatRule is the validator.v10 implementation of the dateformat tag
func dateFormatRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// Emptiness is the concern of the required tag
		return true
	}
	return IsValidDateString(value)
}

// RegisterRules registers custom binding rules with gin's validator engine
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dateformat", dateFormatRule)
}
