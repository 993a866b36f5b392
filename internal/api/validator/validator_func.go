package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	// Bucket labels are short human-readable category names; reject
	// anything with control characters or separators that would break
	// chart labels.
	bucketRegex = `^[\pL\pN][\pL\pN _\-]*$`
)

const (
	RiskLabelTag = "risklabel"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	RiskLabelTag: ValidateRiskLabel,
}

func ValidateRiskLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	return regexp.MustCompile(bucketRegex).MatchString(label)
}
