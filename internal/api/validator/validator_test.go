package validator_test

import (
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskops/riskboard/internal/api/validator"
)

type filterPayload struct {
	Bucket string `validate:"required,risklabel"`
}

func TestValidate_RiskLabel(t *testing.T) {
	x := validator.NewXValidator(govalidator.New(), nil)

	t.Run("accepts ordinary bucket labels", func(t *testing.T) {
		for _, label := range []string{"High", "Low", "Very High", "tier-2", "Tier_3"} {
			errs := x.Validate(filterPayload{Bucket: label})
			assert.Empty(t, errs, "label %q should validate", label)
		}
	})

	t.Run("rejects empty and malformed labels", func(t *testing.T) {
		for _, label := range []string{"", " leading", "bad\nlabel", "semi;colon"} {
			errs := x.Validate(filterPayload{Bucket: label})
			require.NotEmpty(t, errs, "label %q should fail", label)
			assert.True(t, errs[0].Error)
			assert.Equal(t, "Bucket", errs[0].FailedField)
		}
	})
}
