package nsgifts

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate enforces request invariants client-side so malformed input is
// rejected before a network round trip.
var validate = newValidator()

var steamProfilePattern = regexp.MustCompile(`^https?://s\.team/p/\S*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Short friend-link form used by the vendor, e.g. https://s.team/p/abcd-efgh
	_ = v.RegisterValidation("steamlink", func(fl validator.FieldLevel) bool {
		return steamProfilePattern.MatchString(fl.Field().String())
	})

	return v
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}
