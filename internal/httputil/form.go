package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindForm binds a form encoded request body to the struct passed in.
//
// Validation failures are translated into messages that users can act
// on. All other binding errors are logged and reported as ErrInvalidBody
// since their messages leak implementation details.
func BindForm(c *gin.Context, data any) error {
	if err := c.ShouldBind(data); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errors.New(ValidationErrorsToText(validationErrors))
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ValidationErrorToText returns a human readable message for a single
// validation error.
func ValidationErrorToText(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	}

	return fmt.Sprintf("%s is not valid", field)
}

// ValidationErrorsToText joins the messages for all validation errors
// into a single string.
func ValidationErrorsToText(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, ValidationErrorToText(e))
	}

	return strings.Join(messages, ", ")
}
