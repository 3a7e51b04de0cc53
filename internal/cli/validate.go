package cli

import (
	"fmt"
	"strings"
	"todoTracker/internal/service"

	"github.com/go-playground/validator/v10"
)

// валидация на границе: запрос проверяется до того, как попадёт в хранилище

func newValidate() *validator.Validate {
	return validator.New()
}

func (c *CLI) validateRequest(request any) error {
	err := c.validate.Struct(request)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return service.NewValidationError("request", err.Error())
	}

	messages := make([]string, 0, len(errs))
	var field string
	for _, e := range errs {
		field = strings.ToLower(e.Field())
		messages = append(messages, validationMessage(e))
	}

	return service.NewValidationError(field, strings.Join(messages, "; "))
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("поле %s обязательно", strings.ToLower(e.Field()))
	case "max":
		return fmt.Sprintf("поле %s длиннее %s символов", strings.ToLower(e.Field()), e.Param())
	default:
		return fmt.Sprintf("поле %s не прошло проверку '%s'", strings.ToLower(e.Field()), e.Tag())
	}
}
