package httpapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/careerpath/internal/server/models"
)

// RegisterValidators adds the domain tags "level", "category" and "status"
// and reports fields by their JSON names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, valid := range map[string]func(string) bool{
		"level":    models.ValidLevel,
		"category": models.ValidCategory,
		"status":   models.ValidStatus,
	} {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

// bindMessage turns a ShouldBindJSON failure into one line of plain text.
func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "level":
		return field + " must be one of " + strings.Join(models.Levels, ", ")
	case "category":
		return field + " must be one of " + strings.Join(models.Categories, ", ")
	case "status":
		return field + " must be one of " + strings.Join(models.Statuses, ", ")
	default:
		return field + " is invalid"
	}
}
