package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if name == string(ProfileNone) {
				return true
			}
			_, ok := ParseProfile(name)
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that every enum field of t holds a value from its closed set.
func Validate(t Tree) error {
	if err := validatorInstance().Struct(t); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			ve := ves[0]
			field := settingsPath(ve)
			msg := fmt.Sprintf("value %q failed validation for tag '%s'", fmt.Sprint(ve.Value()), ve.Tag())
			return acerrors.NewValidationError(field, msg, err)
		}
		return acerrors.NewValidationError("settings", err.Error(), err)
	}
	return nil
}

// settingsPath maps a validator namespace such as Tree.Colors.Contrast onto
// the serialized dotted path colors.contrast.
func settingsPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 0 && parts[0] == "Tree" {
		parts = parts[1:]
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
