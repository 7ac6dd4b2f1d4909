package styles

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rohanthewiz/serr"
)

// Variant is an enumerated presentation choice. The zero value always means
// "use the component default", so only non-empty unknown values are invalid.
type Variant interface {
	Valid() bool
	Options() string
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator. It understands the "variant" tag
// for any field whose type implements Variant.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			vr, ok := fl.Field().Interface().(Variant)
			if !ok {
				return false
			}
			return vr.Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a configuration struct and returns a descriptive error
// naming every offending field. component prefixes the message.
func Validate(component string, cfg any) error {
	err := Validator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return serr.Wrap(err, component+": invalid configuration")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return serr.New(component + ": " + strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "variant":
		if vr, ok := fe.Value().(Variant); ok {
			return fmt.Sprintf("%s %q is not one of %s", fe.Field(), fmt.Sprint(fe.Value()), vr.Options())
		}
	case "required":
		return fe.Field() + " is required"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
}
