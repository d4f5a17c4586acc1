package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pageerrors "github.com/alexisbeaulieu97/linkpage/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// hostRequiredSchemes mirrors the WHATWG "special" schemes that cannot
	// have an empty host.
	hostRequiredSchemes = map[string]struct{}{"http": {}, "https": {}, "ws": {}, "wss": {}, "ftp": {}}
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "yaml"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("absurl", func(fl validator.FieldLevel) bool {
			return IsAbsoluteURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Get returns the shared validator for packages that register their own
// struct-level rules.
func Get() *validator.Validate {
	return validatorInstance()
}

// IsAbsoluteURL reports whether raw parses as an absolute URI: a scheme is
// required, and web schemes also need a host. Web URLs must spell out the
// "//" authority, so "http:example.com" is rejected even though browsers
// repair it.
func IsAbsoluteURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed != raw {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return false
	}

	if _, ok := hostRequiredSchemes[strings.ToLower(parsed.Scheme)]; ok {
		return parsed.Host != ""
	}
	return parsed.Opaque != "" || parsed.Host != "" || parsed.Path != ""
}

// Struct validates v and converts the first failure into a ValidationError.
func Struct(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return convert(err)
	}
	return nil
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	if err := validatorInstance().Var(value, tag); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			return pageerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, ves[0].Tag()), err)
		}
		return pageerrors.NewValidationError(field, err.Error(), err)
	}
	return nil
}

// FailedTag returns the tag of the first field failure wrapped in err.
func FailedTag(err error) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return ves[0].Tag()
	}
	return ""
}

func convert(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pageerrors.NewValidationError(field, msg, err)
	}

	return pageerrors.NewValidationError("", err.Error(), err)
}

// fieldName drops the root struct name from the namespace so fields read
// as "links[1].url".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
