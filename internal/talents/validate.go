package talents

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	salaryPattern = regexp.MustCompile(`^R\$\s?\d{1,3}(\.\d{3})*(,\d{2})?$`)
	phonePattern  = regexp.MustCompile(`^\+?[\d\s().-]{8,20}$`)
)

// ValidationError reports invalid fields before anything is written.
type ValidationError struct {
	// Fields maps the json field name to a human readable problem.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "academy_product", func(fl validator.FieldLevel) bool {
			return IsAcademyProduct(fl.Field().String())
		})
		mustRegister(v, "interest_area", func(fl validator.FieldLevel) bool {
			return IsInterestArea(fl.Field().String())
		})
		mustRegister(v, "seniority", func(fl validator.FieldLevel) bool {
			return IsSeniority(fl.Field().String())
		})
		mustRegister(v, "job_status", func(fl validator.FieldLevel) bool {
			_, err := ParseJobStatus(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "salary", func(fl validator.FieldLevel) bool {
			return salaryPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks f and returns a *ValidationError listing every bad field.
func (f JobFields) Validate() error {
	return check(f)
}

// Validate checks f and returns a *ValidationError listing every bad field.
func (f TalentFields) Validate() error {
	return check(f)
}

func check(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		name := fieldName(fe)
		if _, ok := out.Fields[name]; ok {
			continue
		}
		out.Fields[name] = describe(fe)
	}
	return out
}

// fieldName drops the struct prefix and collapses slice indexes, so
// "TalentFields.areas[1]" becomes "areas".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid url"
	case "min":
		return fmt.Sprintf("must have at least %s item(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s long", fe.Param())
	case "academy_product":
		return fmt.Sprintf("%q is not an academy product", fe.Value())
	case "interest_area":
		return fmt.Sprintf("%q is not an interest area", fe.Value())
	case "seniority":
		return "must be one of Junior, Pleno, Sênior"
	case "job_status":
		return "must be one of active, draft, paused"
	case "salary":
		return `must look like "R$ 1.000,00"`
	case "phone":
		return "must be a phone number"
	default:
		return "is invalid"
	}
}
