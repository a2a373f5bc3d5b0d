package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/message"

	"tryout-intake/models"
)

const regionRuleKey = "validation.regionCountry.region"

// Validator checks raw form data against the application rules.
// The same instance serves step gating and the final submission.
type Validator struct {
	rules   *validator.Validate
	printer *message.Printer
}

var std = New()

// New builds a Validator with the link rules registered.
func New() *Validator {
	rules := validator.New(validator.WithRequiredStructEnabled())
	rules.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = rules.RegisterValidation("steamlink", containsAny("steamcommunity.com"))
	_ = rules.RegisterValidation("faceitlink", containsAny("faceit.com", "faceitstats.com"))
	_ = rules.RegisterValidation("gamersclublink", containsAny("gamersclub.com.br", "gamersclub.com"))

	return &Validator{
		rules:   rules,
		printer: message.NewPrinter(Locale),
	}
}

func containsAny(needles ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, n := range needles {
			if strings.Contains(v, n) {
				return true
			}
		}
		return false
	}
}

// Validate coerces raw and checks every rule, including the region refinement.
// On success the returned FieldErrors is nil.
func Validate(raw map[string]any) (*models.ApplicationInput, FieldErrors) {
	return std.Validate(raw)
}

// ValidateFields checks only the listed fields. See Validator.ValidateFields.
func ValidateFields(raw map[string]any, fields []string) FieldErrors {
	return std.ValidateFields(raw, fields)
}

func (v *Validator) Validate(raw map[string]any) (*models.ApplicationInput, FieldErrors) {
	in, errs := v.check(raw)
	if len(errs) == 0 {
		v.refineRegion(in, errs)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

// ValidateFields returns the violations for fields only. The region
// refinement applies when regionCountry is among fields, the subset is
// otherwise clean and server itself is valid.
func (v *Validator) ValidateFields(raw map[string]any, fields []string) FieldErrors {
	in, all := v.check(raw)
	errs := all.Only(fields)
	if len(errs) == 0 && contains(fields, models.FieldRegionCountry) && !all.Has(models.FieldServer) {
		v.refineRegion(in, errs)
	}
	return errs
}

func (v *Validator) check(raw map[string]any) (*models.ApplicationInput, FieldErrors) {
	if raw == nil {
		raw = map[string]any{}
	}
	in, failed := coerce(raw)

	errs := FieldErrors{}
	for field, key := range failed {
		errs.Add(field, v.localize(key))
	}

	var verrs validator.ValidationErrors
	if errors.As(v.rules.Struct(in), &verrs) {
		for _, fe := range verrs {
			field := baseField(fe.Field())
			if _, skip := failed[field]; skip {
				continue
			}
			errs.Add(field, v.ruleMessage(field, fe))
		}
	}
	return in, errs
}

func (v *Validator) refineRegion(in *models.ApplicationInput, errs FieldErrors) {
	if !models.CountryAllowed(in.Server, in.RegionCountry) {
		errs.Add(models.FieldRegionCountry, v.localize(regionRuleKey))
	}
}

func (v *Validator) ruleMessage(field string, fe validator.FieldError) string {
	tag := fe.Tag()
	if msg, ok := v.lookup("validation." + field + "." + tag); ok {
		return msg
	}

	switch tag {
	case "min", "max":
		kind := "number"
		switch fe.Kind() {
		case reflect.String:
			kind = "string"
		case reflect.Slice:
			kind = "list"
		}
		return v.localize("validation."+tag+"."+kind, fe.Param())
	case "required", "url", "oneof", "unique":
		return v.localize("validation." + tag)
	}
	return v.localize("validation.invalid")
}

func (v *Validator) lookup(key string) (string, bool) {
	msg := v.localize(key)
	return msg, msg != key
}

func (v *Validator) localize(key string, args ...any) string {
	return v.printer.Sprintf(key, args...)
}

// baseField turns "roles[1]" into "roles".
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
