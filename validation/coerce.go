package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"tryout-intake/models"
)

// coerceError carries the catalog key of the message to report.
type coerceError struct {
	key string
}

func (e *coerceError) Error() string { return e.key }

var (
	errRequired   = &coerceError{key: "validation.required"}
	errNotString  = &coerceError{key: "validation.type.string"}
	errNotNumber  = &coerceError{key: "validation.type.number"}
	errNotInteger = &coerceError{key: "validation.type.int"}
	errNotList    = &coerceError{key: "validation.type.list"}
	errBadItem    = &coerceError{key: "validation.invalid"}
)

// coerceFunc converts one raw JSON value into its typed slot on the input.
// value is nil when the field is absent.
type coerceFunc func(dst *models.ApplicationInput, value any) error

// coercers is the explicit field -> coercion mapping applied before rule checks.
var coercers = map[string]coerceFunc{
	models.FieldSteamLink:        stringInto(func(a *models.ApplicationInput) *string { return &a.SteamLink }),
	models.FieldFaceitLink:       stringInto(func(a *models.ApplicationInput) *string { return &a.FaceitLink }),
	models.FieldGamersclubLink:   stringInto(func(a *models.ApplicationInput) *string { return &a.GamersclubLink }),
	models.FieldDiscordLink:      stringInto(func(a *models.ApplicationInput) *string { return &a.DiscordLink }),
	models.FieldHoursPlayed:      intInto(func(a *models.ApplicationInput) *int { return &a.HoursPlayed }),
	models.FieldStartDate:        stringInto(func(a *models.ApplicationInput) *string { return &a.StartDate }),
	models.FieldAge:              intInto(func(a *models.ApplicationInput) *int { return &a.Age }),
	models.FieldServer:           stringInto(func(a *models.ApplicationInput) *string { return &a.Server }),
	models.FieldRegionCountry:    stringInto(func(a *models.ApplicationInput) *string { return &a.RegionCountry }),
	models.FieldFPS:              intInto(func(a *models.ApplicationInput) *int { return &a.FPS }),
	models.FieldPing:             intInto(func(a *models.ApplicationInput) *int { return &a.Ping }),
	models.FieldRoles:            listInto(func(a *models.ApplicationInput) *[]string { return &a.Roles }),
	models.FieldMaps:             listInto(func(a *models.ApplicationInput) *[]string { return &a.Maps }),
	models.FieldMicrophone:       boolInto(func(a *models.ApplicationInput) *bool { return &a.Microphone }),
	models.FieldExperience:       stringInto(func(a *models.ApplicationInput) *string { return &a.Experience }),
	models.FieldSchedule:         stringInto(func(a *models.ApplicationInput) *string { return &a.Schedule }),
	models.FieldCommitment:       stringInto(func(a *models.ApplicationInput) *string { return &a.Commitment }),
	models.FieldCommitmentReason: stringInto(func(a *models.ApplicationInput) *string { return &a.CommitmentReason }),
	models.FieldCompany:          optionalStringInto(func(a *models.ApplicationInput) *string { return &a.Company }),
}

// coerce fills an ApplicationInput from raw, reporting fields whose value
// could not be converted. raw is never modified.
func coerce(raw map[string]any) (*models.ApplicationInput, map[string]string) {
	in := &models.ApplicationInput{}
	failed := map[string]string{}
	for field, fn := range coercers {
		if err := fn(in, raw[field]); err != nil {
			var ce *coerceError
			if errors.As(err, &ce) {
				failed[field] = ce.key
			} else {
				failed[field] = errBadItem.key
			}
		}
	}
	return in, failed
}

func stringInto(slot func(*models.ApplicationInput) *string) coerceFunc {
	return func(dst *models.ApplicationInput, value any) error {
		switch v := value.(type) {
		case nil:
			return errRequired
		case string:
			*slot(dst) = v
			return nil
		default:
			return errNotString
		}
	}
}

func optionalStringInto(slot func(*models.ApplicationInput) *string) coerceFunc {
	return func(dst *models.ApplicationInput, value any) error {
		switch v := value.(type) {
		case nil:
			return nil
		case string:
			*slot(dst) = v
			return nil
		default:
			return errNotString
		}
	}
}

func intInto(slot func(*models.ApplicationInput) *int) coerceFunc {
	return func(dst *models.ApplicationInput, value any) error {
		n, err := ToInt(value)
		if err != nil {
			return err
		}
		*slot(dst) = n
		return nil
	}
}

func boolInto(slot func(*models.ApplicationInput) *bool) coerceFunc {
	return func(dst *models.ApplicationInput, value any) error {
		*slot(dst) = ToBool(value)
		return nil
	}
}

func listInto(slot func(*models.ApplicationInput) *[]string) coerceFunc {
	return func(dst *models.ApplicationInput, value any) error {
		switch v := value.(type) {
		case nil:
			return errRequired
		case []string:
			*slot(dst) = append([]string(nil), v...)
			return nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return errBadItem
				}
				out = append(out, s)
			}
			*slot(dst) = out
			return nil
		default:
			return errNotList
		}
	}
}

// ToInt converts a JSON number or numeric string into an int.
// Fractional values are rejected rather than truncated.
func ToInt(value any) (int, error) {
	var f float64
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, errNotNumber
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	default:
		return 0, errNotNumber
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	if f != math.Trunc(f) {
		return 0, errNotInteger
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		// well outside every range rule; clamp so the range check reports it
		if f > 0 {
			return math.MaxInt32, nil
		}
		return math.MinInt32, nil
	}
	return int(f), nil
}

// ToBool converts form values into a boolean. Unrecognised non-empty strings count as true.
func ToBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "", "false", "0", "no", "off":
			return false
		case "si", "sí":
			return true
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return true
	default:
		return true
	}
}
