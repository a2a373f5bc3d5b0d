package validation

import (
	"reflect"
	"testing"

	"tryout-intake/models"
)

func validRaw() map[string]any {
	return map[string]any{
		"steamLink":        "https://steamcommunity.com/id/n0thing",
		"faceitLink":       "https://www.faceit.com/en/players/shroud123",
		"gamersclubLink":   "https://gamersclub.com.br/player/123456",
		"discordLink":      "shroud#0001",
		"hoursPlayed":      "1500",
		"startDate":        "2019",
		"age":              19.0,
		"server":           "SA",
		"regionCountry":    "AR",
		"roles":            []any{"IGL", "AWPer"},
		"maps":             []any{"Mirage", "Inferno"},
		"fps":              "240",
		"ping":             35.0,
		"microphone":       true,
		"experience":       "Jugué ligas amateur durante dos años",
		"schedule":         "6pm - 12am Argentina",
		"commitment":       "si",
		"commitmentReason": "Quiero competir en serio",
	}
}

func with(raw map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	if value == nil {
		delete(out, key)
	} else {
		out[key] = value
	}
	return out
}

func TestValidateAcceptsValidInput(t *testing.T) {
	t.Parallel()

	in, errs := Validate(validRaw())
	if errs != nil {
		t.Fatalf("Validate() errors = %v", errs)
	}
	if in.HoursPlayed != 1500 || in.Age != 19 || in.FPS != 240 || in.Ping != 35 {
		t.Errorf("numeric coercion wrong: %+v", in)
	}
	if !in.Microphone {
		t.Error("Microphone = false, want true")
	}
	if !reflect.DeepEqual(in.Roles, []string{"IGL", "AWPer"}) {
		t.Errorf("Roles = %v", in.Roles)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	first, errs := Validate(raw)
	if errs != nil {
		t.Fatalf("first Validate() errors = %v", errs)
	}
	second, errs := Validate(raw)
	if errs != nil {
		t.Fatalf("second Validate() errors = %v", errs)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(raw, validRaw()) {
		t.Error("Validate mutated its input")
	}
}

func TestRegionCountryMustMatchServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		server  string
		country string
		ok      bool
	}{
		{"NA", "US", true},
		{"NA", "CA", true},
		{"NA", "MX", true},
		{"NA", "AR", false},
		{"NA", "BR", false},
		{"SA", "US", false},
		{"SA", "MX", false},
		{"SA", "ES", false},
	}
	for _, code := range []string{"AR", "BR", "CL", "CO", "PE", "UY", "PY", "EC", "BO", "VE"} {
		tests = append(tests, struct {
			server  string
			country string
			ok      bool
		}{"SA", code, true})
	}

	for _, tt := range tests {
		raw := with(with(validRaw(), "server", tt.server), "regionCountry", tt.country)
		_, errs := Validate(raw)
		if tt.ok {
			if errs != nil {
				t.Errorf("%s/%s: unexpected errors %v", tt.server, tt.country, errs)
			}
			continue
		}
		if len(errs) != 1 || !errs.Has(models.FieldRegionCountry) {
			t.Errorf("%s/%s: errors = %v, want only regionCountry", tt.server, tt.country, errs)
			continue
		}
		if got := errs.First(models.FieldRegionCountry); got != "El país seleccionado no corresponde con la región" {
			t.Errorf("%s/%s: message = %q", tt.server, tt.country, got)
		}
	}
}

func TestRegionRefinementWaitsForBaseFields(t *testing.T) {
	t.Parallel()

	raw := with(with(validRaw(), "regionCountry", "US"), "age", "9")
	_, errs := Validate(raw)
	if !errs.Has(models.FieldAge) {
		t.Fatalf("errors = %v, want age", errs)
	}
	if errs.Has(models.FieldRegionCountry) {
		t.Errorf("region refinement ran although age is invalid: %v", errs)
	}
}

func TestRolesCardinality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		roles []any
		ok    bool
	}{
		{"empty", []any{}, false},
		{"one", []any{"Entry"}, true},
		{"three", []any{"Entry", "Support", "Lurker"}, true},
		{"four", []any{"Entry", "Support", "Lurker", "IGL"}, false},
		{"unknown role", []any{"Sniper"}, false},
		{"duplicate", []any{"IGL", "IGL"}, false},
	}

	for _, tt := range tests {
		_, errs := Validate(with(validRaw(), "roles", tt.roles))
		if tt.ok && errs != nil {
			t.Errorf("%s: unexpected errors %v", tt.name, errs)
		}
		if !tt.ok && !errs.Has(models.FieldRoles) {
			t.Errorf("%s: errors = %v, want roles", tt.name, errs)
		}
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"steamLink":  "https://example.com/id/x",
		"faceitLink": "not a url",
		"age":        "12",
		"fps":        "abc",
		"ping":       12.5,
		"maps":       []any{},
		"company":    "",
	}
	_, errs := Validate(raw)

	want := map[string]string{
		"steamLink":        "Debe ser un perfil de Steam",
		"faceitLink":       "Debe ser un enlace válido",
		"gamersclubLink":   "Campo obligatorio",
		"discordLink":      "Campo obligatorio",
		"hoursPlayed":      "Debe ser un número",
		"startDate":        "Campo obligatorio",
		"age":              "Debes tener al menos 13 años",
		"server":           "Campo obligatorio",
		"regionCountry":    "Campo obligatorio",
		"roles":            "Campo obligatorio",
		"maps":             "Selecciona al menos un mapa",
		"fps":              "Debe ser un número",
		"ping":             "Debe ser un número entero",
		"experience":       "Campo obligatorio",
		"schedule":         "Campo obligatorio",
		"commitment":       "Campo obligatorio",
		"commitmentReason": "Campo obligatorio",
	}
	for field, msg := range want {
		if got := errs.First(field); got != msg {
			t.Errorf("%s: first error = %q, want %q", field, got, msg)
		}
	}
	if errs.Has(models.FieldMicrophone) {
		t.Errorf("microphone should never fail: %v", errs[models.FieldMicrophone])
	}
	if len(errs) != len(want) {
		t.Errorf("got %d failing fields, want %d: %v", len(errs), len(want), errs.Fields())
	}
}

func TestFieldBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		value any
		ok    bool
	}{
		{"hoursPlayed", "0", true},
		{"hoursPlayed", "-1", false},
		{"hoursPlayed", 20000.0, true},
		{"hoursPlayed", 20001.0, false},
		{"age", "13", true},
		{"age", "60", true},
		{"age", "61", false},
		{"fps", "29", false},
		{"fps", "1000", true},
		{"ping", "5", true},
		{"ping", "301", false},
		{"startDate", "22", false},
		{"startDate", "2022", true},
		{"discordLink", "a", false},
		{"faceitLink", "https://faceitstats.com/player/x", true},
		{"gamersclubLink", "https://gamersclub.com/player/1", true},
		{"gamersclubLink", "https://gamers.club/player/1", false},
		{"schedule", string(make([]byte, 201)), false},
		{"commitment", "maybe", false},
		{"commitment", "no", true},
		{"server", "EU", false},
	}

	for _, tt := range tests {
		_, errs := Validate(with(validRaw(), tt.field, tt.value))
		if tt.ok && errs != nil {
			t.Errorf("%s=%v: unexpected errors %v", tt.field, tt.value, errs)
		}
		if !tt.ok && !errs.Has(tt.field) {
			t.Errorf("%s=%v: errors = %v, want %s", tt.field, tt.value, errs, tt.field)
		}
	}
}

func TestValidateFieldsReportsSubsetOnly(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"steamLink": "https://steamcommunity.com/id/n0thing",
		"age":       "10",
	}
	errs := ValidateFields(raw, models.StepProfile.Fields())

	for field := range errs {
		if s, _ := models.StepOf(field); s != models.StepProfile {
			t.Errorf("error for %s leaked outside the profile step", field)
		}
	}
	if !errs.Has(models.FieldAge) || !errs.Has(models.FieldFaceitLink) {
		t.Errorf("errors = %v, want age and faceitLink", errs)
	}
	if errs.Has(models.FieldSteamLink) {
		t.Errorf("steamLink is valid but reported: %v", errs[models.FieldSteamLink])
	}
}

func TestValidateFieldsChecksRegionOnSetupStep(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"server":        "NA",
		"regionCountry": "BR",
		"fps":           144,
		"ping":          "40",
		"roles":         []string{"Support"},
		"maps":          []string{"Nuke"},
	}
	errs := ValidateFields(raw, models.StepSetup.Fields())
	if len(errs) != 1 || !errs.Has(models.FieldRegionCountry) {
		t.Fatalf("errors = %v, want only regionCountry", errs)
	}

	raw["regionCountry"] = "MX"
	if errs := ValidateFields(raw, models.StepSetup.Fields()); len(errs) != 0 {
		t.Errorf("errors = %v, want none", errs)
	}
}
