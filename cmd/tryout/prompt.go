package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tryout-intake/models"
	"tryout-intake/validation"
	"tryout-intake/wizard"
)

var labels = map[string]string{
	models.FieldSteamLink:        "Link de Steam",
	models.FieldFaceitLink:       "Link de FACEIT",
	models.FieldGamersclubLink:   "Link de GamersClub",
	models.FieldDiscordLink:      "Discord",
	models.FieldHoursPlayed:      "Horas jugadas",
	models.FieldStartDate:        "Año en que empezaste",
	models.FieldAge:              "Edad",
	models.FieldServer:           "Servidor (NA/SA)",
	models.FieldRegionCountry:    "País",
	models.FieldFPS:              "FPS promedio",
	models.FieldPing:             "Ping promedio",
	models.FieldRoles:            "Roles (máx. 3, separados por coma)",
	models.FieldMaps:             "Mapas (separados por coma)",
	models.FieldMicrophone:       "¿Tenés micrófono? (si/no)",
	models.FieldExperience:       "Experiencia competitiva",
	models.FieldSchedule:         "Horarios disponibles",
	models.FieldCommitment:       "¿Podés comprometerte? (si/no)",
	models.FieldCommitmentReason: "¿Por qué querés entrar?",
}

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// ask prints label and returns the trimmed answer. io.EOF ends the session.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

// run walks the form until it is submitted or the input ends.
func run(ctx context.Context, in io.Reader, out io.Writer, sub wizard.Submitter) error {
	p := &prompter{sc: bufio.NewScanner(in), out: out}
	c := wizard.New(nil)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		step := c.Step()
		fmt.Fprintf(out, "\n== %s (%d/%d, %.0f%%) ==\n", step.Name(), step+1, len(models.Steps()), c.Progress())
		for _, field := range step.Fields() {
			if err := promptField(p, c, field); err != nil {
				return err
			}
		}

		def := "siguiente"
		if c.IsLast() {
			def = "enviar"
		}
		action, err := p.ask(fmt.Sprintf("Acción [%s/anterior]", def))
		if err != nil {
			return err
		}
		if action == "" {
			action = def
		}

		switch strings.ToLower(action) {
		case "anterior", "a":
			c.GoPrev()
		case "enviar", "e":
			if !c.IsLast() {
				fmt.Fprintln(out, "Completá todos los pasos antes de enviar.")
				continue
			}
			note, err := c.Submit(ctx, sub)
			if err != nil {
				if errs := c.Errors(); len(errs) > 0 {
					printErrors(out, errs)
					continue
				}
				fmt.Fprintf(out, "❌ %v\n", err)
				continue
			}
			fmt.Fprintln(out, "✅ ¡Aplicación enviada! Te contactaremos por Discord.")
			if note != "" {
				fmt.Fprintf(out, "Nota: %s\n", note)
			}
			return nil
		default:
			if !c.GoNext() {
				printErrors(out, c.Errors())
			}
		}
	}
}

// promptField asks for one field. An empty answer keeps the current value.
func promptField(p *prompter, c *wizard.Controller, field string) error {
	label := labels[field]
	switch field {
	case models.FieldRegionCountry:
		server, _ := c.Get(models.FieldServer).(string)
		codes := make([]string, 0, len(models.CountriesByServer[server]))
		for _, country := range models.CountriesByServer[server] {
			codes = append(codes, country.Code)
		}
		label = fmt.Sprintf("%s (%s)", label, strings.Join(codes, ", "))
	case models.FieldRoles:
		label = fmt.Sprintf("%s [%s]", label, strings.Join(models.Roles, ", "))
	case models.FieldMaps:
		label = fmt.Sprintf("%s [%s]", label, strings.Join(models.Maps, ", "))
	}
	if current := display(c.Get(field)); current != "" {
		label = fmt.Sprintf("%s {%s}", label, current)
	}

	answer, err := p.ask(label)
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}

	switch field {
	case models.FieldServer:
		c.Set(field, strings.ToUpper(answer))
	case models.FieldRegionCountry:
		c.Set(field, strings.ToUpper(answer))
	case models.FieldRoles:
		c.Set(field, splitOptions(answer, models.Roles))
	case models.FieldMaps:
		c.Set(field, splitOptions(answer, models.Maps))
	case models.FieldMicrophone:
		c.Set(field, validation.ToBool(answer))
	default:
		c.Set(field, answer)
	}
	return nil
}

// splitOptions parses a comma list, matching known options case-insensitively.
func splitOptions(answer string, options []string) []string {
	out := []string{}
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, opt := range options {
			if strings.EqualFold(opt, part) {
				part = opt
				break
			}
		}
		out = append(out, part)
	}
	return out
}

func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(x, ", ")
	case bool:
		if x {
			return "si"
		}
		return "no"
	default:
		return fmt.Sprint(x)
	}
}

func printErrors(out io.Writer, errs validation.FieldErrors) {
	fmt.Fprintln(out, "Revisá estos campos:")
	for _, f := range errs.Fields() {
		name := labels[f]
		if name == "" {
			name = f
		}
		fmt.Fprintf(out, "  - %s: %s\n", name, errs.First(f))
	}
}
