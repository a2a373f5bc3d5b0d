// handlers/application.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tryout-intake/models"
	"tryout-intake/services"
)

type stepOption struct {
	Index  int      `json:"index"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// SetupApplicationRoutes registers the public tryout endpoints.
func SetupApplicationRoutes(app *fiber.App, svc *services.ApplicationService) {
	api := app.Group("/api/apply")

	api.Post("/", submitApplication(svc))
	api.Post("/steps/:step", validateStep(svc))
	api.Get("/options", formOptions)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"mail_enabled": svc.Mail.Enabled() && svc.Mailer != nil,
		})
	})
}

func submitApplication(svc *services.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := decodeBody(c)
		if err != nil {
			svc.Log.Errorw("❌ [APPLY] unreadable body", "error", err)
			svc.Stats.Record(services.OutcomeFailed)
			status, resp := services.Failure(err.Error())
			return c.Status(status).JSON(resp)
		}

		status, resp := svc.Submit(c.UserContext(), raw)
		return c.Status(status).JSON(resp)
	}
}

func validateStep(svc *services.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		step, ok := models.ParseStep(c.Params("step"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(models.ApplyResponse{Error: "paso desconocido"})
		}

		raw, err := decodeBody(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ApplyResponse{Error: "JSON inválido", Details: err.Error()})
		}

		status, resp := svc.ValidateStep(raw, step)
		return c.Status(status).JSON(resp)
	}
}

func formOptions(c *fiber.Ctx) error {
	steps := make([]stepOption, 0, len(models.Steps()))
	for _, s := range models.Steps() {
		steps = append(steps, stepOption{Index: int(s), Name: s.Name(), Fields: s.Fields()})
	}
	return c.JSON(fiber.Map{
		"steps":     steps,
		"roles":     models.Roles,
		"maps":      models.Maps,
		"servers":   []string{models.ServerNA, models.ServerSA},
		"countries": models.CountriesByServer,
		"maxRoles":  3,
	})
}

// decodeBody parses the request as JSON. Anything other than an object is
// treated as an empty submission so it fails validation rather than decoding.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	var body any
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil {
		return nil, err
	}
	raw, ok := body.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return raw, nil
}
