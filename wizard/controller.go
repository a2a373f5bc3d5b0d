// Package wizard drives the four-step application form. Forward navigation is
// gated on the current step's fields validating; the final submit validates
// everything before handing the values to a Submitter.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"tryout-intake/models"
	"tryout-intake/validation"
)

var (
	ErrNotLastStep = errors.New("submit is only available on the last step")
	ErrInvalid     = errors.New("the form has invalid fields")
)

// Submitter sends the completed form to the server and returns its advisory note.
type Submitter interface {
	Submit(ctx context.Context, values map[string]any) (string, error)
}

// fieldErrorer is implemented by submit errors that carry per-field messages.
type fieldErrorer interface {
	FieldErrors() validation.FieldErrors
}

// Controller holds the in-progress form for one user session.
// It is not safe for concurrent use.
type Controller struct {
	validator *validation.Validator
	step      models.Step
	values    map[string]any
	errors    validation.FieldErrors
}

func New(v *validation.Validator) *Controller {
	if v == nil {
		v = validation.New()
	}
	c := &Controller{validator: v}
	c.Reset()
	return c
}

// Reset restores the initial values and goes back to the first step.
func (c *Controller) Reset() {
	c.step = models.FirstStep
	c.errors = validation.FieldErrors{}
	c.values = map[string]any{
		models.FieldServer:     models.ServerNA,
		models.FieldRoles:      []string{},
		models.FieldMaps:       []string{},
		models.FieldMicrophone: true,
		models.FieldCommitment: "si",
	}
}

func (c *Controller) Step() models.Step { return c.step }

func (c *Controller) IsLast() bool { return c.step == models.LastStep }

// Progress is the completion percentage shown in the progress bar.
func (c *Controller) Progress() float64 {
	return float64(c.step+1) / float64(len(models.Steps())) * 100
}

// Errors returns the errors from the last navigation or submit attempt.
func (c *Controller) Errors() validation.FieldErrors {
	out := validation.FieldErrors{}
	for f, msgs := range c.errors {
		out[f] = append([]string(nil), msgs...)
	}
	return out
}

func (c *Controller) Get(field string) any { return c.values[field] }

// Values returns a shallow copy of the form values.
func (c *Controller) Values() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Set stores a field value. Switching server clears regionCountry, since the
// country list depends on the region.
func (c *Controller) Set(field string, value any) {
	if field == models.FieldServer {
		prev, _ := c.values[models.FieldServer].(string)
		if next, _ := value.(string); next != prev {
			c.values[models.FieldRegionCountry] = ""
		}
	}
	c.values[field] = value
}

// Toggle adds option to a multi-select field, or removes it when present.
func (c *Controller) Toggle(field, option string) {
	current, _ := c.values[field].([]string)
	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == option {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, option)
	}
	c.values[field] = next
}

// GoNext validates the current step and advances when it passes.
func (c *Controller) GoNext() bool {
	errs := c.validator.ValidateFields(c.values, c.step.Fields())
	c.errors = errs
	if len(errs) > 0 {
		return false
	}
	if c.step < models.LastStep {
		c.step++
	}
	return true
}

// GoPrev moves back one step without validating.
func (c *Controller) GoPrev() {
	if c.step > models.FirstStep {
		c.step--
	}
}

// Submit validates the whole form and dispatches it. On success the form is
// reset and the server's note returned. Field errors, local or from the
// server, move the controller to the first step that has one.
func (c *Controller) Submit(ctx context.Context, s Submitter) (string, error) {
	if !c.IsLast() {
		return "", ErrNotLastStep
	}

	if _, errs := c.validator.Validate(c.values); errs != nil {
		c.fail(errs)
		return "", fmt.Errorf("%w: %v", ErrInvalid, errs.Fields())
	}

	note, err := s.Submit(ctx, c.Values())
	if err != nil {
		var fe fieldErrorer
		if errors.As(err, &fe) && len(fe.FieldErrors()) > 0 {
			c.fail(fe.FieldErrors())
		}
		return "", err
	}

	c.Reset()
	return note, nil
}

func (c *Controller) fail(errs validation.FieldErrors) {
	c.errors = errs
	for _, s := range models.Steps() {
		for _, f := range s.Fields() {
			if errs.Has(f) {
				c.step = s
				return
			}
		}
	}
}
