package models

import (
	"strconv"
	"strings"
)

// Step is one page of the application form.
type Step int

const (
	StepProfile Step = iota
	StepSetup
	StepExperience
	StepCommitment
)

// FirstStep and LastStep bound the navigation range.
const (
	FirstStep = StepProfile
	LastStep  = StepCommitment
)

var stepNames = [...]string{"Perfil", "Setup", "Experiencia", "Compromiso"}

// FieldsByStep partitions the form fields into the four steps.
var FieldsByStep = [...][]string{
	StepProfile:    {FieldSteamLink, FieldFaceitLink, FieldGamersclubLink, FieldDiscordLink, FieldHoursPlayed, FieldStartDate, FieldAge},
	StepSetup:      {FieldServer, FieldRegionCountry, FieldFPS, FieldPing, FieldRoles, FieldMaps},
	StepExperience: {FieldMicrophone, FieldExperience},
	StepCommitment: {FieldSchedule, FieldCommitment, FieldCommitmentReason},
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepProfile, StepSetup, StepExperience, StepCommitment}
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Name is the Spanish label shown in the progress bar.
func (s Step) Name() string {
	if !s.Valid() {
		return ""
	}
	return stepNames[s]
}

// Fields returns the fields gated by this step.
func (s Step) Fields() []string {
	if !s.Valid() {
		return nil
	}
	return FieldsByStep[s]
}

// StepOf returns the step that owns field.
func StepOf(field string) (Step, bool) {
	for _, s := range Steps() {
		for _, f := range FieldsByStep[s] {
			if f == field {
				return s, true
			}
		}
	}
	return 0, false
}

// ParseStep accepts either the step index ("0".."3") or its name, case-insensitive.
func ParseStep(raw string) (Step, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		s := Step(n)
		return s, s.Valid()
	}
	for i, name := range stepNames {
		if strings.EqualFold(name, raw) {
			return Step(i), true
		}
	}
	return 0, false
}
