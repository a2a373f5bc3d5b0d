package validation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the single language the form is served in.
var Locale = language.Spanish

func init() {
	lang := Locale

	// generic rules
	message.SetString(lang, "validation.required", "Campo obligatorio")
	message.SetString(lang, "validation.type.string", "Debe ser texto")
	message.SetString(lang, "validation.type.number", "Debe ser un número")
	message.SetString(lang, "validation.type.int", "Debe ser un número entero")
	message.SetString(lang, "validation.type.list", "Debe ser una lista")
	message.SetString(lang, "validation.url", "Debe ser un enlace válido")
	message.SetString(lang, "validation.oneof", "Opción inválida")
	message.SetString(lang, "validation.unique", "No repitas opciones")
	message.SetString(lang, "validation.min.string", "Debe tener al menos %s caracteres")
	message.SetString(lang, "validation.max.string", "Debe tener como máximo %s caracteres")
	message.SetString(lang, "validation.min.number", "Debe ser mayor o igual a %s")
	message.SetString(lang, "validation.max.number", "Debe ser menor o igual a %s")
	message.SetString(lang, "validation.min.list", "Selecciona al menos %s")
	message.SetString(lang, "validation.max.list", "Máximo %s opciones")
	message.SetString(lang, "validation.invalid", "Valor inválido")

	// per-field copy
	message.SetString(lang, "validation.steamLink.steamlink", "Debe ser un perfil de Steam")
	message.SetString(lang, "validation.faceitLink.faceitlink", "Debe ser un perfil de Faceit")
	message.SetString(lang, "validation.gamersclubLink.gamersclublink", "Debe ser un perfil de GamersClub")
	message.SetString(lang, "validation.discordLink.min", "Debe ser un usuario o enlace válido")
	message.SetString(lang, "validation.hoursPlayed.min", "No puede ser negativo")
	message.SetString(lang, "validation.hoursPlayed.max", "¿Estás seguro? Parece demasiado")
	message.SetString(lang, "validation.startDate.min", "Ingresa una fecha o año")
	message.SetString(lang, "validation.age.min", "Debes tener al menos 13 años")
	message.SetString(lang, "validation.age.max", "Ingresa una edad válida")
	message.SetString(lang, "validation.server.required", "Selecciona un servidor")
	message.SetString(lang, "validation.server.oneof", "Selecciona un servidor")
	message.SetString(lang, "validation.regionCountry.min", "Selecciona un país")
	message.SetString(lang, "validation.regionCountry.region", "El país seleccionado no corresponde con la región")
	message.SetString(lang, "validation.roles.min", "Selecciona al menos un rol")
	message.SetString(lang, "validation.roles.max", "Máximo 3 roles")
	message.SetString(lang, "validation.maps.min", "Selecciona al menos un mapa")
	message.SetString(lang, "validation.experience.min", "Describe tu experiencia")
	message.SetString(lang, "validation.experience.max", "Demasiado largo")
	message.SetString(lang, "validation.schedule.min", "Describe tu horario")
	message.SetString(lang, "validation.schedule.max", "Demasiado largo")
	message.SetString(lang, "validation.commitment.required", "Selecciona una opción")
	message.SetString(lang, "validation.commitment.oneof", "Selecciona una opción")
	message.SetString(lang, "validation.commitmentReason.min", "Fundamenta tu respuesta")
}
