// services/render.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"tryout-intake/models"
)

const subjectPrefix = "Tryout CS2 - "

var applicationTemplate = template.Must(template.New("application").Funcs(template.FuncMap{
	"yesno": func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	},
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`
<div style="font-family:Inter,Arial,sans-serif;max-width:680px;margin:auto;padding:16px;background:#0e1630;color:#fff">
  <h2 style="margin:0 0 12px">Nueva postulación Tryout CS2</h2>
  <table style="width:100%;border-collapse:separate;border-spacing:0 8px">
    <tr><td><b>Steam</b></td><td><a href="{{.SteamLink}}">{{.SteamLink}}</a></td></tr>
    <tr><td><b>Faceit</b></td><td>{{if .FaceitLink}}<a href="{{.FaceitLink}}">Perfil Faceit</a>{{else}}—{{end}}</td></tr>
    <tr><td><b>GamersClub</b></td><td>{{if .GamersclubLink}}<a href="{{.GamersclubLink}}">Perfil GC</a>{{else}}—{{end}}</td></tr>
    <tr><td><b>Discord</b></td><td>{{.DiscordLink}}</td></tr>
    <tr><td><b>Horas jugadas</b></td><td>{{.HoursPlayed}}</td></tr>
    <tr><td><b>Inicio</b></td><td>{{.StartDate}}</td></tr>
    <tr><td><b>Edad</b></td><td>{{.Age}}</td></tr>
    <tr><td><b>Servidor</b></td><td>{{.Server}}</td></tr>
    <tr><td><b>País</b></td><td>{{.RegionCountry}}</td></tr>
    <tr><td><b>Roles</b></td><td>{{join .Roles}}</td></tr>
    <tr><td><b>Mapas</b></td><td>{{join .Maps}}</td></tr>
    <tr><td><b>FPS</b></td><td>{{.FPS}}</td></tr>
    <tr><td><b>Ping</b></td><td>{{.Ping}}</td></tr>
    <tr><td><b>Micrófono</b></td><td>{{yesno .Microphone}}</td></tr>
    <tr><td><b>Experiencia</b></td><td>{{.Experience}}</td></tr>
    <tr><td><b>Horario</b></td><td>{{.Schedule}}</td></tr>
    <tr><td><b>Compromiso</b></td><td>{{yesno (eq .Commitment "si")}}</td></tr>
    <tr><td><b>Motivo</b></td><td>{{.CommitmentReason}}</td></tr>
  </table>
</div>`))

// RenderApplicationHTML renders the notification document for in.
// Every user-supplied value is HTML-escaped.
func RenderApplicationHTML(in *models.ApplicationInput) (string, error) {
	var buf bytes.Buffer
	if err := applicationTemplate.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("render application: %w", err)
	}
	return buf.String(), nil
}

// Subject builds the notification subject line for a player name.
func Subject(playerName string) string {
	return subjectPrefix + playerName
}
