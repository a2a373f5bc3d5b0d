package models

// ApplicationInput is one tryout application after coercion.
// It only lives for the duration of a single submission.
type ApplicationInput struct {
	SteamLink      string `json:"steamLink" validate:"required,url,steamlink"`
	FaceitLink     string `json:"faceitLink" validate:"required,url,faceitlink"`
	GamersclubLink string `json:"gamersclubLink" validate:"required,url,gamersclublink"`
	DiscordLink    string `json:"discordLink" validate:"min=2"`
	HoursPlayed    int    `json:"hoursPlayed" validate:"min=0,max=20000"`
	StartDate      string `json:"startDate" validate:"min=4"`
	Age            int    `json:"age" validate:"min=13,max=60"`

	Server        string   `json:"server" validate:"required,oneof=NA SA"`
	RegionCountry string   `json:"regionCountry" validate:"min=2"`
	FPS           int      `json:"fps" validate:"min=30,max=1000"`
	Ping          int      `json:"ping" validate:"min=5,max=300"`
	Roles         []string `json:"roles" validate:"min=1,max=3,unique,dive,oneof=IGL Entry AWPer Support Lurker Coach"`
	Maps          []string `json:"maps" validate:"min=1,unique,dive,oneof=Ancient Train Anubis Dust2 Inferno Mirage Nuke Overpass Vertigo Otro"`

	Microphone bool   `json:"microphone"`
	Experience string `json:"experience" validate:"min=2,max=1000"`

	Schedule         string `json:"schedule" validate:"min=2,max=200"`
	Commitment       string `json:"commitment" validate:"required,oneof=si no"`
	CommitmentReason string `json:"commitmentReason" validate:"min=2,max=1000"`

	// Company is the honeypot. Humans never see it.
	Company string `json:"company,omitempty"`
}

// Field names as they appear on the wire.
const (
	FieldSteamLink        = "steamLink"
	FieldFaceitLink       = "faceitLink"
	FieldGamersclubLink   = "gamersclubLink"
	FieldDiscordLink      = "discordLink"
	FieldHoursPlayed      = "hoursPlayed"
	FieldStartDate        = "startDate"
	FieldAge              = "age"
	FieldServer           = "server"
	FieldRegionCountry    = "regionCountry"
	FieldFPS              = "fps"
	FieldPing             = "ping"
	FieldRoles            = "roles"
	FieldMaps             = "maps"
	FieldMicrophone       = "microphone"
	FieldExperience       = "experience"
	FieldSchedule         = "schedule"
	FieldCommitment       = "commitment"
	FieldCommitmentReason = "commitmentReason"
	FieldCompany          = "company"
)

const (
	ServerNA = "NA"
	ServerSA = "SA"
)

var (
	Roles = []string{"IGL", "Entry", "AWPer", "Support", "Lurker", "Coach"}
	Maps  = []string{"Ancient", "Train", "Anubis", "Dust2", "Inferno", "Mirage", "Nuke", "Overpass", "Vertigo", "Otro"}
)

// Country is one selectable country for a server region.
type Country struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CountriesByServer lists the countries allowed for each server, in display order.
var CountriesByServer = map[string][]Country{
	ServerNA: {
		{Code: "US", Label: "Estados Unidos (US)"},
		{Code: "CA", Label: "Canadá (CA)"},
		{Code: "MX", Label: "México (MX)"},
	},
	ServerSA: {
		{Code: "AR", Label: "Argentina (AR)"},
		{Code: "BR", Label: "Brasil (BR)"},
		{Code: "CL", Label: "Chile (CL)"},
		{Code: "CO", Label: "Colombia (CO)"},
		{Code: "PE", Label: "Perú (PE)"},
		{Code: "UY", Label: "Uruguay (UY)"},
		{Code: "PY", Label: "Paraguay (PY)"},
		{Code: "EC", Label: "Ecuador (EC)"},
		{Code: "BO", Label: "Bolivia (BO)"},
		{Code: "VE", Label: "Venezuela (VE)"},
	},
}

// CountryAllowed reports whether code belongs to the server's country set.
// Unknown servers allow nothing.
func CountryAllowed(server, code string) bool {
	for _, c := range CountriesByServer[server] {
		if c.Code == code {
			return true
		}
	}
	return false
}

// ApplyResponse is the JSON body returned by the apply endpoints.
type ApplyResponse struct {
	OK      bool   `json:"ok,omitempty"`
	Note    string `json:"note,omitempty"`
	Error   any    `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}
