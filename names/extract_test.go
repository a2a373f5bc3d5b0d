package names

import (
	"testing"

	"tryout-intake/models"
)

func TestExtractName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   models.ApplicationInput
		want string
	}{
		{
			name: "faceit players path",
			in:   models.ApplicationInput{FaceitLink: "https://www.faceit.com/en/players/shroud123"},
			want: "shroud123",
		},
		{
			name: "faceit wins over steam",
			in: models.ApplicationInput{
				FaceitLink: "https://www.faceit.com/en/players/shroud123/stats/cs2",
				SteamLink:  "https://steamcommunity.com/id/n0thing",
			},
			want: "shroud123",
		},
		{
			name: "faceitstats player path with query",
			in:   models.ApplicationInput{FaceitLink: "https://faceitstats.com/player/s1mple?lang=es"},
			want: "s1mple",
		},
		{
			name: "faceit nickname is decoded",
			in:   models.ApplicationInput{FaceitLink: "https://www.faceit.com/es/players/El%20Pibe#top"},
			want: "El Pibe",
		},
		{
			name: "faceit without player falls through to steam",
			in: models.ApplicationInput{
				FaceitLink: "https://www.faceit.com/es/home",
				SteamLink:  "https://steamcommunity.com/id/n0thing/",
			},
			want: "n0thing",
		},
		{
			name: "steam vanity",
			in:   models.ApplicationInput{SteamLink: "https://steamcommunity.com/id/n0thing"},
			want: "n0thing",
		},
		{
			name: "steam numeric profile",
			in:   models.ApplicationInput{SteamLink: "https://steamcommunity.com/profiles/76561198000000000"},
			want: "steam:76561198000000000",
		},
		{
			name: "discord last segment",
			in:   models.ApplicationInput{DiscordLink: "https://discord.gg/abcDEF/"},
			want: "abcDEF",
		},
		{
			name: "discord plain username",
			in:   models.ApplicationInput{DiscordLink: "fallen"},
			want: "fallen",
		},
		{
			name: "gamersclub id",
			in:   models.ApplicationInput{GamersclubLink: "https://gamersclub.com.br/player/998877"},
			want: "gc:998877",
		},
		{
			name: "no links",
			in:   models.ApplicationInput{},
			want: Placeholder,
		},
		{
			name: "malformed escape",
			in: models.ApplicationInput{
				FaceitLink: "https://www.faceit.com/en/players/%zz",
				SteamLink:  "https://steamcommunity.com/id/n0thing",
			},
			want: Placeholder,
		},
		{
			name: "only slashes",
			in:   models.ApplicationInput{DiscordLink: "///"},
			want: Placeholder,
		},
	}

	for _, tt := range tests {
		in := tt.in
		if got := ExtractName(&in); got != tt.want {
			t.Errorf("%s: ExtractName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExtractNameNilInput(t *testing.T) {
	t.Parallel()

	if got := ExtractName(nil); got != Placeholder {
		t.Fatalf("ExtractName(nil) = %q, want %q", got, Placeholder)
	}
}
