// Package names derives a display name for an applicant from their profile links.
// The result is cosmetic and only ends up in the notification subject.
package names

import (
	"net/url"
	"strings"

	"tryout-intake/models"
)

// Placeholder is returned when no link yields a name.
const Placeholder = "Jugador"

// ExtractName tries, in order: Faceit nickname, Steam vanity id, Steam numeric
// id ("steam:<id>"), the last Discord path segment, the GamersClub id
// ("gc:<id>"). It never fails; any decoding problem yields Placeholder.
func ExtractName(in *models.ApplicationInput) (name string) {
	defer func() {
		if recover() != nil {
			name = Placeholder
		}
	}()

	if in == nil {
		return Placeholder
	}

	name, err := extract(in)
	if err != nil || name == "" {
		return Placeholder
	}
	return name
}

func extract(in *models.ApplicationInput) (string, error) {
	if in.FaceitLink != "" {
		for _, marker := range []string{"/players/", "/player/"} {
			seg, err := segmentAfter(in.FaceitLink, marker)
			if err != nil {
				return "", err
			}
			if seg != "" {
				return seg, nil
			}
		}
	}

	if in.SteamLink != "" {
		vanity, err := segmentAfter(in.SteamLink, "/id/")
		if err != nil {
			return "", err
		}
		if vanity != "" {
			return vanity, nil
		}
		id, err := segmentAfter(in.SteamLink, "/profiles/")
		if err != nil {
			return "", err
		}
		if id != "" {
			return "steam:" + id, nil
		}
	}

	if in.DiscordLink != "" {
		if seg := lastSegment(in.DiscordLink); seg != "" {
			return seg, nil
		}
	}

	if in.GamersclubLink != "" {
		id, err := segmentAfter(in.GamersclubLink, "/player/")
		if err != nil {
			return "", err
		}
		if id != "" {
			return "gc:" + id, nil
		}
	}

	return "", nil
}

// segmentAfter returns the first non-empty segment following marker, cut at
// the next '/', '?' or '#', percent-decoded. It returns "" when marker is absent.
func segmentAfter(link, marker string) (string, error) {
	idx := strings.Index(link, marker)
	if idx == -1 {
		return "", nil
	}
	rest := link[idx+len(marker):]
	parts := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '/' || r == '?' || r == '#'
	})
	if len(parts) == 0 {
		return "", nil
	}
	return url.PathUnescape(parts[0])
}

func lastSegment(link string) string {
	parts := strings.Split(link, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
