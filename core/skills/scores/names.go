package scores

import "strings"

// nameBlacklist holds generic nouns the recognizer tends to substitute
// for a real name; hearing one of them means the name was misrecognized.
var nameBlacklist = map[string]bool{
	"player":  true,
	"players": true,
}

// normalizePlayerName trims a recognized player name down to its first
// token and rejects blacklisted generic nouns. It returns ok=false when
// no usable name remains.
func normalizePlayerName(recognized string) (string, bool) {
	trimmed := strings.TrimSpace(recognized)
	if trimmed == "" {
		return "", false
	}

	// Names are first names only; drop anything after the first word.
	name := trimmed
	if split := strings.IndexByte(trimmed, ' '); split >= 0 {
		name = trimmed[:split]
	}

	if nameBlacklist[strings.ToLower(name)] {
		return "", false
	}
	return name, true
}
