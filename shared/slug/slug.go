// Package slug derives URL slugs from display names.
package slug

import (
	"strings"
	"unicode"

	"github.com/fiam/gounidecode/unidecode"
)

// Make transliterates name to ASCII and joins its alphanumeric runs with single hyphens.
func Make(name string) string {
	var builder strings.Builder

	pendingHyphen := false

	for _, r := range strings.ToLower(unidecode.Unidecode(name)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}

			builder.WriteRune(r)

			pendingHyphen = false

			continue
		}

		pendingHyphen = true
	}

	return builder.String()
}
