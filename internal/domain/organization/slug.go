// Package organization reglas de identidad de la organización (slug).
package organization

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinSlugLength longitud mínima del slug.
const MinSlugLength = 3

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidSlug indica si s es un slug válido.
func ValidSlug(s string) bool {
	return len(s) >= MinSlugLength && slugPattern.MatchString(s)
}

// Slugify deriva un slug a partir del nombre: quita acentos, pasa a minúsculas y une con guiones.
// "Panadería Núñez" -> "panaderia-nunez".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	s := slugSeparator.ReplaceAllString(strings.ToLower(plain), "-")
	return strings.Trim(s, "-")
}
