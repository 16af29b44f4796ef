// Package naming converts raw entity names into the kebab, camel, and Pascal
// forms used for generated file names and identifiers.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	oerrors "github.com/pfgen/cli/internal/errors"
)

var (
	// lowerUpperBoundary matches a lowercase letter directly followed by an uppercase one.
	lowerUpperBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

	// spaceOrUnderscoreRun matches runs of whitespace and underscores.
	spaceOrUnderscoreRun = regexp.MustCompile(`[\s_]+`)

	// separatorRun matches a run of separators and the character following it, if any.
	separatorRun = regexp.MustCompile(`[-_\s]+(.)?`)

	// nameRegex accepts words of [A-Za-z0-9_-] joined by the whitespace the
	// converters treat as a separator.
	nameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+(?:[\t\n\f\r ]+[A-Za-z0-9_-]+)*$`)
)

// whitespace is the set matched by \s in the converters.
const whitespace = "\t\n\f\r "

// Name holds the derived forms of a raw entity name.
type Name struct {
	Raw    string
	Kebab  string
	Camel  string
	Pascal string
}

// Normalize derives every case form of raw.
func Normalize(raw string) Name {
	return Name{
		Raw:    raw,
		Kebab:  ToKebabCase(raw),
		Camel:  ToCamelCase(raw),
		Pascal: ToPascalCase(raw),
	}
}

// ToKebabCase converts s to kebab-case.
// Examples: "UserCard" -> "user-card", "host name" -> "host-name".
func ToKebabCase(s string) string {
	s = lowerUpperBoundary.ReplaceAllString(s, "$1-$2")
	s = spaceOrUnderscoreRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// ToCamelCase converts s to camelCase.
// Each separator run is dropped and the character after it is uppercased.
func ToCamelCase(s string) string {
	s = separatorRun.ReplaceAllStringFunc(s, func(m string) string {
		sub := separatorRun.FindStringSubmatch(m)
		if len(sub) < 2 || sub[1] == "" {
			return ""
		}
		return strings.ToUpper(sub[1])
	})
	return lowerFirst(s)
}

// ToPascalCase converts s to PascalCase.
func ToPascalCase(s string) string {
	return upperFirst(ToCamelCase(s))
}

// Trim removes leading and trailing separator whitespace from raw.
func Trim(raw string) string {
	return strings.Trim(raw, whitespace)
}

// Validate checks that raw is a usable entity name.
//
// Words must match [A-Za-z0-9_-]+ and may be separated by tab, newline,
// form feed, carriage return, or space. Surrounding whitespace is ignored.
// The PascalCase form must start with a letter.
func Validate(raw string) error {
	name := Trim(raw)
	if name == "" {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: "name cannot be empty",
			Cause:   oerrors.ErrValidation,
		}
	}

	if !nameRegex.MatchString(name) {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("invalid name %q: only letters, digits, hyphens, and underscores are allowed", raw),
			Field:   "name",
			Hint:    "Use a name like user-card, UserCard, or user_card.",
			Cause:   oerrors.ErrValidation,
		}
	}

	// Pascal heads every generated identifier, so it must start with a letter.
	if r, _ := utf8.DecodeRuneInString(ToPascalCase(name)); r < 'A' || r > 'Z' {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("invalid name %q: must start with a letter", raw),
			Field:   "name",
			Hint:    "Spell out a leading number, e.g. TwoFactor instead of 2fa.",
			Cause:   oerrors.ErrValidation,
		}
	}

	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
