package output

import "strings"

// Format specifies how a file plan is printed.
type Format string

const (
	// FormatText prints one styled line per file.
	FormatText Format = "text"

	// FormatYAML prints the plan, including contents, as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints the plan, including contents, as JSON.
	FormatJSON Format = "json"

	// FormatTable prints paths and artifacts as a table.
	FormatTable Format = "table"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. The empty string is text.
// Unknown values return an invalid Format; check with IsValid.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return Format(s)
	}
}

// ValidFormats returns the valid format strings.
func ValidFormats() []string {
	return []string{"text", "yaml", "json", "table"}
}
