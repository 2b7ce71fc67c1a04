// Package export renders the identifiers generated so far into
// copy-pasteable automated-test artifacts and delivers them to a file or
// the system clipboard.
package export

import "fmt"

// Format represents the output format for exported identifiers.
type Format string

const (
	// FormatXCUITest renders a ready-to-run XCUITest source file with a
	// lookup statement per identifier and an action statement where the
	// role implies one.
	FormatXCUITest Format = "xcuitest"

	// FormatJSON renders a machine-readable manifest of every identifier
	// and its originating role.
	FormatJSON Format = "json"

	// FormatText renders one identifier per line.
	FormatText Format = "text"
)

// IsValid returns true if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatXCUITest, FormatJSON, FormatText:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// FileExtension returns the file extension for the format.
func (f Format) FileExtension() string {
	switch f {
	case FormatXCUITest:
		return ".swift"
	case FormatJSON:
		return ".json"
	case FormatText:
		return ".txt"
	default:
		return ""
	}
}

// MimeType returns the MIME type for the format.
func (f Format) MimeType() string {
	switch f {
	case FormatXCUITest:
		return "text/x-swift"
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat parses a string into a Format value.
// Returns an error if the string is not a valid format.
func ParseFormat(s string) (Format, error) {
	format := Format(s)
	if !format.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
	return format, nil
}

// AllFormats returns all valid export formats.
func AllFormats() []Format {
	return []Format{
		FormatXCUITest,
		FormatJSON,
		FormatText,
	}
}
