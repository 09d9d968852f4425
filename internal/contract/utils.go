package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Score label constants.
const (
	StrongValue  = "Strong"  // Strong value
	GoodValue    = "Good"    // Good value
	FairValue    = "Fair"    // Fair value
	LimitedValue = "Limited" // Limited value
)

// Color variables for console output.
var (
	StrongColor  = color.New(color.FgGreen, color.Bold) // StrongColor marks top scores.
	GoodColor    = color.New(color.FgCyan)              // GoodColor marks solid scores.
	FairColor    = color.New(color.FgYellow)            // FairColor marks middling scores.
	LimitedColor = color.New(color.FgRed)               // LimitedColor marks weak scores.
	HeaderColor  = color.New(color.FgHiWhite, color.Bold)
	MutedColor   = color.New(color.Faint)
)

// GetPlainLabel returns a plain text label for a score on the 0-10 scale.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 8:
		return StrongValue
	case score >= 6:
		return GoodValue
	case score >= 4:
		return FairValue
	default:
		return LimitedValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default:
		return LimitedColor.Sprint(text)
	}
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into its components.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCatalogDBFilePath returns the path to the default SQLite catalog database.
func GetCatalogDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".langradar_catalog.db"
	}
	return filepath.Join(homeDir, ".langradar_catalog.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
