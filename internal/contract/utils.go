package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// Color variables for console output.
var (
	VeryProductiveColor  = color.New(color.FgGreen, color.Bold)
	ProductiveColor      = color.New(color.FgGreen)
	NeutralColor         = color.New(color.FgYellow)
	DistractingColor     = color.New(color.FgMagenta)
	VeryDistractingColor = color.New(color.FgRed, color.Bold)
)

// GetColorLabel returns a colored productivity label for console output.
// It uses the level's plain label and applies the matching color.
func GetColorLabel(level schema.ProductivityLevel) string {
	text := level.Label()

	switch level {
	case schema.VeryProductive:
		return VeryProductiveColor.Sprint(text)
	case schema.Productive:
		return ProductiveColor.Sprint(text)
	case schema.Neutral:
		return NeutralColor.Sprint(text)
	case schema.Distracting:
		return DistractingColor.Sprint(text)
	default:
		return VeryDistractingColor.Sprint(text)
	}
}

// TruncateText shortens a name to fit within maxWidth, marking the cut with
// an ellipsis.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 3 || len(text) <= maxWidth {
		return text
	}
	return text[:maxWidth-3] + "..."
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
