package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: transform names, feature names.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "leaf"/"ok" status (bright, high-visibility).
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and position markers.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for the "failed" status.
	colorRed = lipgloss.Color("196")

	// colorBoldRed is used for fatal compile errors (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark (✔).
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for borders and other structural chrome.
	colorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// styleNoun styles identifiable nouns (transform names, feature names).
	styleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// styleDim styles structural chrome (scope prefixes, separators, timestamps).
	styleDim = lipgloss.NewStyle().Faint(true)
)

// Node status constants, used by FormatNodeLine.
const (
	StatusLeaf     = "leaf"
	StatusShared   = "shared"
	StatusInternal = "internal"
	statusFailed   = "failed"
)

// statusStyle returns the lipgloss style for a given node status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusLeaf:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusShared:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusInternal:
		return lipgloss.NewStyle().Faint(true)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNodeColumnWidth is the minimum width for the node identity column
// before the status suffix. This ensures status words align consistently.
const minNodeColumnWidth = 48

// FormatNodeLine renders a DAG node identity with a right-aligned,
// color-coded status suffix.
//
// Format: n:<transform>[offset,offset+size)  <status>
//
// The "n:" prefix is dim, the identity is cyan, and the status uses statusStyle.
func FormatNodeLine(transformName string, offset, size int, status string) string {
	identity := fmt.Sprintf("%s[%d,%d)", transformName, offset, offset+size)

	padding := minNodeColumnWidth - len(identity)
	if padding < 2 {
		padding = 2
	}

	prefix := styleDim.Render("n:")
	styledIdentity := styleNoun.Render(identity)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledIdentity + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNotice renders a yellow arrow with a message for action-required output.
// Use this for "next steps" guidance where user action is needed.
func FormatNotice(msg string) string {
	arrow := lipgloss.NewStyle().Foreground(ColorYellow).Render("▶")
	return arrow + " " + msg
}

// FormatFeatureMatch renders a feature-to-leaf-node association line.
//
// Format: ▸ <feature> ← <transform chain tail>
//
// The bullet and feature name are cyan. The arrow and chain are dim.
func FormatFeatureMatch(feature, chainTail string) string {
	bullet := styleNoun.Render("▸")
	name := styleNoun.Render(feature)
	arrow := styleDim.Render("←")
	styledChain := styleDim.Render(chainTail)
	return bullet + " " + name + " " + arrow + " " + styledChain
}

// vetCheckColumnWidth is the alignment column for detail text in FormatVetCheck.
const vetCheckColumnWidth = 34

// Styles groups named semantic styles for renderers that need fields rather
// than the package-level Format* helpers (diff rendering, dyff integration).
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// GetStyles returns the default colored Styles set.
func GetStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Info:    lipgloss.NewStyle().Foreground(ColorCyan),
	}
}

// NoColorStyles returns a Styles set with no foreground colors applied, for
// output destined to non-TTY writers (log files, CI output capture).
func NoColorStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle(),
	}
}

// FormatVetCheck renders a Validator invariant check result with a green
// checkmark, label, and optional right-aligned detail text.
//
// Format: ✔ <label>                      <detail>
//
// The checkmark is green. The detail text (if provided) is dim/faint and
// right-aligned at column 34 from the start of the label. If detail is empty,
// no trailing whitespace is added.
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	result := check + " " + label

	if detail != "" {
		padding := vetCheckColumnWidth - len(label)
		if padding < 2 {
			padding = 2
		}
		styledDetail := styleDim.Render(detail)
		result += strings.Repeat(" ", padding) + styledDetail
	}

	return result
}
