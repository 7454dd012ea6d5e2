package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
		wantDim  bool
	}{
		{
			name:   "leaf returns green",
			status: StatusLeaf,
			wantFG: colorGreen,
		},
		{
			name:   "shared returns yellow",
			status: StatusShared,
			wantFG: ColorYellow,
		},
		{
			name:    "internal returns faint",
			status:  StatusInternal,
			wantDim: true,
		},
		{
			name:     "failed returns bold red",
			status:   statusFailed,
			wantBold: true,
			wantFG:   colorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
			if tt.wantDim {
				assert.True(t, style.GetFaint(), "expected faint")
			}
		})
	}
}

func TestFormatNodeLine(t *testing.T) {
	tests := []struct {
		name      string
		transform string
		offset    int
		size      int
		status    string
		wantID    string
	}{
		{
			name:      "internal node",
			transform: "RDFT",
			offset:    0,
			size:      256,
			status:    StatusInternal,
			wantID:    "RDFT[0,256)",
		},
		{
			name:      "leaf node",
			transform: "Selector",
			offset:    512,
			size:      96,
			status:    StatusLeaf,
			wantID:    "Selector[512,608)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatNodeLine(tt.transform, tt.offset, tt.size, tt.status)

			assert.Contains(t, result, tt.wantID, "should contain node identity")
			assert.Contains(t, result, tt.status, "should contain status text")
			assert.True(t, strings.HasPrefix(stripAnsi(result), "n:"), "should start with n: prefix")
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		line1 := FormatNodeLine("DCT", 0, 4, StatusLeaf)
		line2 := FormatNodeLine("FilterBank", 0, 104, StatusLeaf)

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, StatusLeaf)
		idx2 := strings.Index(stripped2, StatusLeaf)

		assert.Equal(t, idx1, idx2, "status words should align to same column")
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("pipeline compiled")
	assert.Contains(t, result, "✔", "should contain checkmark")
	assert.Contains(t, result, "pipeline compiled", "should contain message")
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
