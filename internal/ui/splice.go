package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of a rendered frame with
// overlay content. Overlay lines are placed starting at (anchorX, anchorY)
// in screen coordinates. ANSI-aware truncation keeps escape sequences in
// the frame intact on both sides of the overlay.
func spliceOverlay(frame string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return frame
	}

	frameLines := strings.Split(frame, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		lineIndex := anchorY + index
		if lineIndex < 0 || lineIndex >= len(frameLines) {
			continue
		}

		frameLine := frameLines[lineIndex]
		frameWidth := ansi.StringWidth(frameLine)

		var result strings.Builder
		if anchorX > 0 {
			result.WriteString(ansi.Truncate(frameLine, anchorX, ""))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < frameWidth {
			result.WriteString(ansi.TruncateLeft(frameLine, suffixStart, ""))
		}

		frameLines[lineIndex] = result.String()
	}

	return strings.Join(frameLines, "\n")
}
