package svg

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.4
	fontWidthRatio  = 0.9
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 16.0
)

// fontSize picks the largest size at which text of the given length fits a
// box of w x h.
func fontSize(w, h float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := h * fontHeightRatio
	byWidth := (w * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// truncate shortens label so it fits width w at the given font size.
func truncate(label string, w, size float64) string {
	maxChars := max(3, int(w*fontWidthRatio/(size*fontCharWidth)))
	r := []rune(label)
	if len(r) <= maxChars {
		return label
	}
	return string(r[:maxChars-2]) + ".."
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
