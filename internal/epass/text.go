package epass

import "golang.org/x/text/encoding/charmap"

// pdfText converts s to Windows-1252, the encoding of the PDF core fonts.
// Runes outside the code page become '?'.
func pdfText(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b = append(b, c)
			continue
		}
		b = append(b, '?')
	}
	return string(b)
}
