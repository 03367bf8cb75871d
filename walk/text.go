package walk

import (
	"strings"
	"unicode"
)

// joinText concatenates parts with a space unless both boundary characters
// are CJK / full-width punctuation, per spec.md §4.3's text-collection
// concatenation rule.
func joinText(parts []string) string {
	var sb strings.Builder
	var prevRune rune
	hasPrev := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		first, _ := utf8DecodeFirst(part)
		if hasPrev && !(isCJKOrFullWidth(prevRune) && isCJKOrFullWidth(first)) {
			sb.WriteByte(' ')
		}
		sb.WriteString(part)
		prevRune, _ = utf8DecodeLast(part)
		hasPrev = true
	}
	return sb.String()
}

func utf8DecodeFirst(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

func utf8DecodeLast(s string) (rune, int) {
	var last rune
	for _, r := range s {
		last = r
	}
	return last, 0
}

// isCJKOrFullWidth reports whether r is a CJK ideograph, kana, hangul, or
// full-width punctuation/form character.
func isCJKOrFullWidth(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		(r >= 0xFF00 && r <= 0xFFEF) // full-width forms block
}

// bracket wraps text in the inline-interactive fragment markers (spec.md
// §3, §6): "⟨…⟩".
func bracket(text string) string {
	if text == "" {
		return ""
	}
	return "⟨" + text + "⟩"
}

// collapseWhitespace collapses runs of whitespace (including line breaks)
// into single spaces and trims the result, per spec.md §6's TEXT grammar.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
