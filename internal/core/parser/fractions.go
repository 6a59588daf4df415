package parser

import (
	"strings"
	"unicode"
)

var vulgarFractions = map[rune]string{
	'½': "1/2",
	'¼': "1/4",
	'¾': "3/4",
	'⅓': "1/3",
	'⅔': "2/3",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
	'⅕': "1/5",
	'⅖': "2/5",
	'⅗': "3/5",
	'⅘': "4/5",
	'⅙': "1/6",
	'⅚': "5/6",
	'⅐': "1/7",
	'⅑': "1/9",
	'⅒': "1/10",
}

// ReplaceUnicodeFractions rewrites vulgar fraction glyphs as ASCII "n/d".
// A glyph glued to a digit becomes a mixed number: "1½" -> "1 1/2".
func ReplaceUnicodeFractions(s string) string {
	if !strings.ContainsFunc(s, isVulgarFraction) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	var prev rune
	for _, r := range s {
		if ascii, ok := vulgarFractions[r]; ok {
			if unicode.IsDigit(prev) {
				sb.WriteByte(' ')
			}
			sb.WriteString(ascii)
		} else {
			sb.WriteRune(r)
		}
		prev = r
	}
	return sb.String()
}

func isVulgarFraction(r rune) bool {
	_, ok := vulgarFractions[r]
	return ok
}
