// Package fixtures provides test stores and test data shared by handler,
// adapter and CLI tests.
package fixtures

import "strings"

// Japanese text keeps byte length and character length apart, so length
// checks that count bytes by mistake fail loudly.
var titleRunes = []rune("雑誌の記事タイトルmagazine")

// Title returns a string of exactly n characters (runes), mixing multi-byte
// and ASCII characters.
//
// Example:
//
//	Title(5)  // "雑誌の記事"
//	Title(50) // a title at the maximum accepted length
func Title(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(titleRunes[i%len(titleRunes)])
	}
	return b.String()
}
