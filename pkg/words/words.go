// Package words provides token normalization and the common-word set that
// keeps everyday vocabulary out of frequency results.
package words

import "strings"

// punctuation is the character class stripped from token edges: ASCII
// space, ASCII punctuation, and newline.
const punctuation = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~\n"

// Normalize strips leading and trailing punctuation from a token and
// lowercases it. Tokens that are nothing but punctuation come back empty.
func Normalize(token string) string {
	return strings.ToLower(strings.Trim(token, punctuation))
}
