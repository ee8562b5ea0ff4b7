package block

import "strings"

const specialSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsSpecialSymbol reports whether r is emitted as a special symbol rather than as part of a word.
func IsSpecialSymbol(r rune) bool {
	return r < 0x80 && strings.ContainsRune(specialSymbols, r)
}

// Text splits plain text into word, space, special symbol and new line blocks.
// Carriage returns are dropped and tabs are treated as spaces.
func Text(s string) []Block {
	var (
		blocks []Block
		word   strings.Builder
	)
	flush := func() {
		if word.Len() > 0 {
			blocks = append(blocks, NewWord(word.String()))
			word.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == ' ', r == '\t':
			flush()
			blocks = append(blocks, NewSpace())
		case r == '\n':
			flush()
			blocks = append(blocks, NewNewLine())
		case r == '\r':
		case IsSpecialSymbol(r):
			flush()
			blocks = append(blocks, NewSpecialSymbol(r))
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return blocks
}
