package extract

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer yields whitespace-delimited tokens from a text, left to
// right, preserving the original surface form. Case folding happens at
// comparison time so the reported original_word keeps its casing.
type Tokenizer struct {
	text string
	pos  int
}

// NewTokenizer creates a tokenizer over text. Empty or whitespace-only
// input yields no tokens.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{text: text}
}

// Next returns the next token, or ok=false when the text is exhausted.
func (t *Tokenizer) Next() (string, bool) {
	for t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		t.pos += size
	}
	if t.pos >= len(t.text) {
		return "", false
	}

	start := t.pos
	for t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		if unicode.IsSpace(r) {
			break
		}
		t.pos += size
	}
	return t.text[start:t.pos], true
}

// Reset rewinds the tokenizer to the start of the text.
func (t *Tokenizer) Reset() {
	t.pos = 0
}
