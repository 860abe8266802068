package extract

import (
	"reflect"
	"testing"
)

func collect(t *Tokenizer) []string {
	var out []string
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokenizerSplitsOnWhitespace(t *testing.T) {
	tok := NewTokenizer("I love AAPL and ALL of its products")
	want := []string{"I", "love", "AAPL", "and", "ALL", "of", "its", "products"}
	if got := collect(tok); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizerPreservesSurfaceForm(t *testing.T) {
	tok := NewTokenizer("buy aapl  NOW!\t$TSLA\n")
	want := []string{"buy", "aapl", "NOW!", "$TSLA"}
	if got := collect(tok); !reflect.DeepEqual(got, want) {
		t.Errorf("casing and punctuation must be preserved: got %v, want %v", got, want)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	if got := collect(NewTokenizer("")); len(got) != 0 {
		t.Errorf("empty input must yield no tokens, got %v", got)
	}
	if got := collect(NewTokenizer("  \t \n ")); len(got) != 0 {
		t.Errorf("whitespace-only input must yield no tokens, got %v", got)
	}
}

func TestTokenizerReset(t *testing.T) {
	tok := NewTokenizer("GME AMC")
	first := collect(tok)

	tok.Reset()
	second := collect(tok)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("restart must reproduce the sequence: %v vs %v", first, second)
	}
}

func TestTokenizerUnicodeWhitespace(t *testing.T) {
	tok := NewTokenizer("AAPL TSLA")
	want := []string{"AAPL", "TSLA"}
	if got := collect(tok); !reflect.DeepEqual(got, want) {
		t.Errorf("non-breaking space should split tokens: got %v", got)
	}
}
