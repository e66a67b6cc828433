package token

import (
	"testing"
)

// tokenize scans src to EOF, returning every token kind and text in order.
func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	s := New(src)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("scanning %q: %v", src, err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestScannerPunctuation(t *testing.T) {
	toks := tokenize(t, `{ } [ ] ( ) < > ; , . ... -> := : = + -`)
	want := []Kind{
		LBrace, RBrace, LBracket, RBracket, LParen, RParen, LAngle, RAngle,
		Semicolon, Comma, Dot, Ellipsis, Arrow, ColonEq, Colon, Equals, Plus, Minus, EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScannerIdentifier(t *testing.T) {
	toks := tokenize(t, `foo_bar Baz123 _leading`)
	want := []string{"foo_bar", "Baz123", "_leading"}
	for i, w := range want {
		if toks[i].Kind != Ident || toks[i].Text != w {
			t.Errorf("token %d: got %v, want Ident(%s)", i, toks[i], w)
		}
	}
}

func TestScannerIntegerLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind Kind
	}{
		{"0", Octal},
		{"123", Decimal},
		{"0755", Octal},
		{"0x1F", Hexadecimal},
		{"0XAB", Hexadecimal},
		{"0xdeadBEEF", Hexadecimal},
	}
	for _, c := range cases {
		toks := tokenize(t, c.src)
		if toks[0].Kind != c.kind {
			t.Errorf("%q: got %s, want %s", c.src, toks[0].Kind, c.kind)
		}
	}
}

func TestScannerStrictOctalRejectsNonOctalDigits(t *testing.T) {
	s := New("089")
	s.StrictOctal = true
	if _, err := s.Next(); err == nil {
		t.Fatalf("expected error for 089 under strict octal")
	}
}

func TestScannerLenientOctalWidensToDecimal(t *testing.T) {
	s := New("089")
	s.StrictOctal = false
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != Decimal || tok.Text != "089" {
		t.Fatalf("got %v, want Decimal(089)", tok)
	}
}

func TestScannerCommentsAreSkipped(t *testing.T) {
	toks := tokenize(t, "a /* block\ncomment */ b // line comment\nc")
	var texts []string
	for _, tok := range toks {
		if tok.Kind == Ident {
			texts = append(texts, tok.Text)
		}
	}
	if len(texts) != 3 || texts[0] != "a" || texts[1] != "b" || texts[2] != "c" {
		t.Fatalf("got %v, want [a b c]", texts)
	}
}

func TestScannerQuotedString(t *testing.T) {
	toks := tokenize(t, `"hello\nworld"`)
	if toks[0].Kind != QuotedString {
		t.Fatalf("got %v, want QuotedString", toks[0])
	}
	decoded, err := Unescape(toks[0].Text)
	if err != nil {
		t.Fatalf("Unescape: %v", err)
	}
	if decoded != "hello\nworld" {
		t.Fatalf("got %q, want %q", decoded, "hello\nworld")
	}
}

func TestUnescapeHexEscape(t *testing.T) {
	decoded, err := Unescape(`"\x41\x42"`)
	if err != nil {
		t.Fatalf("Unescape: %v", err)
	}
	if decoded != "AB" {
		t.Fatalf("got %q, want %q", decoded, "AB")
	}
}
