package getopt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FlagKind classifies the shape of a single argument
type FlagKind int

const (
	NotAFlag FlagKind = iota
	ShortSolitary
	ShortWithValue
	LongSolitary
	LongWithValue
)

// String returns a readable name for the kind
func (k FlagKind) String() string {
	switch k {
	case NotAFlag:
		return "not-a-flag"
	case ShortSolitary:
		return "short"
	case ShortWithValue:
		return "short-with-value"
	case LongSolitary:
		return "long"
	case LongWithValue:
		return "long-with-value"
	default:
		return "unknown"
	}
}

// IsShort reports whether the kind names a short alias
func (k FlagKind) IsShort() bool { return k == ShortSolitary || k == ShortWithValue }

// IsLong reports whether the kind names a long alias
func (k FlagKind) IsLong() bool { return k == LongSolitary || k == LongWithValue }

// IsSolitary reports whether the token carried no value of its own
func (k FlagKind) IsSolitary() bool { return k == ShortSolitary || k == LongSolitary }

// Token is the classification of one argument.
type Token struct {
	Kind  FlagKind
	Name  string // canonical option name used for lookup
	Value string // attached value for *WithValue kinds
	Raw   string // the argument exactly as given
}

// Classify determines the flag shape of arg and extracts the canonical name
// and any attached value. When caseSensitive is false the name is
// lowercased; the value and the raw text are never altered.
func Classify(arg string, caseSensitive bool) Token {
	tok := Token{Kind: NotAFlag, Name: arg, Raw: arg}
	if len(arg) < 2 || arg[0] != '-' {
		return tok
	}

	if arg[1] == '-' {
		body := arg[2:]
		if eq := strings.IndexByte(body, '='); eq != -1 {
			tok.Kind = LongWithValue
			tok.Name = body[:eq]
			tok.Value = body[eq+1:]
		} else {
			tok.Kind = LongSolitary
			tok.Name = body
		}
		if !caseSensitive {
			tok.Name = strings.ToLower(tok.Name)
		}
		return tok
	}

	// Short flag. No bundling: everything after the first rune is the value.
	name := shortName(arg[1:])
	if 1+len(name) < len(arg) {
		tok.Kind = ShortWithValue
		tok.Value = arg[1+len(name):]
	} else {
		tok.Kind = ShortSolitary
	}
	if !caseSensitive {
		name = foldShort(name)
	}
	tok.Name = name
	return tok
}

// shortName returns the first rune of s exactly as it is encoded in s. An
// invalid byte comes back on its own, so two different invalid bytes never
// compare equal.
func shortName(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// foldShort lowercases a single-rune name. Invalid bytes are left as they
// are; strings.ToLower would turn them into U+FFFD.
func foldShort(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	return string(unicode.ToLower(r))
}
