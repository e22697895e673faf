package getopt

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Option is one parsed option specification such as "verbose|v+".
// It is immutable once ParseSpec returns it.
type Option struct {
	Spec        string
	Short       []string // single runes, or single bytes when not valid UTF-8
	Long        []string
	Incremental bool
	Help        string

	// OptShort and OptLong are the first short and long aliases in
	// display form ("-v", "--verbose"), or "" when absent.
	OptShort string
	OptLong  string
}

// ParseSpec parses a '|' separated alias list with an optional trailing
// '+' marking the option as incremental. Single-rune pieces are short
// aliases, longer pieces are long aliases and empty pieces are ignored.
func ParseSpec(spec, help string) (*Option, error) {
	if spec == "" {
		return nil, invalidSpecError(spec, "spec must not be empty")
	}

	opt := &Option{Spec: spec, Help: help}
	body := spec
	if strings.HasSuffix(body, "+") {
		opt.Incremental = true
		body = body[:len(body)-1]
	}

	for _, piece := range strings.Split(body, "|") {
		switch utf8.RuneCountInString(piece) {
		case 0:
			continue
		case 1:
			if !slices.Contains(opt.Short, piece) {
				opt.Short = append(opt.Short, piece)
			}
		default:
			if !slices.Contains(opt.Long, piece) {
				opt.Long = append(opt.Long, piece)
			}
		}
	}

	if len(opt.Short) == 0 && len(opt.Long) == 0 {
		return nil, invalidSpecError(spec, "no aliases")
	}
	if len(opt.Short) > 0 {
		opt.OptShort = "-" + opt.Short[0]
	}
	if len(opt.Long) > 0 {
		opt.OptLong = "--" + opt.Long[0]
	}
	return opt, nil
}

// Matches reports whether tok names one of the option's aliases. Short
// tokens are only compared against short aliases and long tokens against
// long aliases.
func (o *Option) Matches(tok Token, caseSensitive bool) bool {
	switch {
	case tok.Kind.IsShort():
		for _, s := range o.Short {
			if s == tok.Name || (!caseSensitive && foldShort(s) == tok.Name) {
				return true
			}
		}
	case tok.Kind.IsLong():
		for _, l := range o.Long {
			if l == tok.Name || (!caseSensitive && strings.ToLower(l) == tok.Name) {
				return true
			}
		}
	}
	return false
}

// HasAlias reports whether name is one of the option's aliases exactly
func (o *Option) HasAlias(name string) bool {
	if utf8.RuneCountInString(name) == 1 {
		return slices.Contains(o.Short, name)
	}
	return slices.Contains(o.Long, name)
}

func (o *Option) String() string {
	return o.Spec
}
