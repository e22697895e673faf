package getopt

import (
	"slices"

	getoptio "github.com/dzonerzy/go-getopt/io"
)

// argBuffer is the owned, shrinking argument list shared by every option
// pass. limit is the index of the "--" terminator (or len(args)); only
// tokens below it can be matched. Removals before the limit move it left.
type argBuffer struct {
	args       []string
	limit      int
	terminator bool
}

func newArgBuffer(args []string) *argBuffer {
	b := &argBuffer{args: slices.Clone(args)}
	if b.args == nil {
		b.args = []string{}
	}
	b.limit = len(b.args)
	if i := slices.Index(b.args, "--"); i != -1 {
		b.limit = i
		b.terminator = true
	}
	return b
}

// take removes and returns the token at i, which must be below limit
func (b *argBuffer) take(i int) string {
	tok := b.args[i]
	b.args = slices.Delete(b.args, i, i+1)
	b.limit--
	return tok
}

// dropTerminator removes the "--" token itself
func (b *argBuffer) dropTerminator() {
	if b.terminator {
		b.args = slices.Delete(b.args, b.limit, b.limit+1)
	}
}

// engine holds the state of one parse invocation
type engine struct {
	buf    *argBuffer
	cfg    Config
	result *Result
	log    *getoptio.Logger
}

// pass matches one option against the current buffer, consuming every
// occurrence in a single left-to-right sweep.
func (e *engine) pass(opt *Option, dest Value) error {
	found := false
	if e.result.Parsing {
		for i := 0; i < e.buf.limit; {
			tok := Classify(e.buf.args[i], e.cfg.CaseSensitive)

			if tok.Kind == NotAFlag {
				if e.cfg.StopOnFirstNonOption {
					e.result.Parsing = false
					e.debug("stopped at first non-option %q (index %d)", tok.Raw, i)
					break
				}
				i++
				continue
			}

			if !opt.Matches(tok, e.cfg.CaseSensitive) {
				i++
				continue
			}

			// Index stays put: the next token shifts into position i.
			found = true
			e.buf.take(i)
			e.debug("matched %q for option %s", tok.Raw, opt.Spec)

			value := tok.Value
			if tok.Kind.IsSolitary() {
				if dest.Solitary(opt.Incremental) {
					continue
				}
				if i >= e.buf.limit {
					return missingValueError(opt.Spec, tok.Raw)
				}
				value = e.buf.take(i)
				e.debug("consumed %q as value for %s", value, opt.Spec)
			}

			if err := dest.Set(value); err != nil {
				return conversionError(opt.Spec, tok.Raw, err)
			}
		}
	}

	if !found && e.cfg.Required {
		return missingRequiredError(opt.Spec)
	}
	e.result.Options = append(e.result.Options, opt)
	return nil
}

// unrecognized returns the first flag-shaped token left before the
// terminator. A StopOnFirstNonOption halt does not shrink this window.
func (e *engine) unrecognized() (Token, bool) {
	for _, arg := range e.buf.args[:e.buf.limit] {
		if tok := Classify(arg, true); tok.Kind != NotAFlag {
			return tok, true
		}
	}
	return Token{}, false
}

func (e *engine) debug(format string, args ...any) {
	if e.log != nil {
		e.log.Debug(format, args...)
	}
}
