// Package getopt parses command-line options into caller-owned variables.
//
// Options are declared as spec strings ("l|length", "verbose|v+") bound to
// destinations, interleaved with configuration directives that affect every
// declaration after them:
//
//	var length int
//	var file string
//	res, rest, err := getopt.Getopt(os.Args,
//		getopt.Opt("l|length", &length, "line length"),
//		getopt.Required,
//		getopt.Opt("file|f", &file),
//	)
//
// Each option makes one pass over the arguments and removes what it
// matched. The returned slice holds everything that was not consumed.
package getopt

import (
	"fmt"
	"os"
	"strings"

	getoptio "github.com/dzonerzy/go-getopt/io"
	"github.com/dzonerzy/go-getopt/internal/fuzzy"
)

// Declaration is either an option declared with Opt or a Directive.
type Declaration interface {
	isDeclaration()
}

func (Directive) isDeclaration() {}

type optionDecl struct {
	spec string
	help string
	dest any
}

func (optionDecl) isDeclaration() {}

// Opt declares an option. dest is a Value or a pointer to a string, bool,
// integer, float or time.Duration; a pflag.Value is also accepted. Help
// strings are joined with spaces.
func Opt(spec string, dest any, help ...string) Declaration {
	return optionDecl{spec: spec, help: strings.Join(help, " "), dest: dest}
}

// Result describes one parse invocation.
type Result struct {
	// Options lists every processed option in order, the implicit help
	// option first when it was added.
	Options []*Option
	// HelpWanted is set when the help option matched.
	HelpWanted bool
	// Parsing is false when StopOnFirstNonOption halted consumption.
	Parsing bool
	// Terminator reports whether a "--" was present.
	Terminator bool
}

const helpText = "This help information."

// Parser carries settings that outlive a single parse. The zero value is
// not usable; create one with New.
type Parser struct {
	logger       *getoptio.Logger
	suggestFlags bool
	maxDistance  int
}

// New creates a parser with suggestions disabled and no logging
func New() *Parser {
	return &Parser{
		suggestFlags: false, // Disabled by default - user must opt-in
		maxDistance:  2,
	}
}

// WithLogger enables debug tracing of every match through l
func (p *Parser) WithLogger(l *getoptio.Logger) *Parser {
	p.logger = l
	return p
}

// SuggestFlags enables/disables "did you mean" suggestions for unknown long flags
func (p *Parser) SuggestFlags(enabled bool) *Parser {
	p.suggestFlags = enabled
	return p
}

// MaxDistance sets the maximum edit distance for suggestions
func (p *Parser) MaxDistance(distance int) *Parser {
	p.maxDistance = distance
	return p
}

// Getopt parses args with a default Parser
func Getopt(args []string, decls ...Declaration) (*Result, []string, error) {
	return New().Parse(args, decls...)
}

// GetoptOS parses the process arguments, including the program name
func GetoptOS(decls ...Declaration) (*Result, []string, error) {
	return Getopt(os.Args, decls...)
}

type resolvedDecl struct {
	directive Directive
	isOption  bool
	opt       *Option
	dest      Value
}

// Parse runs every declaration against args and returns the remaining
// arguments. args itself is never modified.
func (p *Parser) Parse(args []string, decls ...Declaration) (*Result, []string, error) {
	resolved, hasHelp, err := resolve(decls)
	if err != nil {
		return nil, nil, err
	}

	result := &Result{Parsing: true}
	e := &engine{
		buf:    newArgBuffer(args),
		result: result,
		log:    p.logger,
	}
	result.Terminator = e.buf.terminator
	if e.buf.terminator {
		e.debug("terminator at index %d", e.buf.limit)
	}

	if !hasHelp {
		help, _ := ParseSpec("help|h", helpText)
		if err := e.pass(help, Bool(&result.HelpWanted)); err != nil {
			return nil, nil, err
		}
	}

	for _, d := range resolved {
		if !d.isOption {
			e.cfg.Apply(d.directive)
			continue
		}
		if err := e.pass(d.opt, d.dest); err != nil {
			return nil, nil, err
		}
	}

	if !e.cfg.PassThrough {
		if tok, ok := e.unrecognized(); ok {
			return nil, nil, unknownFlagError(tok.Raw, p.suggest(tok, result.Options))
		}
	}

	if e.buf.terminator && !e.cfg.KeepEndOfOptions {
		e.buf.dropTerminator()
	}
	return result, e.buf.args, nil
}

// resolve parses every spec up front so an invalid declaration fails before
// any argument is consumed.
func resolve(decls []Declaration) ([]resolvedDecl, bool, error) {
	out := make([]resolvedDecl, 0, len(decls))
	hasHelp := false
	for _, d := range decls {
		switch d := d.(type) {
		case Directive:
			out = append(out, resolvedDecl{directive: d})
		case optionDecl:
			opt, err := ParseSpec(d.spec, d.help)
			if err != nil {
				return nil, false, err
			}
			dest, ok := valueOf(d.dest)
			if !ok {
				return nil, false, &ParseError{
					Type:    ErrorTypeUnsupportedType,
					Message: fmt.Sprintf("option %s: unsupported destination type %T", d.spec, d.dest),
					Option:  d.spec,
				}
			}
			if opt.HasAlias("h") || opt.HasAlias("help") {
				hasHelp = true
			}
			out = append(out, resolvedDecl{isOption: true, opt: opt, dest: dest})
		}
	}
	return out, hasHelp, nil
}

// suggest finds a close long alias for an unknown long flag
func (p *Parser) suggest(tok Token, options []*Option) string {
	if !p.suggestFlags || !tok.Kind.IsLong() {
		return ""
	}
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Long...)
	}
	best := fuzzy.FindBestFlag(tok.Name, names, p.maxDistance)
	if best == "" {
		return ""
	}
	return fmt.Sprintf("Did you mean '--%s'?", best)
}
