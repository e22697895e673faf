package getopt

// Config holds the parsing switches. Every switch defaults to its lenient
// value and is only changed by a Directive declaration.
type Config struct {
	CaseSensitive        bool
	PassThrough          bool
	Required             bool
	KeepEndOfOptions     bool
	StopOnFirstNonOption bool

	// Bundling is recorded but does not change how short flags are
	// classified: "-abc" is always "-a" with the attached value "bc".
	Bundling bool
}

// Directive is a configuration declaration. Directives are positional: one
// affects every option declared after it and none declared before it.
type Directive int

const (
	CaseSensitive Directive = iota
	CaseInsensitive
	PassThrough
	NoPassThrough
	Bundling
	NoBundling
	StopOnFirstNonOption
	KeepEndOfOptions
	Required
)

// String returns the directive name as used in debug output
func (d Directive) String() string {
	switch d {
	case CaseSensitive:
		return "caseSensitive"
	case CaseInsensitive:
		return "caseInsensitive"
	case PassThrough:
		return "passThrough"
	case NoPassThrough:
		return "noPassThrough"
	case Bundling:
		return "bundling"
	case NoBundling:
		return "noBundling"
	case StopOnFirstNonOption:
		return "stopOnFirstNonOption"
	case KeepEndOfOptions:
		return "keepEndOfOptions"
	case Required:
		return "required"
	default:
		return "unknown"
	}
}

// Apply sets the switch named by d. Later directives overwrite earlier ones.
func (c *Config) Apply(d Directive) {
	switch d {
	case CaseSensitive:
		c.CaseSensitive = true
	case CaseInsensitive:
		c.CaseSensitive = false
	case PassThrough:
		c.PassThrough = true
	case NoPassThrough:
		c.PassThrough = false
	case Bundling:
		c.Bundling = true
	case NoBundling:
		c.Bundling = false
	case StopOnFirstNonOption:
		c.StopOnFirstNonOption = true
	case KeepEndOfOptions:
		c.KeepEndOfOptions = true
	case Required:
		c.Required = true
	}
}
