package getopt

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-getopt/internal/pool"
	getoptio "github.com/dzonerzy/go-getopt/io"
)

// maxPooledBuffers bounds how many idle render buffers are kept
const maxPooledBuffers = 8

var buffers = newRenderBuffers()

func newRenderBuffers() *pool.BufferPool {
	bp := pool.NewBufferPool(256)
	bp.SetMaxSize(maxPooledBuffers)
	return bp
}

// DefaultPrinter writes header followed by one line per option: the short
// alias, the long alias padded to the widest long alias, and the help text.
func DefaultPrinter(w io.Writer, header string, options []*Option) error {
	return printOptions(w, header, options, nil)
}

// StyledPrinter renders the same layout as DefaultPrinter to m's output,
// colouring the header and aliases with m's theme when colour is supported.
func StyledPrinter(m *getoptio.IOManager, header string, options []*Option) error {
	return printOptions(m.Out(), header, options, m)
}

func printOptions(w io.Writer, header string, options []*Option, m *getoptio.IOManager) error {
	shortWidth, longWidth := 0, 0
	for _, opt := range options {
		shortWidth = max(shortWidth, utf8.RuneCountInString(opt.OptShort))
		longWidth = max(longWidth, utf8.RuneCountInString(opt.OptLong))
	}

	b := buffers.Get()
	defer buffers.Put(b)

	b.WriteString(paint(m, getoptio.RoleHeader, header))
	b.WriteByte('\n')
	for _, opt := range options {
		short := pad(opt.OptShort, shortWidth, true)
		long := pad(opt.OptLong, longWidth, false)
		line := paint(m, getoptio.RoleShort, short) + " " + paint(m, getoptio.RoleLong, long)
		if opt.Help != "" {
			line += " " + paint(m, getoptio.RoleHelp, opt.Help)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}

// pad aligns s to width runes before colour codes are added
func pad(s string, width int, right bool) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func paint(m *getoptio.IOManager, role getoptio.Role, s string) string {
	if m == nil || strings.TrimSpace(s) == "" {
		return s
	}
	return m.Paint(role, s)
}

// DescribeDeclarations writes a one-line debug dump of a declaration list:
//
//	prefix: { "l|length": 0; <required>; "file|f": ""; }
//
// Option values are read through the destination pointers at call time.
func DescribeDeclarations(w io.Writer, prefix string, decls ...Declaration) error {
	b := buffers.Get()
	defer buffers.Put(b)

	b.WriteString(prefix)
	b.WriteString(": { ")
	for _, d := range decls {
		switch d := d.(type) {
		case Directive:
			fmt.Fprintf(b, "<%s>; ", d)
		case optionDecl:
			fmt.Fprintf(b, "%q: %s; ", d.spec, describeDest(d.dest))
		}
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func describeDest(dest any) string {
	switch d := dest.(type) {
	case *string:
		return fmt.Sprintf("%q", *d)
	case Value:
		return "<" + d.Type() + ">"
	case fmt.Stringer:
		return d.String()
	}
	if rv := reflect.ValueOf(dest); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return fmt.Sprintf("%v", rv.Elem().Interface())
	}
	return fmt.Sprintf("%T", dest)
}
