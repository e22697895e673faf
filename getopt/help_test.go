package getopt

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	getoptio "github.com/dzonerzy/go-getopt/io"
)

func TestDefaultPrinter(t *testing.T) {
	var number int
	var stuff string
	res, _, err := Getopt([]string{"prog"},
		Opt("n|number", &number, "gimme a number"),
		Opt("s|stuff", &stuff, "gimme", "some", "stuff"),
		Opt("quiet", new(bool)),
	)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var out bytes.Buffer
	if err := DefaultPrinter(&out, "Usage: prog [options]", res.Options); err != nil {
		t.Fatalf("DefaultPrinter failed: %v", err)
	}

	want := strings.Join([]string{
		"Usage: prog [options]",
		"-h --help   This help information.",
		"-n --number gimme a number",
		"-s --stuff  gimme some stuff",
		"   --quiet",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestStyledPrinterWithoutColor(t *testing.T) {
	opt, _ := ParseSpec("v|verbose", "more output")
	var plain, styled bytes.Buffer
	if err := DefaultPrinter(&plain, "Options:", []*Option{opt}); err != nil {
		t.Fatal(err)
	}
	m := getoptio.New().WithOut(&styled).NoColor()
	if err := StyledPrinter(m, "Options:", []*Option{opt}); err != nil {
		t.Fatal(err)
	}
	if plain.String() != styled.String() {
		t.Errorf("Expected identical output without colour:\n%q\n%q", plain.String(), styled.String())
	}
}

func TestStyledPrinterWithColor(t *testing.T) {
	opt, _ := ParseSpec("v|verbose", "more output")
	var out bytes.Buffer
	m := getoptio.New().WithOut(&out).ForceColor()
	t.Setenv("NO_COLOR", "")
	if err := StyledPrinter(m, "Options:", []*Option{opt}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("Expected ANSI sequences, got %q", out.String())
	}
	if !strings.Contains(out.String(), "more output") {
		t.Errorf("Expected help text, got %q", out.String())
	}
}

func TestDescribeDeclarations(t *testing.T) {
	length := 24
	file := "foo.txt"
	verbose := true
	timeout := 2 * time.Second
	var out bytes.Buffer

	err := DescribeDeclarations(&out, "args",
		Opt("l|length", &length),
		Required,
		Opt("file|f", &file),
		Opt("v", &verbose),
		Opt("t", &timeout),
		Opt("ratio", FloatOf(new(float64))),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := `args: { "l|length": 24; <required>; "file|f": "foo.txt"; "v": true; "t": 2s; "ratio": <float64>; }` + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("describe mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBuffersStayBounded(t *testing.T) {
	opt, _ := ParseSpec("v|verbose", "more output")

	var wg sync.WaitGroup
	for i := 0; i < 4*maxPooledBuffers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := DefaultPrinter(io.Discard, "Options:", []*Option{opt}); err != nil {
				t.Errorf("DefaultPrinter failed: %v", err)
			}
			if err := DescribeDeclarations(io.Discard, "args", Opt("v", new(bool))); err != nil {
				t.Errorf("DescribeDeclarations failed: %v", err)
			}
		}()
	}
	wg.Wait()

	count, maxSize := buffers.Stats()
	if maxSize != maxPooledBuffers {
		t.Errorf("Expected max size %d, got %d", maxPooledBuffers, maxSize)
	}
	if count > int64(maxPooledBuffers) {
		t.Errorf("Expected at most %d idle buffers, got %d", maxPooledBuffers, count)
	}
}
