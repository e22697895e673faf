package getopt

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestIntConversion(t *testing.T) {
	var i8 int8
	if err := Int(&i8).Set("-128"); err != nil || i8 != math.MinInt8 {
		t.Errorf("Expected -128, got %d (%v)", i8, err)
	}
	if err := Int(&i8).Set("128"); err == nil {
		t.Error("Expected overflow error for int8")
	}

	var u uint16
	if err := Int(&u).Set("65535"); err != nil || u != math.MaxUint16 {
		t.Errorf("Expected 65535, got %d (%v)", u, err)
	}
	err := Int(&u).Set("-1")
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConversionError, got %v", err)
	}
	if ce.Expected != "uint16" || ce.Got != "-1" {
		t.Errorf("Unexpected conversion error %+v", ce)
	}
	if ce.Error() != `"-1" is not convertible to type uint16` {
		t.Errorf("Unexpected message %q", ce.Error())
	}
}

func TestIntSolitary(t *testing.T) {
	n := 3
	v := Int(&n)
	if v.Solitary(false) {
		t.Error("Non-incremental int must require a value")
	}
	if n != 3 {
		t.Errorf("Non-incremental solitary must not change the value, got %d", n)
	}
	if !v.Solitary(true) || n != 4 {
		t.Errorf("Expected increment to 4, got %d", n)
	}
}

func TestNonIntegralIncremental(t *testing.T) {
	s := ""
	f := 1.5
	if String(&s).Solitary(true) {
		t.Error("string destinations never increment")
	}
	if FloatOf(&f).Solitary(true) || f != 1.5 {
		t.Errorf("float destinations never increment, got %v", f)
	}
}

func TestBoolValue(t *testing.T) {
	b := false
	v := Bool(&b)
	if !v.Solitary(false) || !b {
		t.Error("Bool presence must set true")
	}
	if err := v.Set("FaLsE"); err != nil || b {
		t.Errorf("Expected false, got %v (%v)", b, err)
	}
	err := v.Set("Yes")
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Got != "yes" {
		t.Errorf("Expected lowered text in error, got %v", err)
	}
}

func TestFloatAndDuration(t *testing.T) {
	var f32 float32
	if err := FloatOf(&f32).Set("2.5"); err != nil || f32 != 2.5 {
		t.Errorf("Expected 2.5, got %v (%v)", f32, err)
	}
	if err := FloatOf(&f32).Set("abc"); err == nil {
		t.Error("Expected float conversion error")
	}

	var d time.Duration
	if err := Duration(&d).Set("1m30s"); err != nil || d != 90*time.Second {
		t.Errorf("Expected 90s, got %v (%v)", d, err)
	}
	if Duration(&d).Type() != "duration" {
		t.Error("Unexpected duration type name")
	}
}

func TestPFlagValue(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	ip := fs.IP("addr", nil, "")
	verbose := fs.Bool("verbose", false, "")

	_, rest, err := Getopt(
		[]string{"--addr", "10.0.0.1", "-v", "x"},
		Opt("addr", fs.Lookup("addr").Value),
		Opt("v", PFlag(fs.Lookup("verbose").Value)),
	)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ip.String() != "10.0.0.1" {
		t.Errorf("Expected IP 10.0.0.1, got %s", ip)
	}
	if !*verbose {
		t.Error("Expected pflag bool to be set by presence")
	}
	if len(rest) != 1 || rest[0] != "x" {
		t.Errorf("Unexpected rest %v", rest)
	}

	_, _, err = Getopt([]string{"--addr=nope"}, Opt("addr", fs.Lookup("addr").Value))
	if !IsErrorType(err, ErrorTypeInvalidValue) {
		t.Errorf("Expected invalid value, got %v", err)
	}
}

type level int

func (l *level) Set(text string) error {
	switch text {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return &ConversionError{Expected: "level", Got: text}
	}
	return nil
}
func (l *level) Solitary(bool) bool { return false }
func (l *level) Type() string { return "level" }

func TestCustomValue(t *testing.T) {
	var lv level
	_, _, err := Getopt([]string{"--level", "high"}, Opt("level", &lv))
	if err != nil || lv != 2 {
		t.Errorf("Expected level 2, got %d (%v)", lv, err)
	}
}
