package getopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		arg           string
		caseSensitive bool
		want          Token
	}{
		{"foo", false, Token{Kind: NotAFlag, Name: "foo", Raw: "foo"}},
		{"-", false, Token{Kind: NotAFlag, Name: "-", Raw: "-"}},
		{"", false, Token{Kind: NotAFlag, Name: "", Raw: ""}},
		{"-a", false, Token{Kind: ShortSolitary, Name: "a", Raw: "-a"}},
		{"-A", false, Token{Kind: ShortSolitary, Name: "a", Raw: "-A"}},
		{"-A", true, Token{Kind: ShortSolitary, Name: "A", Raw: "-A"}},
		{"-afoo", false, Token{Kind: ShortWithValue, Name: "a", Value: "foo", Raw: "-afoo"}},
		{"-a=foo", false, Token{Kind: ShortWithValue, Name: "a", Value: "=foo", Raw: "-a=foo"}},
		{"-bTRUE", false, Token{Kind: ShortWithValue, Name: "b", Value: "TRUE", Raw: "-bTRUE"}},
		{"-é", false, Token{Kind: ShortSolitary, Name: "é", Raw: "-é"}},
		{"-éx", false, Token{Kind: ShortWithValue, Name: "é", Value: "x", Raw: "-éx"}},
		{"-\xfe", false, Token{Kind: ShortSolitary, Name: "\xfe", Raw: "-\xfe"}},
		{"-\xfeX", false, Token{Kind: ShortWithValue, Name: "\xfe", Value: "X", Raw: "-\xfeX"}},
		{"-\xff\xfe", true, Token{Kind: ShortWithValue, Name: "\xff", Value: "\xfe", Raw: "-\xff\xfe"}},
		{"--asdf", false, Token{Kind: LongSolitary, Name: "asdf", Raw: "--asdf"}},
		{"--ASDF", false, Token{Kind: LongSolitary, Name: "asdf", Raw: "--ASDF"}},
		{"--ASDF", true, Token{Kind: LongSolitary, Name: "ASDF", Raw: "--ASDF"}},
		{"--asdf=Foo", false, Token{Kind: LongWithValue, Name: "asdf", Value: "Foo", Raw: "--asdf=Foo"}},
		{"--asdf=", false, Token{Kind: LongWithValue, Name: "asdf", Value: "", Raw: "--asdf="}},
		{"--a=b=c", false, Token{Kind: LongWithValue, Name: "a", Value: "b=c", Raw: "--a=b=c"}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got := Classify(tt.arg, tt.caseSensitive)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.arg, diff)
			}
		})
	}
}

func TestFlagKindPredicates(t *testing.T) {
	if !ShortSolitary.IsShort() || !ShortWithValue.IsShort() || LongSolitary.IsShort() {
		t.Error("IsShort mismatch")
	}
	if !LongSolitary.IsLong() || !LongWithValue.IsLong() || NotAFlag.IsLong() {
		t.Error("IsLong mismatch")
	}
	if !ShortSolitary.IsSolitary() || !LongSolitary.IsSolitary() || LongWithValue.IsSolitary() {
		t.Error("IsSolitary mismatch")
	}
	if LongWithValue.String() != "long-with-value" {
		t.Errorf("Unexpected name %q", LongWithValue.String())
	}
}
