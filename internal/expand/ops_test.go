package expand_test

import (
	"testing"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/expand"
)

func TestSliceOps(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`__head__(a b c)`, `a`},
		{`__tail__(a b c)`, `b c`},
		{`__start__(a b c)`, `a b`},
		{`__last__(a b c)`, `c`},
		{`__reverse__(a b c)`, `c b a`},
		{`__ignore__(a b c)`, ``},
		{`__identity__(a b c)`, `a b c`},
		{`__head__((a b) c)`, `(a b)`},
	}
	for _, tt := range tests {
		if got := mustExpand(t, tt.src); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestReverseLaws(t *testing.T) {
	seq := `a (b c) 1 "x" ->`
	if got := mustExpand(t, `__reverse__(__reverse__(`+seq+`))`); got != mustExpand(t, seq) {
		t.Errorf("reverse twice = %q, want %q", got, seq)
	}

	// head :: tail and start :: last both reconstruct the sequence.
	headTail := mustExpand(t, `__head__(a b c) __tail__(a b c)`)
	if headTail != `a b c` {
		t.Errorf("head::tail = %q, want %q", headTail, `a b c`)
	}
	startLast := mustExpand(t, `__start__(a b c) __last__(a b c)`)
	if startLast != `a b c` {
		t.Errorf("start::last = %q, want %q", startLast, `a b c`)
	}
}

func TestReverseKeepsGroupInterior(t *testing.T) {
	if got := mustExpand(t, `__reverse__(a (b c) d)`); got != `d(b c) a` {
		t.Errorf("got %q, want %q", got, `d(b c) a`)
	}
}

func TestEmptySequenceErrors(t *testing.T) {
	for _, src := range []string{
		`__head__()`,
		`__tail__()`,
		`__start__()`,
		`__last__()`,
		// Ignore evaluates first, so head sees an empty sequence.
		`__head__(__ignore__(anything))`,
	} {
		_, _, err := expandSrc(t, src, expand.Options{})
		wantCode(t, err, diag.ExpEmptySequence)
	}
}

func TestStringBuild(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// Identifiers verbatim, literals decoded, puncts dropped.
		{`__string__(hello " " world)`, "hello world"},
		{`__string__(a + b)`, "ab"},
		{`__string__(0x2A 'x')`, "42x"},
		{`__string__((nested (deep)) end)`, "nesteddeepend"},
		{`__string__()`, ""},
	}
	for _, tt := range tests {
		out, _, err := expandSrc(t, tt.src, expand.Options{})
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if len(out) != 1 || !out[0].IsStringLit() {
			t.Errorf("%s: result = %v, want string literal", tt.src, out)
			continue
		}
		if out[0].Value != tt.want {
			t.Errorf("%s: value = %q, want %q", tt.src, out[0].Value, tt.want)
		}
	}
}

func TestIdentifierBuild(t *testing.T) {
	if got := mustExpand(t, `__identifier__(cool_ foo)`); got != `cool_foo` {
		t.Errorf("got %q, want %q", got, `cool_foo`)
	}
	if got := mustExpand(t, `__ident__("from" _ str)`); got != `from_str` {
		t.Errorf("got %q, want %q", got, `from_str`)
	}

	for _, src := range []string{
		`__identifier__(1 a)`,
		`__identifier__()`,
		`__identifier__("with space")`,
	} {
		_, _, err := expandSrc(t, src, expand.Options{})
		wantCode(t, err, diag.ExpInvalidIdentifier)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// Stringify reproduces syntax; string build decodes it.
		{`__stringify__("a" b)`, `"a" b`},
		{`__stringify__(a -> b)`, `a -> b`},
		{`__stringify__((a + b))`, `(a + b)`},
	}
	for _, tt := range tests {
		out, _, err := expandSrc(t, tt.src, expand.Options{})
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if len(out) != 1 || !out[0].IsStringLit() {
			t.Errorf("%s: result = %v, want string literal", tt.src, out)
			continue
		}
		if out[0].Value != tt.want {
			t.Errorf("%s: value = %q, want %q", tt.src, out[0].Value, tt.want)
		}
	}
}

func TestReplaceNewline(t *testing.T) {
	out, _, err := expandSrc(t, "__repnl__(\"a\\n  b\\nc\", \"; \")", expand.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Value != "a; b; c" {
		t.Errorf("value = %q, want %q", out[0].Value, "a; b; c")
	}

	_, _, err = expandSrc(t, `__repnl__("only one")`, expand.Options{})
	wantCode(t, err, diag.ExpUnmatchedGroup)

	_, _, err = expandSrc(t, `__repnl__(ident, "r")`, expand.Options{})
	wantCode(t, err, diag.ExpNonLiteralArgument)
}

func TestStrReplace(t *testing.T) {
	out, _, err := expandSrc(t, `__repstr__("foo bar foo", "foo", "baz")`, expand.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Value != "baz bar baz" {
		t.Errorf("value = %q, want %q", out[0].Value, "baz bar baz")
	}

	// Non-overlapping, left to right: inserted text is not rescanned.
	out, _, err = expandSrc(t, `__str_replace__("aaa", "aa", "a")`, expand.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Value != "aa" {
		t.Errorf("value = %q, want %q", out[0].Value, "aa")
	}

	_, _, err = expandSrc(t, `__repstr__("a", "b", "c", "d")`, expand.Options{})
	wantCode(t, err, diag.ExpUnmatchedGroup)
}

func TestStrOpsAcceptInnerResults(t *testing.T) {
	// The inner directive runs first; its string literal feeds the outer op.
	out, _, err := expandSrc(t,
		`__repstr__(__string__("x-y"), "-", "_")`, expand.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Value != "x_y" {
		t.Errorf("value = %q, want %q", out[0].Value, "x_y")
	}
}
