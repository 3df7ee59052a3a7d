package rangecompile

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/dlclark/regexp2"
)

// mustMatch compiles frag anchored on both ends and reports whether it
// matches s, using regexp2 as an independent oracle engine: correctness
// is checked by exhaustive enumeration against a real regex engine, not
// by re-deriving the same algorithm.
func mustMatch(t *testing.T, frag, s string) bool {
	t.Helper()
	re, err := regexp2.Compile("^(?:"+frag+")$", regexp2.None)
	if err != nil {
		t.Fatalf("compiled fragment %q is not a valid regex: %v", frag, err)
	}
	ok, err := re.MatchString(s)
	if err != nil {
		t.Fatalf("match error: %v", err)
	}
	return ok
}

func TestCompileExhaustiveDecimal(t *testing.T) {
	cases := []struct{ lo, hi int }{
		{0, 9}, {0, 255}, {3, 99}, {17, 18}, {0, 0}, {100, 999}, {7, 7}, {0, 1000},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d-%d", c.lo, c.hi), func(t *testing.T) {
			frag, err := Compile(strconv.Itoa(c.lo), strconv.Itoa(c.hi), 10, 6)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			for n := 0; n <= c.hi+2 && n < 1200; n++ {
				want := n >= c.lo && n <= c.hi
				got := mustMatch(t, frag, strconv.Itoa(n))
				if got != want {
					t.Errorf("fragment %q: n=%d got match=%v want=%v", frag, n, got, want)
				}
			}
		})
	}
}

func TestCompileNoLeadingZeroMatch(t *testing.T) {
	frag, err := Compile("0", "255", 10, 6)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if mustMatch(t, frag, "007") {
		t.Errorf("fragment %q must not match zero-padded %q", frag, "007")
	}
	if !mustMatch(t, frag, "7") {
		t.Errorf("fragment %q must match %q", frag, "7")
	}
}

func TestCompileHex(t *testing.T) {
	frag, err := Compile("a", "1f", 16, 6)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for n := 0; n <= 0x25; n++ {
		s := strconv.FormatInt(int64(n), 16)
		want := n >= 0xa && n <= 0x1f
		got := mustMatch(t, frag, s)
		if got != want {
			t.Errorf("fragment %q: n=%#x (%q) got match=%v want=%v", frag, n, s, got, want)
		}
	}
}

func TestCompileRejectsInvertedBounds(t *testing.T) {
	if _, err := Compile("9", "1", 10, 6); err == nil {
		t.Fatal("expected error for lo > hi")
	}
}

func TestCompileRejectsTooManyDigits(t *testing.T) {
	_, err := Compile("0", "1000000", 10, 6)
	if err == nil {
		t.Fatal("expected RangeTooLarge error")
	}
	var tooLarge *TooLargeError
	if !asTooLarge(err, &tooLarge) {
		t.Fatalf("expected *TooLargeError, got %T: %v", err, err)
	}
}

func asTooLarge(err error, target **TooLargeError) bool {
	if tl, ok := err.(*TooLargeError); ok {
		*target = tl
		return true
	}
	return false
}

func TestCompileSingleValue(t *testing.T) {
	frag, err := Compile("42", "42", 10, 6)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if frag != "42" {
		t.Errorf("Compile(42,42) = %q, want a bare literal", frag)
	}
}
