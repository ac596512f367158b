package refcode

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateFormat(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		pattern string
	}{
		{"booking", PrefixBooking, `^SL-[0-9A-Z]+-[0-9A-Z]{8}$`},
		{"corporate", PrefixCorporate, `^CORP-[0-9A-Z]+-[0-9A-Z]{8}$`},
		{"registration", PrefixRegistration, `^REG-[0-9A-Z]+-[0-9A-Z]{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := Generate(tt.prefix)
			if code == "" {
				t.Fatal("expected non-empty code")
			}
			if code != strings.ToUpper(code) {
				t.Fatalf("expected uppercase code, got %q", code)
			}
			re := regexp.MustCompile(tt.pattern)
			if !re.MatchString(code) {
				t.Fatalf("code %q does not match %s", code, tt.pattern)
			}
		})
	}
}

func TestGenerateVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := Generate(PrefixBooking)
		if seen[code] {
			t.Fatalf("duplicate code generated within 100 draws: %q", code)
		}
		seen[code] = true
	}
}

func TestRandomSegmentLength(t *testing.T) {
	for _, length := range []int{1, 4, 8} {
		seg := randomSegment(length)
		if len(seg) != length {
			t.Fatalf("expected segment of length %d, got %q", length, seg)
		}
	}
}
