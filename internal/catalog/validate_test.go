package catalog

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"9:30", 570, false},
		{"19:00", 1140, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"7pm", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := parseClock(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseClock(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("parseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"ada@example.com", "a.b+tag@sub.domain.org"}
	invalid := []string{"", "plainaddress", "a@b", "a@b.c", "spaces in@example.com"}

	for _, s := range valid {
		if !validEmail(s) {
			t.Errorf("validEmail(%q) = false", s)
		}
	}
	for _, s := range invalid {
		if validEmail(s) {
			t.Errorf("validEmail(%q) = true", s)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"5551234567", "555-123-4567", "(555) 123-4567", "1-555-123-4567"}
	invalid := []string{"", "555-0199", "555123456x", "call me maybe"}

	for _, s := range valid {
		if !validPhone(s) {
			t.Errorf("validPhone(%q) = false", s)
		}
	}
	for _, s := range invalid {
		if validPhone(s) {
			t.Errorf("validPhone(%q) = true", s)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !validDate("2026-08-15") {
		t.Error("validDate rejected a well-formed date")
	}
	for _, s := range []string{"15-08-2026", "2026/08/15", "2026-13-01", "tomorrow"} {
		if validDate(s) {
			t.Errorf("validDate(%q) = true", s)
		}
	}
}
