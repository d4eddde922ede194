package browser

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"chrome", KindChrome},
		{"firefox", KindFirefox},
		{"safari", KindSafari},
		{"edge", KindEdge},
		{"Chrome", KindChrome},
		{"FIREFOX", KindFirefox},
		{"EdGe", KindEdge},
	}
	for _, c := range cases {
		got, err := ParseKind(c.in)
		if err != nil {
			t.Errorf("ParseKind(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseKind(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	for _, name := range []string{"", "brave", "opera", "chromium", "internet explorer"} {
		_, err := ParseKind(name)
		if err == nil {
			t.Errorf("ParseKind(%q) succeeded, want UnsupportedError", name)
			continue
		}
		var ue *UnsupportedError
		if !errors.As(err, &ue) {
			t.Errorf("ParseKind(%q) error = %T, want *UnsupportedError", name, err)
			continue
		}
		if ue.Name != name {
			t.Errorf("UnsupportedError.Name = %q, want %q", ue.Name, name)
		}
	}
}

func TestKindsPriorityOrder(t *testing.T) {
	want := []Kind{KindChrome, KindFirefox, KindSafari, KindEdge}
	got := Kinds()
	if len(got) != len(want) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
