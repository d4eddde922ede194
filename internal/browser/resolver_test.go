package browser

import (
	"errors"
	"testing"
)

// fakeSource is a scripted Source for resolver tests.
type fakeSource struct {
	kind      Kind
	available bool
	cookies   []Cookie
	err       error
}

func (f *fakeSource) Kind() Kind        { return f.kind }
func (f *fakeSource) IsAvailable() bool { return f.available }

func (f *fakeSource) FetchCookies(domains []string) ([]Cookie, error) {
	return f.cookies, f.err
}

func TestResolveExplicitUnavailable(t *testing.T) {
	_, err := resolveExplicit(&fakeSource{kind: KindSafari})
	if err == nil {
		t.Fatal("resolveExplicit succeeded for unavailable source")
	}
	var nae *NotAvailableError
	if !errors.As(err, &nae) {
		t.Fatalf("error = %T, want *NotAvailableError", err)
	}
	if nae.Kind != KindSafari {
		t.Errorf("NotAvailableError.Kind = %q, want %q", nae.Kind, KindSafari)
	}
}

func TestResolveExplicitAvailable(t *testing.T) {
	want := &fakeSource{kind: KindChrome, available: true}
	got, err := resolveExplicit(want)
	if err != nil {
		t.Fatalf("resolveExplicit returned error: %v", err)
	}
	if got != Source(want) {
		t.Error("resolveExplicit did not return the given source")
	}
}

func TestResolveAutoPriority(t *testing.T) {
	// Chrome unavailable, Firefox and Edge available: Firefox wins
	// because it comes first in priority order.
	candidates := []Source{
		&fakeSource{kind: KindChrome},
		&fakeSource{kind: KindFirefox, available: true},
		&fakeSource{kind: KindSafari},
		&fakeSource{kind: KindEdge, available: true},
	}
	s, err := resolveAuto(candidates)
	if err != nil {
		t.Fatalf("resolveAuto returned error: %v", err)
	}
	if s.Kind() != KindFirefox {
		t.Errorf("resolveAuto picked %q, want %q", s.Kind(), KindFirefox)
	}
}

func TestResolveAutoNoneAvailable(t *testing.T) {
	candidates := []Source{
		&fakeSource{kind: KindChrome},
		&fakeSource{kind: KindFirefox},
		&fakeSource{kind: KindSafari},
		&fakeSource{kind: KindEdge},
	}
	_, err := resolveAuto(candidates)
	if err == nil {
		t.Fatal("resolveAuto succeeded with no available sources")
	}
	var nbe *NoBrowsersError
	if !errors.As(err, &nbe) {
		t.Fatalf("error = %T, want *NoBrowsersError", err)
	}
	if len(nbe.Attempted) != 4 {
		t.Errorf("NoBrowsersError lists %d kinds, want 4", len(nbe.Attempted))
	}
	for i, want := range []Kind{KindChrome, KindFirefox, KindSafari, KindEdge} {
		if nbe.Attempted[i] != want {
			t.Errorf("Attempted[%d] = %q, want %q", i, nbe.Attempted[i], want)
		}
	}
}

func TestResolveAutoDeterministic(t *testing.T) {
	candidates := []Source{
		&fakeSource{kind: KindChrome, available: true},
		&fakeSource{kind: KindFirefox, available: true},
	}
	for i := 0; i < 10; i++ {
		s, err := resolveAuto(candidates)
		if err != nil {
			t.Fatalf("resolveAuto returned error: %v", err)
		}
		if s.Kind() != KindChrome {
			t.Fatalf("resolveAuto picked %q on run %d, want %q", s.Kind(), i, KindChrome)
		}
	}
}
