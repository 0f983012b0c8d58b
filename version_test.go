package lined

import "testing"

func TestVersionFile(t *testing.T) {
	v := Version()
	if !IsSemver(v) {
		t.Fatalf("VERSION: got %q, want a SemVer release", v)
	}
	if got, want := VersionTag(), "lined v"+v; got != want {
		t.Fatalf("tag: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	for v, want := range map[string]bool{
		"0.1.0":            true,
		" 0.1.0\n":         true,
		"1.2.3-rc.1":       true,
		"1.0.0+sha.5114f8": true,
		"v1.2.3":           false,
		"1.2":              false,
		"1.02.3":           false,
		"":                 false,
	} {
		if got := IsSemver(v); got != want {
			t.Fatalf("IsSemver(%q): got %v, want %v", v, got, want)
		}
	}
}
