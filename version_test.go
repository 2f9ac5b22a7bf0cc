package reedit

import "testing"

func TestVersion_EmbeddedIsRelease(t *testing.T) {
	if got := Version(); got == devVersion || !IsSemver(got) {
		t.Fatalf("embedded version=%q, want a SemVer release", got)
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("tag=%q, want %q", got, want)
	}
}

func TestReleaseVersion(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "0.1.0\n", want: "0.1.0"},
		{raw: "  1.4.2-rc.1 ", want: "1.4.2-rc.1"},
		{raw: "v0.1.0", want: devVersion},
		{raw: "", want: devVersion},
		{raw: "1.2", want: devVersion},
	}
	for _, tc := range cases {
		if got := releaseVersion(tc.raw); got != tc.want {
			t.Fatalf("releaseVersion(%q)=%q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestIsSemver(t *testing.T) {
	cases := map[string]bool{
		"0.1.0":         true,
		"2.0.0+build.7": true,
		"01.2.3":        false,
		"1.2.3-":        false,
		"1.2.3 ":        false,
	}
	for v, want := range cases {
		if got := IsSemver(v); got != want {
			t.Fatalf("IsSemver(%q)=%v, want %v", v, got, want)
		}
	}
}
