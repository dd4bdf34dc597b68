package dates

import (
	"testing"
	"time"
)

func TestResolve_FixedLayout(t *testing.T) {
	got, ok := Resolve("01/15/2020 10:30:00", time.UTC)
	if !ok {
		t.Fatal("Resolve failed")
	}
	want := time.Date(2020, 1, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolve_IndependentOfHostTimezone(t *testing.T) {
	// The instant depends only on the passed location, never on time.Local.
	hostEast := time.FixedZone("HOST", 8*3600)
	inUTC, ok := Resolve("01/15/2020 10:30:00", time.UTC)
	if !ok {
		t.Fatal("Resolve failed")
	}
	inEast, ok := Resolve("01/15/2020 10:30:00", hostEast)
	if !ok {
		t.Fatal("Resolve failed")
	}
	if inUTC.UTC().Hour() != 10 {
		t.Errorf("UTC-anchored hour = %d, want 10", inUTC.UTC().Hour())
	}
	if inEast.UTC().Hour() != 2 {
		t.Errorf("east-anchored hour in UTC = %d, want 2", inEast.UTC().Hour())
	}
}

func TestResolve_AppleLongForm(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{
			"Saturday September 16,2023 5:27 PM GMT",
			time.Date(2023, 9, 16, 17, 27, 0, 0, time.UTC),
		},
		{
			"Wednesday January 1,2020 12:00 AM GMT",
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"Monday May 5,2014 9:03 AM UTC",
			time.Date(2014, 5, 5, 9, 3, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.in, time.UTC)
		if !ok {
			t.Errorf("Resolve(%q) failed", tc.in)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolve_Unresolvable(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"00/00/0000 00:00:00",
		"0/0/0000 0:0:0",
		"not a date",
		"13/45/2020 99:99:99",
		"Saturday September 16,2023 5:27 PM PST", // unexpected zone word
		"16.09.2023 17:27:00",                    // wrong separator
	}
	for _, in := range cases {
		if got, ok := Resolve(in, time.UTC); ok {
			t.Errorf("Resolve(%q) = %v, want unresolvable", in, got)
		}
	}
}

func TestResolve_PlaceholderIsNotEpoch(t *testing.T) {
	got, ok := Resolve("00/00/0000 00:00:00", time.UTC)
	if ok {
		t.Fatalf("placeholder resolved to %v", got)
	}
	if !got.IsZero() {
		t.Errorf("unresolvable result should be the zero time, got %v", got)
	}
}
