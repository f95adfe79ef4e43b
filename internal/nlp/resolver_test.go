// README: Resolver tests (exclusion precedence, abbreviations, aliases, districts).
package nlp

import "testing"

// Every excluded jargon term must resolve to nil, even the ones that are
// also legitimate district names ("arac" is a district of Kastamonu).
func TestResolveExclusionSetWinsUnconditionally(t *testing.T) {
	for term := range excludedTerms {
		if got := Resolve(term); got != nil {
			t.Errorf("Resolve(%q) = %+v, want nil (excluded term)", term, got)
		}
	}
	if _, ok := districts["arac"]; !ok {
		t.Fatal("test precondition: 'arac' should exist in the district table")
	}
}

func TestResolveAbbreviations(t *testing.T) {
	cases := []struct{ in, province string }{
		{"ist", "Istanbul"},
		{"ank", "Ankara"},
		{"izm", "Izmir"},
	}
	for _, tc := range cases {
		got := Resolve(tc.in)
		if got == nil || got.Province != tc.province || got.District != "" {
			t.Errorf("Resolve(%q) = %+v, want province %q", tc.in, got, tc.province)
		}
	}
}

func TestResolveProvincesAndAliases(t *testing.T) {
	cases := []struct{ in, province string }{
		{"istanbul", "Istanbul"},
		{"urfa", "Sanliurfa"},
		{"antep", "Gaziantep"},
		{"maras", "Kahramanmaras"},
		{"izmit", "Kocaeli"},
		{"van", "Van"},
	}
	for _, tc := range cases {
		got := Resolve(tc.in)
		if got == nil || got.Province != tc.province {
			t.Errorf("Resolve(%q) = %+v, want province %q", tc.in, got, tc.province)
		}
	}
}

func TestResolveDistrictCarriesParentProvince(t *testing.T) {
	cases := []struct{ in, district, province string }{
		{"tuzla", "Tuzla", "Istanbul"},
		{"corlu", "Corlu", "Tekirdag"},
		{"gebze", "Gebze", "Kocaeli"},
		{"kocasinan", "Kocasinan", "Kayseri"},
	}
	for _, tc := range cases {
		got := Resolve(tc.in)
		if got == nil || got.District != tc.district || got.Province != tc.province {
			t.Errorf("Resolve(%q) = %+v, want %s/%s", tc.in, got, tc.province, tc.district)
		}
	}
}

// Dative and ablative suffixes soften a final k/p/t ("pendiğe" normalizes to
// "pendige" and strips to "pendig"); resolution must reverse that.
func TestResolveHardensSoftenedFinal(t *testing.T) {
	got := Resolve("pendig")
	if got == nil || got.District != "Pendik" || got.Province != "Istanbul" {
		t.Errorf("Resolve(%q) = %+v, want Istanbul/Pendik", "pendig", got)
	}
	if Resolve("xyzg") != nil {
		t.Error("hardening must not invent places")
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, in := range []string{"", "merhaba", "xyz", "burs"} {
		if got := Resolve(in); got != nil {
			t.Errorf("Resolve(%q) = %+v, want nil", in, got)
		}
	}
}
