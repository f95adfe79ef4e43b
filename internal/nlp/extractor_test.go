// README: Extractor tests (suffix routing, unmarked ordering, fallbacks, same-province).
package nlp

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ParsedLocations
	}{
		{
			name: "explicit suffixes",
			in:   "kayseriden istanbula yuk var mi",
			want: ParsedLocations{Origin: "Kayseri", Destination: "Istanbul"},
		},
		{
			name: "apostrophe suffixes",
			in:   "mardin'den van'a",
			want: ParsedLocations{Origin: "Mardin", Destination: "Van"},
		},
		{
			name: "two unmarked cities keep encounter order",
			in:   "istanbul ankara",
			want: ParsedLocations{Origin: "Istanbul", Destination: "Ankara"},
		},
		{
			name: "dash-joined route splits into two cities",
			in:   "ankara-izmir yuk var mi",
			want: ParsedLocations{Origin: "Ankara", Destination: "Izmir"},
		},
		{
			name: "double dash between cities",
			in:   "corlu--ankara",
			want: ParsedLocations{Origin: "Tekirdag", OriginDistrict: "Corlu", Destination: "Ankara"},
		},
		{
			name: "unmarked origin with marked destination",
			in:   "ankara izmire",
			want: ParsedLocations{Origin: "Ankara", Destination: "Izmir"},
		},
		{
			name: "unstripped token wins when the stem resolves nothing",
			in:   "bursa konya",
			want: ParsedLocations{Origin: "Bursa", Destination: "Konya"},
		},
		{
			name: "greedy suffix split backtracks to a shorter one",
			in:   "samsundan sinopa",
			want: ParsedLocations{Origin: "Samsun", Destination: "Sinop"},
		},
		{
			name: "softened final consonant hardens back",
			in:   "tuzladan pendige",
			want: ParsedLocations{Origin: "Istanbul", OriginDistrict: "Tuzla", Destination: "Istanbul", DestinationDistrict: "Pendik", SameProvince: true},
		},
		{
			name: "district resolves with parent province",
			in:   "corludan gebzeye",
			want: ParsedLocations{Origin: "Tekirdag", OriginDistrict: "Corlu", Destination: "Kocaeli", DestinationDistrict: "Gebze"},
		},
		{
			name: "same province endpoints flagged",
			in:   "tuzla pendik",
			want: ParsedLocations{Origin: "Istanbul", OriginDistrict: "Tuzla", Destination: "Istanbul", DestinationDistrict: "Pendik", SameProvince: true},
		},
		{
			name: "jargon never becomes a location",
			in:   "tir icin acik kasa yuk lazim",
			want: ParsedLocations{},
		},
		{
			name: "abbreviated cities",
			in:   "ist ank",
			want: ParsedLocations{Origin: "Istanbul", Destination: "Ankara"},
		},
		{
			name: "single origin only",
			in:   "adanadan yuk var mi",
			want: ParsedLocations{Origin: "Adana"},
		},
		{
			name: "turkish spelling normalizes",
			in:   "İstanbul'dan Çorlu'ya",
			want: ParsedLocations{Origin: "Istanbul", Destination: "Tekirdag", DestinationDistrict: "Corlu"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.in)
			if got != tc.want {
				t.Errorf("Extract(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}
