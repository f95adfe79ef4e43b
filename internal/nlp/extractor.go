// README: Full-message location extraction; assembles origin/destination from tokens.
package nlp

import "strings"

// ParsedLocations is the once-per-message extraction result. Origin and
// Destination hold canonical province names; district fields are set when the
// user named a district. Immutable after Extract returns.
type ParsedLocations struct {
	Origin              string
	Destination         string
	OriginDistrict      string
	DestinationDistrict string
	SameProvince        bool
}

// HasOrigin reports whether an origin was resolved.
func (p ParsedLocations) HasOrigin() bool { return p.Origin != "" }

// HasDestination reports whether a destination was resolved.
func (p ParsedLocations) HasDestination() bool { return p.Destination != "" }

// HasAny reports whether at least one endpoint was resolved.
func (p ParsedLocations) HasAny() bool { return p.HasOrigin() || p.HasDestination() }

// Extract parses a raw message into origin/destination intent.
//
// Per token: clean punctuation, then walk the suffix split candidates and
// keep the first stem that resolves. The final candidate is the raw token
// with no marking, so "bursa" resolves as a place even though it ends in a
// dative vowel. The first origin-marked and first
// destination-marked hits stick. Unmarked hits queue up and fill the empty
// slots in encounter order, which models the elliptical "istanbul ankara"
// meaning from-to.
func Extract(message string) ParsedLocations {
	var out ParsedLocations
	var unmarked []*Place

	// Dashes and slashes split rather than strip: "ankara-izmir" is two
	// cities, and deleting the dash would weld them into one dead token.
	tokens := strings.FieldsFunc(Normalize(message), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '-' || r == '/'
	})

	for _, tok := range tokens {
		tok = CleanToken(tok)
		if len(tok) < 2 {
			continue
		}

		var res SuffixResult
		var place *Place
		for _, cand := range SplitCandidates(tok) {
			if p := Resolve(cand.Stem); p != nil {
				res, place = cand, p
				break
			}
		}
		if place == nil {
			continue
		}

		switch {
		case res.IsOrigin && out.Origin == "":
			out.Origin = place.Province
			out.OriginDistrict = place.District
		case res.IsDestination && out.Destination == "":
			out.Destination = place.Province
			out.DestinationDistrict = place.District
		case !res.IsOrigin && !res.IsDestination:
			unmarked = append(unmarked, place)
		}
	}

	for _, place := range unmarked {
		if out.Origin == "" {
			out.Origin = place.Province
			out.OriginDistrict = place.District
			continue
		}
		if out.Destination == "" {
			out.Destination = place.Province
			out.DestinationDistrict = place.District
		}
	}

	if out.Origin != "" && out.Origin == out.Destination {
		out.SameProvince = true
	}
	return out
}
