// README: Maps normalized stems to canonical provinces/districts with jargon exclusion.
package nlp

// Place is a resolved location. District is empty for province-level hits;
// district hits carry the parent province so both levels reach the search
// filter.
type Place struct {
	Province string
	District string
}

// Resolve maps a normalized stem to a place, or nil when it is not one.
// Check order is fixed and the exclusion check is unconditional: a jargon
// term that doubles as a district name ("arac") must never resolve, or every
// search mentioning a vehicle would grow a phantom endpoint.
func Resolve(stem string) *Place {
	if _, excluded := excludedTerms[stem]; excluded {
		return nil
	}
	if prov, ok := abbreviations[stem]; ok {
		return &Place{Province: prov}
	}
	if prov, ok := provinces[stem]; ok {
		return &Place{Province: prov}
	}
	if d, ok := districts[stem]; ok {
		return &Place{Province: d.Province, District: d.District}
	}
	if hard := hardenFinal(stem); hard != stem {
		return Resolve(hard)
	}
	return nil
}

// hardenFinal reverses Turkish final-consonant softening before a vowel
// suffix: "pendiğe" strips to "pendig", the dictionary holds "pendik".
func hardenFinal(stem string) string {
	if stem == "" {
		return stem
	}
	switch stem[len(stem)-1] {
	case 'g':
		return stem[:len(stem)-1] + "k"
	case 'b':
		return stem[:len(stem)-1] + "p"
	case 'd':
		return stem[:len(stem)-1] + "t"
	}
	return stem
}
