// README: Vehicle/body/cargo filter extraction from message tokens.
package dialogue

import (
	"ankago/internal/modules/jobs"
)

// filterSet is what the current message says about secondary filters.
// Filters are never carried across searches (see the controller), so this is
// always message-local.
type filterSet struct {
	VehicleType    string
	BodyType       string
	CargoType      string
	IsRefrigerated bool
}

func (f filterSet) any() bool {
	return f.VehicleType != "" || f.BodyType != "" || f.CargoType != "" || f.IsRefrigerated
}

// Whole-token matching: "tir" as a substring would hit "getir".
var vehicleKeywords = map[string]string{
	"tir":      jobs.VehicleTIR,
	"kamyonet": jobs.VehicleKamyonet,
	"kamyon":   jobs.VehicleKamyon,
}

var bodyKeywords = map[string]string{
	"tenteli":  jobs.BodyTenteli,
	"damperli": jobs.BodyDamperli,
	"acik":     jobs.BodyAcik,
	"kapali":   jobs.BodyKapali,
}

var cargoKeywords = map[string]string{
	"parsiyel": "parsiyel",
	"paletli":  "paletli",
	"palet":    "paletli",
	"komple":   "komple",
}

var refrigeratedKeywords = map[string]struct{}{
	"frigorifik": {},
	"frigo":      {},
	"sogutuculu": {},
}

// extractFilters scans normalized tokens for filter keywords. First hit per
// category wins.
func extractFilters(tokens []string) filterSet {
	var f filterSet
	for _, tok := range tokens {
		if f.VehicleType == "" {
			if v, ok := vehicleKeywords[tok]; ok {
				f.VehicleType = v
				continue
			}
		}
		if f.BodyType == "" {
			if v, ok := bodyKeywords[tok]; ok {
				f.BodyType = v
				continue
			}
		}
		if f.CargoType == "" {
			if v, ok := cargoKeywords[tok]; ok {
				f.CargoType = v
				continue
			}
		}
		if !f.IsRefrigerated {
			if _, ok := refrigeratedKeywords[tok]; ok {
				f.IsRefrigerated = true
			}
		}
	}
	return f
}
