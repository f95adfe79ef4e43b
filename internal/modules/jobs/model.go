// README: Freight job records and search filter parameters.
package jobs

import (
	"time"

	"ankago/internal/types"
)

// Vehicle types drivers post with.
const (
	VehicleTIR      = "TIR"
	VehicleKamyon   = "KAMYON"
	VehicleKamyonet = "KAMYONET"
)

// Body types.
const (
	BodyAcik     = "ACIK"
	BodyKapali   = "KAPALI"
	BodyTenteli  = "TENTELI"
	BodyDamperli = "DAMPERLI"
)

type Job struct {
	ID                  types.ID
	OriginProvince      string
	OriginDistrict      string
	DestinationProvince string
	DestinationDistrict string
	VehicleType         string
	BodyType            string
	CargoType           string
	WeightTons          float64
	IsRefrigerated      bool
	IsUrgent            bool
	ContactPhone        string
	PostedAt            time.Time
}

// SearchParams is built fresh per search and never mutated once passed to
// Search. Empty string / false / zero mean "no filter".
type SearchParams struct {
	Origin              string
	Destination         string
	OriginDistrict      string
	DestinationDistrict string
	VehicleType         string
	BodyType            string
	CargoType           string
	IsRefrigerated      bool
	IsUrgent            bool
	MaxWeightTons       float64
	Limit               int
	Offset              int
}

type SearchResult struct {
	Jobs       []Job
	TotalCount int
}
