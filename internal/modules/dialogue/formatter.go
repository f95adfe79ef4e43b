// README: Deterministic rendering of job results; the model never writes these.
package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"ankago/internal/modules/jobs"
)

// fieldSep joins the fields of one job line. Fixed so downstream tooling
// (and tests) can split replies mechanically.
const fieldSep = " | "

// FormatJobs renders a page of results as plain text, one job per line.
func FormatJobs(list []jobs.Job, params jobs.SearchParams, totalCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d yuk buldum abi:\n\n", totalCount)

	for i, j := range list {
		fmt.Fprintf(&b, "%d) %s\n", params.Offset+i+1, formatJobLine(j))
	}

	if params.Offset+len(list) < totalCount {
		b.WriteString("\nDevami icin 'devam' yaz abi.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatJobLine(j jobs.Job) string {
	fields := []string{formatRoute(j)}

	if j.WeightTons > 0 {
		fields = append(fields, trimZeros(j.WeightTons)+" ton")
	}
	if j.CargoType != "" {
		fields = append(fields, strings.ToLower(j.CargoType))
	}
	if j.VehicleType != "" {
		fields = append(fields, strings.ToLower(j.VehicleType))
	}
	if j.BodyType != "" {
		fields = append(fields, strings.ToLower(strings.ReplaceAll(j.BodyType, "_", " "))+" kasa")
	}
	if j.IsRefrigerated {
		fields = append(fields, "frigo")
	}
	if j.IsUrgent {
		fields = append(fields, "ACIL")
	}
	if j.ContactPhone != "" {
		fields = append(fields, "Tel: "+j.ContactPhone)
	}
	return strings.Join(fields, fieldSep)
}

func formatRoute(j jobs.Job) string {
	return formatEndpoint(j.OriginProvince, j.OriginDistrict) + " - " +
		formatEndpoint(j.DestinationProvince, j.DestinationDistrict)
}

func formatEndpoint(province, district string) string {
	if district != "" {
		return province + "/" + district
	}
	return province
}

// FormatNoResults names the exact filters that came up empty. A bare "yok"
// tells the driver nothing and hides filter bugs from operators.
func FormatNoResults(params jobs.SearchParams) string {
	var parts []string

	switch {
	case params.Origin != "" && params.Destination != "":
		parts = append(parts, formatEndpoint(params.Origin, params.OriginDistrict)+" - "+
			formatEndpoint(params.Destination, params.DestinationDistrict)+" arasi")
	case params.Origin != "":
		parts = append(parts, formatEndpoint(params.Origin, params.OriginDistrict)+" cikisli")
	case params.Destination != "":
		parts = append(parts, formatEndpoint(params.Destination, params.DestinationDistrict)+" varisli")
	}

	if params.IsRefrigerated {
		parts = append(parts, "frigo")
	}
	if params.BodyType != "" {
		parts = append(parts, strings.ToLower(strings.ReplaceAll(params.BodyType, "_", " ")))
	}
	if params.VehicleType != "" {
		parts = append(parts, strings.ToLower(params.VehicleType))
	}
	if params.CargoType != "" {
		parts = append(parts, strings.ToLower(params.CargoType))
	}

	if len(parts) == 0 {
		return "Su an uygun yuk bulamadim abi, birazdan tekrar bakabilirsin."
	}
	return "Su an " + strings.Join(parts, ", ") + " yuk bulamadim abi. Filtreyi genisletip tekrar deneyebilirsin."
}

// trimZeros renders a tonnage without trailing zeros: 15.0 -> "15", 0.7 -> "0.7".
func trimZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
