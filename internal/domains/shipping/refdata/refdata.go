// Package refdata carries the static reference tables used to populate route
// and campaign forms: the served port list and human labels for the ledger's
// enums.
package refdata

// Port is one entry of the served-port table.
type Port struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

const (
	RegionCaribbean = "Caribbean"
	RegionUS        = "US"
)

var ports = []Port{
	{Name: "Kingston", Code: "KIN", Country: "Jamaica", Region: RegionCaribbean},
	{Name: "Montego Bay", Code: "MBJ", Country: "Jamaica", Region: RegionCaribbean},
	{Name: "Port-au-Prince", Code: "PAP", Country: "Haiti", Region: RegionCaribbean},
	{Name: "Santo Domingo", Code: "SDQ", Country: "Dominican Republic", Region: RegionCaribbean},
	{Name: "San Juan", Code: "SJU", Country: "Puerto Rico", Region: RegionCaribbean},
	{Name: "Bridgetown", Code: "BGI", Country: "Barbados", Region: RegionCaribbean},
	{Name: "Port of Spain", Code: "POS", Country: "Trinidad and Tobago", Region: RegionCaribbean},
	{Name: "Castries", Code: "SLU", Country: "Saint Lucia", Region: RegionCaribbean},
	{Name: "Pointe-à-Pitre", Code: "PTP", Country: "Guadeloupe", Region: RegionCaribbean},
	{Name: "Willemstad", Code: "CUR", Country: "Curaçao", Region: RegionCaribbean},
	{Name: "Nassau", Code: "NAS", Country: "Bahamas", Region: RegionCaribbean},
	{Name: "George Town", Code: "GCM", Country: "Cayman Islands", Region: RegionCaribbean},
	{Name: "Oranjestad", Code: "AUA", Country: "Aruba", Region: RegionCaribbean},
	{Name: "Philipsburg", Code: "SXM", Country: "Sint Maarten", Region: RegionCaribbean},
	{Name: "Road Town", Code: "TOV", Country: "British Virgin Islands", Region: RegionCaribbean},
	{Name: "Miami", Code: "MIA", Country: "United States", Region: RegionUS},
	{Name: "Fort Lauderdale", Code: "FLL", Country: "United States", Region: RegionUS},
	{Name: "Tampa", Code: "TPA", Country: "United States", Region: RegionUS},
	{Name: "Jacksonville", Code: "JAX", Country: "United States", Region: RegionUS},
	{Name: "New Orleans", Code: "MSY", Country: "United States", Region: RegionUS},
	{Name: "Houston", Code: "HOU", Country: "United States", Region: RegionUS},
	{Name: "Charleston", Code: "CHS", Country: "United States", Region: RegionUS},
	{Name: "Savannah", Code: "SAV", Country: "United States", Region: RegionUS},
	{Name: "Mobile", Code: "MOB", Country: "United States", Region: RegionUS},
	{Name: "Port Canaveral", Code: "COF", Country: "United States", Region: RegionUS},
}

// Ports returns a copy of the served-port table in display order.
func Ports() []Port {
	out := make([]Port, len(ports))
	copy(out, ports)
	return out
}

// PortByCode looks a port up by its three-letter code.
func PortByCode(code string) (Port, bool) {
	for _, p := range ports {
		if p.Code == code {
			return p, true
		}
	}
	return Port{}, false
}

// ContainerTypeLabels maps the ledger's container enum to display labels, in
// enum order.
var ContainerTypeLabels = []string{
	"20' Standard",
	"40' Standard",
	"40' High Cube",
	"45' High Cube",
	"20' Refrigerated",
	"40' Refrigerated",
}

// RefrigerationLabels maps the ledger's refrigeration enum to display labels,
// in enum order.
var RefrigerationLabels = []string{
	"None",
	"Standard",
	"Deep Freeze",
	"Climate Controlled",
}
