package domain

import "strings"

const UnknownDistrict = "Unknown"

var districtMentions = []struct {
	needles  []string
	district string
}{
	{[]string{"port louis"}, "Port Louis"},
	{[]string{"plaines wilhems", "curepipe", "quatre bornes"}, "Plaines Wilhems"},
	{[]string{"black river", "rivière noire"}, "Black River"},
	{[]string{"flacq"}, "Flacq"},
	{[]string{"grand port"}, "Grand Port"},
	{[]string{"moka"}, "Moka"},
	{[]string{"pamplemousses"}, "Pamplemousses"},
	{[]string{"rivière du rempart"}, "Rivière du Rempart"},
	{[]string{"savanne"}, "Savanne"},
}

// checked in order after the district names
var commonLocations = []struct {
	place    string
	district string
}{
	{"grand baie", "Rivière du Rempart"},
	{"flic en flac", "Black River"},
	{"tamarin", "Black River"},
	{"trou aux biches", "Pamplemousses"},
	{"belle mare", "Flacq"},
	{"mahebourg", "Grand Port"},
	{"rose hill", "Plaines Wilhems"},
	{"beau bassin", "Plaines Wilhems"},
	{"phoenix", "Plaines Wilhems"},
	{"vacoas", "Plaines Wilhems"},
	{"ebene", "Plaines Wilhems"},
	{"triolet", "Pamplemousses"},
	{"goodlands", "Rivière du Rempart"},
	{"surinam", "Savanne"},
	{"souillac", "Savanne"},
	{"chemin grenier", "Savanne"},
	{"le morne", "Black River"},
	{"trou d'eau douce", "Flacq"},
}

var districtRegions = map[string]string{
	"Port Louis":         "North",
	"Pamplemousses":      "North",
	"Rivière du Rempart": "North",
	"Flacq":              "East",
	"Grand Port":         "East",
	"Moka":               "Central",
	"Plaines Wilhems":    "Central",
	"Black River":        "West",
	"Savanne":            "South",
	UnknownDistrict:      "Unknown",
}

var districtPremiums = map[string]float64{
	"Port Louis":         0.65,
	"Pamplemousses":      0.70,
	"Rivière du Rempart": 0.85,
	"Flacq":              0.75,
	"Grand Port":         0.60,
	"Moka":               0.80,
	"Plaines Wilhems":    0.75,
	"Black River":        0.90,
	"Savanne":            0.50,
	UnknownDistrict:      0.50,
}

var touristDistricts = map[string]bool{
	"Black River":        true,
	"Rivière du Rempart": true,
	"Flacq":              true,
}

// ResolveDistrict maps a free-text Mauritius location to its district.
func ResolveDistrict(location string) string {
	loc := strings.ToLower(location)
	for _, m := range districtMentions {
		for _, n := range m.needles {
			if strings.Contains(loc, n) {
				return m.district
			}
		}
	}
	for _, c := range commonLocations {
		if strings.Contains(loc, c.place) {
			return c.district
		}
	}
	return UnknownDistrict
}

func RegionForDistrict(district string) string {
	if r, ok := districtRegions[district]; ok {
		return r
	}
	return "Unknown"
}

func DistrictPremium(district string) float64 {
	if p, ok := districtPremiums[district]; ok {
		return p
	}
	return districtPremiums[UnknownDistrict]
}

func IsTouristDistrict(district string) bool {
	return touristDistricts[district]
}

// EnrichLocation fills the district fields of a from its Location.
func EnrichLocation(a LocationAnalysis) LocationAnalysis {
	a.District = ResolveDistrict(a.Location)
	a.Region = RegionForDistrict(a.District)
	a.IsTouristArea = IsTouristDistrict(a.District)
	a.Premium = DistrictPremium(a.District)
	return a
}
