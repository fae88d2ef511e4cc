package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDistrict(t *testing.T) {
	cases := map[string]string{
		"Port Louis Waterfront":  "Port Louis",
		"Curepipe":               "Plaines Wilhems",
		"Villa in Grand Baie":    "Rivière du Rempart",
		"Tamarin bay":            "Black River",
		"FLIC EN FLAC":           "Black River",
		"Trou d'Eau Douce":       "Flacq",
		"Mahebourg":              "Grand Port",
		"Souillac":               "Savanne",
		"Ebene Cybercity":        "Plaines Wilhems",
		"somewhere in the ocean": "Unknown",
		"":                       "Unknown",
	}
	for in, want := range cases {
		assert.Equal(t, want, ResolveDistrict(in), "location %q", in)
	}
}

func TestRegionAndPremium(t *testing.T) {
	assert.Equal(t, "North", RegionForDistrict("Rivière du Rempart"))
	assert.Equal(t, "West", RegionForDistrict("Black River"))
	assert.Equal(t, "Unknown", RegionForDistrict("Atlantis"))
	assert.Equal(t, 0.90, DistrictPremium("Black River"))
	assert.Equal(t, 0.50, DistrictPremium("Atlantis"))
	assert.True(t, IsTouristDistrict("Flacq"))
	assert.False(t, IsTouristDistrict("Moka"))
}

func TestEnrichLocation(t *testing.T) {
	a := EnrichLocation(LocationAnalysis{Location: "Grand Baie"})
	assert.Equal(t, "Rivière du Rempart", a.District)
	assert.Equal(t, "North", a.Region)
	assert.True(t, a.IsTouristArea)
	assert.Equal(t, 0.85, a.Premium)
}

func TestClampRecommendationLimit(t *testing.T) {
	assert.Equal(t, 5, ClampRecommendationLimit(0))
	assert.Equal(t, 1, ClampRecommendationLimit(-3))
	assert.Equal(t, 20, ClampRecommendationLimit(50))
	assert.Equal(t, 7, ClampRecommendationLimit(7))
}
