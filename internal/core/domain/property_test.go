package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyRecordValidate(t *testing.T) {
	assert.NoError(t, PropertyRecord{ID: 1, Price: 480000, Bedrooms: 3}.Validate())
	assert.ErrorIs(t, PropertyRecord{ID: 1, Price: -1}.Validate(), ErrInvalidPayload)
	assert.ErrorIs(t, PropertyRecord{ID: 1, Toilets: -2}.Validate(), ErrInvalidPayload)
	assert.ErrorIs(t, PropertyRecord{ID: 1, ImageCount: -1}.Validate(), ErrInvalidPayload)
}

func TestPropertyRecordHelpers(t *testing.T) {
	p := PropertyRecord{ID: 42, Address: "123 Main St, Springfield"}
	assert.Equal(t, "property-42", p.ElementID())
	assert.Equal(t, "123 Main St, Springfield", p.DisplayName())
	assert.Empty(t, p.CoverImage())

	p.Name = "La Rouge Maisonnette"
	p.Images = []string{"room1.jpg", "room2.jpg"}
	assert.Equal(t, "La Rouge Maisonnette", p.DisplayName())
	assert.Equal(t, "room1.jpg", p.CoverImage())
}

func TestSponsoredAdDefaults(t *testing.T) {
	ad := SponsoredAd{ID: 1, Title: "Premium Oceanview Property"}.WithDefaults()
	assert.Equal(t, "Learn More", ad.CTAText)
	assert.Equal(t, "#", ad.CTAURL)

	custom := SponsoredAd{CTAText: "Book a visit", CTAURL: "/visit"}.WithDefaults()
	assert.Equal(t, "Book a visit", custom.CTAText)
	assert.Equal(t, "/visit", custom.CTAURL)
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{StatusCode: 502, Body: "bad gateway"}
	assert.Equal(t, "upstream returned status 502: bad gateway", err.Error())
}
