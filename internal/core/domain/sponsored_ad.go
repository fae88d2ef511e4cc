package domain

const (
	DefaultCTAText = "Learn More"
	DefaultCTAURL  = "#"
)

// SponsoredAd is a paid placement shown between listing cards.
type SponsoredAd struct {
	ID             int64  `json:"id"`
	Image          string `json:"image"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	CTAText        string `json:"ctaText,omitempty"`
	CTAURL         string `json:"ctaUrl,omitempty"`
	AdvertiserName string `json:"advertiserName"`
	AdvertiserLogo string `json:"advertiserLogo"`
}

// WithDefaults fills the call to action when the advertiser left it empty.
func (a SponsoredAd) WithDefaults() SponsoredAd {
	if a.CTAText == "" {
		a.CTAText = DefaultCTAText
	}
	if a.CTAURL == "" {
		a.CTAURL = DefaultCTAURL
	}
	return a
}
