package domain

// Preferences is the free-form preference document sent to the
// recommendation service. Known keys are validated against a JSON schema
// before the call; unknown keys pass through.
type Preferences map[string]interface{}

// Recommendation is one suggested property.
type Recommendation struct {
	PropertyID      string   `json:"property_id"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Location        string   `json:"location"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *float64 `json:"bathrooms"`
	PropertyType    string   `json:"property_type"`
	ImageURL        string   `json:"image_url"`
	Score           float64  `json:"score"`
	MatchPercentage float64  `json:"match_percentage"`
}

type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type ReferenceProperty struct {
	PropertyID string  `json:"property_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
}

type SimilarProperty struct {
	PropertyID      string   `json:"property_id"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Location        string   `json:"location"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *float64 `json:"bathrooms"`
	PropertyType    string   `json:"property_type"`
	ImageURL        string   `json:"image_url"`
	SimilarityScore float64  `json:"similarity_score"`
}

type SimilarProperties struct {
	ReferenceProperty ReferenceProperty `json:"reference_property"`
	SimilarProperties []SimilarProperty `json:"similar_properties"`
}

// PricePredictionInput is the property description priced by the service.
type PricePredictionInput map[string]interface{}

type PricePrediction struct {
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence,omitempty"`
	Region         string  `json:"region,omitempty"`
}

// LocationAnalysis is the upstream market analysis of a location plus the
// locally resolved district data.
type LocationAnalysis struct {
	Location      string                 `json:"location"`
	District      string                 `json:"district"`
	Region        string                 `json:"region"`
	IsTouristArea bool                   `json:"is_tourist_area"`
	Premium       float64                `json:"district_premium"`
	Market        map[string]interface{} `json:"market,omitempty"`
}

// PriceForecastQuery parameters. A zero Months means omitted and becomes 24.
type PriceForecastQuery struct {
	Location     string
	PropertyType string
	Months       int
}

const DefaultForecastMonths = 24

type ForecastPoint struct {
	Month string  `json:"month"`
	Price float64 `json:"price"`
}

type PriceForecast struct {
	Location     string          `json:"location"`
	PropertyType string          `json:"property_type"`
	Months       int             `json:"months"`
	Forecast     []ForecastPoint `json:"forecast"`
}

const (
	MinRecommendationLimit     = 1
	MaxRecommendationLimit     = 20
	DefaultRecommendationLimit = 5
)

// ClampRecommendationLimit maps 0 to the default and keeps n within 1..20.
func ClampRecommendationLimit(n int) int {
	switch {
	case n == 0:
		return DefaultRecommendationLimit
	case n < MinRecommendationLimit:
		return MinRecommendationLimit
	case n > MaxRecommendationLimit:
		return MaxRecommendationLimit
	}
	return n
}
