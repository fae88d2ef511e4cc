package recommendation_api_client

import "github.com/Dearie-de-cybek/PropTech/internal/core/domain"

type recommendationDTO struct {
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

type suggestResponseDTO struct {
	Recommendations []recommendationDTO `json:"recommendations"`
}

type similarPropertyDTO struct {
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

type similarResponseDTO struct {
	ReferenceProperty struct {
		PropertyID string  `json:"property_id"`
		Title      string  `json:"title"`
		Price      float64 `json:"price"`
	} `json:"reference_property"`
	SimilarProperties []similarPropertyDTO `json:"similar_properties"`
}

type pricePredictionDTO struct {
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
	Region         string  `json:"region"`
}

type forecastPointDTO struct {
	Month string  `json:"month"`
	Price float64 `json:"price"`
}

type priceForecastDTO struct {
	Location     string             `json:"location"`
	PropertyType string             `json:"property_type"`
	Months       int                `json:"months"`
	Forecast     []forecastPointDTO `json:"forecast"`
}

func (d suggestResponseDTO) toDomain() *domain.RecommendationList {
	out := &domain.RecommendationList{Recommendations: make([]domain.Recommendation, 0, len(d.Recommendations))}
	for _, r := range d.Recommendations {
		out.Recommendations = append(out.Recommendations, domain.Recommendation{
			PropertyID:      r.PropertyID,
			Title:           r.Title,
			Price:           r.Price,
			Location:        r.Location,
			Bedrooms:        r.Bedrooms,
			Bathrooms:       r.Bathrooms,
			PropertyType:    r.PropertyType,
			ImageURL:        r.ImageURL,
			Score:           r.Score,
			MatchPercentage: r.MatchPercentage,
		})
	}
	return out
}

func (d similarResponseDTO) toDomain() *domain.SimilarProperties {
	out := &domain.SimilarProperties{
		ReferenceProperty: domain.ReferenceProperty{
			PropertyID: d.ReferenceProperty.PropertyID,
			Title:      d.ReferenceProperty.Title,
			Price:      d.ReferenceProperty.Price,
		},
		SimilarProperties: make([]domain.SimilarProperty, 0, len(d.SimilarProperties)),
	}
	for _, s := range d.SimilarProperties {
		out.SimilarProperties = append(out.SimilarProperties, domain.SimilarProperty{
			PropertyID:      s.PropertyID,
			Title:           s.Title,
			Price:           s.Price,
			Location:        s.Location,
			Bedrooms:        s.Bedrooms,
			Bathrooms:       s.Bathrooms,
			PropertyType:    s.PropertyType,
			ImageURL:        s.ImageURL,
			SimilarityScore: s.SimilarityScore,
		})
	}
	return out
}

func (d priceForecastDTO) toDomain(q domain.PriceForecastQuery) *domain.PriceForecast {
	out := &domain.PriceForecast{
		Location:     d.Location,
		PropertyType: d.PropertyType,
		Months:       d.Months,
		Forecast:     make([]domain.ForecastPoint, 0, len(d.Forecast)),
	}
	// older service versions echo nothing back
	if out.Location == "" {
		out.Location = q.Location
	}
	if out.PropertyType == "" {
		out.PropertyType = q.PropertyType
	}
	if out.Months == 0 {
		out.Months = q.Months
	}
	for _, p := range d.Forecast {
		out.Forecast = append(out.Forecast, domain.ForecastPoint{Month: p.Month, Price: p.Price})
	}
	return out
}
