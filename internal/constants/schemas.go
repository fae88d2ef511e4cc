package constants

// Keys of the embedded JSON schemas, "<Name>/<version>".
const (
	SchemaPreferencesV1     = "RecommendationPreferences/1.0.0"
	SchemaPricePredictionV1 = "PricePredictionInput/1.0.0"
)
