package port

// PayloadValidatorPort checks an inbound JSON document against a named schema.
type PayloadValidatorPort interface {
	Validate(schemaKey string, body []byte) error
}
