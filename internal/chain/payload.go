package chain

import (
	"github.com/go-viper/mapstructure/v2"
)

// Payload is the raw `data` object of a request body.
//
// It stays untyped until every validator has run, so checks see exactly
// what the client sent ("8" is not 8, 8.5 is not an integer).
type Payload map[string]any

// Envelope wraps every request and response body under a `data` key.
type Envelope struct {
	Data any `json:"data"`
}

// RequestEnvelope is the bind target for incoming bodies.
type RequestEnvelope struct {
	Data Payload `json:"data"`
}

// Value returns the raw value of field, nil when absent.
func (p Payload) Value(field string) any {
	if p == nil {
		return nil
	}
	return p[field]
}

// Omit returns a copy of the payload without keys.
func (p Payload) Omit(keys ...string) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Decode copies the payload into out using the json field names.
//
// Values are never coerced across JSON types: a bool or object sent for a
// string field is a decode error, not "1".
func (p Payload) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(p))
}
