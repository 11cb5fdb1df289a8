// Package savingsv1 defines the savings.v1.SavingsService wire contract:
// request and response messages, the service descriptor, a client, and the
// JSON codec both sides use. Amounts travel as decimal strings and dates as
// YYYY-MM-DD strings.
package savingsv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Codec is the content-subtype every call on this service uses.
const Codec = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec implements encoding.Codec with encoding/json.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("savingsv1: marshal %T: %w", v, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("savingsv1: unmarshal %T: %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return Codec
}
