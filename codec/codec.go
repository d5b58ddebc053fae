// Package codec centralizes value encoding for vectors.
//
// A codec is selected by its stable name; changing the codec of stored bytes is
// a breaking change, since bytes created by one codec do not decode with another.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	default:
		return nil, false
	}
}
