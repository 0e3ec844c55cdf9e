package codec

import "encoding/json"

// JSON serializes with encoding/json. Wordy: prefer CBOR or Msgpack when the
// phrase will be read by people.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
