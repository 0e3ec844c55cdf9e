package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes proto messages. Marshalling is deterministic so equal
// messages yield equal phrases.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *pb.Ticket { return &pb.Ticket{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
