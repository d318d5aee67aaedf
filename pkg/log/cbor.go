package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// Trace files carry no header or framing: a file is a plain sequence of
// encoded Events, so sessions can append to it and readers stop at EOF.

type codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// traceCodec builds the encode and decode modes on first use.
var traceCodec = sync.OnceValues(func() (codec, error) {
	enc, err := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		return codec{}, fmt.Errorf("trace encoder: %w", err)
	}

	// Events are flat maps with one nested error map. A duplicate key or a
	// deeper structure means the file is not a trace.
	dec, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: 4,
	}.DecMode()
	if err != nil {
		return codec{}, fmt.Errorf("trace decoder: %w", err)
	}

	return codec{enc: enc, dec: dec}, nil
})

// EncodeEvent encodes a single Event.
func EncodeEvent(event Event) ([]byte, error) {
	c, err := traceCodec()
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(event)
}

// DecodeEvent decodes a single Event.
func DecodeEvent(data []byte) (Event, error) {
	c, err := traceCodec()
	if err != nil {
		return Event{}, err
	}

	var event Event
	if err := c.dec.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

func newEncoder(w io.Writer) (*cbor.Encoder, error) {
	c, err := traceCodec()
	if err != nil {
		return nil, err
	}
	return c.enc.NewEncoder(w), nil
}

func newDecoder(r io.Reader) (*cbor.Decoder, error) {
	c, err := traceCodec()
	if err != nil {
		return nil, err
	}
	return c.dec.NewDecoder(r), nil
}
