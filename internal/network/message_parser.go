package network

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var ErrMalformed = errors.New("malformed event")

func Unmarshal(b []byte) (*Event, error) {
	ev := &Event{}
	seenType := false

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldSeq && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fieldError("seq", m)
			}
			ev.Seq = int64(v)
			n = m

		case num == fieldType && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fieldError("type", m)
			}
			ev.Type = EventType(v)
			seenType = true
			n = m

		case num == fieldValue && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fieldError("value", m)
			}
			ev.Value = protowire.DecodeZigZag(v)
			n = m

		case num == fieldRunID && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fieldError("run id", m)
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return nil, fmt.Errorf("%w: run id: %v", ErrMalformed, err)
			}
			ev.RunID = id
			n = m

		case num == fieldTime && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fieldError("time", m)
			}
			ts := &timestamppb.Timestamp{}
			if err := proto.Unmarshal(v, ts); err != nil {
				return nil, fmt.Errorf("%w: time: %v", ErrMalformed, err)
			}
			ev.Time = ts.AsTime()
			n = m

		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fieldError(fmt.Sprintf("field %d", num), n)
			}
		}
		b = b[n:]
	}

	if !seenType {
		return nil, fmt.Errorf("%w: missing type", ErrMalformed)
	}
	return ev, nil
}

func fieldError(name string, code int) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, name, protowire.ParseError(code))
}
