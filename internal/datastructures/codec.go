package datastructures

import (
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ Sequence[string] = (*List[string])(nil)
	_ Sequence[string] = (*DequeList[string])(nil)

	_ msgpack.CustomEncoder = (*List[string])(nil)
	_ msgpack.CustomDecoder = (*List[string])(nil)
	_ msgpack.CustomEncoder = (*DequeList[string])(nil)
	_ msgpack.CustomDecoder = (*DequeList[string])(nil)
)

// EncodeMsgpack writes the list as a [left, right] msgpack array.
func (l *List[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeSequence[T](enc, l)
}

// DecodeMsgpack replaces the list with a snapshot written by EncodeMsgpack.
func (l *List[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeSequence[T](dec, l)
}

// EncodeMsgpack writes the list as a [left, right] msgpack array.
func (l *DequeList[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeSequence[T](enc, l)
}

// DecodeMsgpack replaces the list with a snapshot written by EncodeMsgpack.
func (l *DequeList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeSequence[T](dec, l)
}

func encodeSequence[T any](enc *msgpack.Encoder, s Sequence[T]) error {
	left, right := Split(s)
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.Encode(left); err != nil {
		return err
	}
	return enc.Encode(right)
}

// decodeSequence leaves s empty on error.
func decodeSequence[T any](dec *msgpack.Decoder, s Sequence[T]) error {
	s.Clear()
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("decode list snapshot: %w", err)
	}
	if n != 2 {
		return fmt.Errorf("decode list snapshot: expected 2 parts, got %d", n)
	}
	var left, right []T
	if err := dec.Decode(&left); err != nil {
		return fmt.Errorf("decode list snapshot left: %w", err)
	}
	if err := dec.Decode(&right); err != nil {
		return fmt.Errorf("decode list snapshot right: %w", err)
	}

	for _, value := range left {
		s.AddRightFront(value)
		if err := s.Advance(); err != nil {
			s.Clear()
			return err
		}
	}
	for _, value := range slices.Backward(right) {
		s.AddRightFront(value)
	}
	return nil
}
