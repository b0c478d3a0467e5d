// Package notification decodes raw motion notifications from a pointing
// device's gesture channel.
//
// A notification is a fixed-layout binary payload of big-endian signed
// 16-bit fields: key, marker, dx, dy. The marker classifies the payload:
// -1 is an incremental sample carrying a motion delta since the previous
// sample, 0 is a terminal sample carrying the complete accumulated vector,
// and every other value is reserved. Terminal payloads may carry one extra
// trailing 16-bit field which this package tolerates and ignores.
package notification

import (
	"encoding/binary"
	"errors"
)

// Wire layout byte offsets.
const (
	offKey    = 0
	offMarker = 2
	offDX     = 4
	offDY     = 6

	// MinLen is the smallest valid payload length in bytes.
	MinLen = 8
)

// Marker values that classify a notification.
const (
	// MarkerIncremental marks a mid-gesture sample; dx/dy are deltas.
	MarkerIncremental int16 = -1

	// MarkerTerminal marks gesture completion; dx/dy hold the full vector.
	MarkerTerminal int16 = 0
)

// ErrTruncated indicates a payload shorter than the fixed wire layout.
var ErrTruncated = errors.New("notification payload truncated")

// Kind classifies a decoded notification.
type Kind uint8

const (
	// KindReserved covers marker values with no assigned meaning.
	KindReserved Kind = iota

	// KindIncremental is a mid-gesture delta sample.
	KindIncremental

	// KindTerminal is a gesture completion sample.
	KindTerminal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindIncremental:
		return "incremental"
	case KindTerminal:
		return "terminal"
	default:
		return "reserved"
	}
}

// Notification is one decoded gesture sample. It is an ephemeral value,
// never persisted.
type Notification struct {
	// Key identifies the control that produced the sample.
	Key int16

	// Marker classifies the sample; see MarkerIncremental and MarkerTerminal.
	Marker int16

	// DX is the horizontal motion component.
	DX int16

	// DY is the vertical motion component. Screen coordinates: negative
	// values move up.
	DY int16
}

// Decode parses a raw payload into a Notification. Payloads shorter than
// MinLen return ErrTruncated; extra trailing bytes are ignored.
func Decode(payload []byte) (Notification, error) {
	if len(payload) < MinLen {
		return Notification{}, ErrTruncated
	}
	return Notification{
		Key:    int16(binary.BigEndian.Uint16(payload[offKey:])),
		Marker: int16(binary.BigEndian.Uint16(payload[offMarker:])),
		DX:     int16(binary.BigEndian.Uint16(payload[offDX:])),
		DY:     int16(binary.BigEndian.Uint16(payload[offDY:])),
	}, nil
}

// Kind classifies the notification by its marker value.
func (n Notification) Kind() Kind {
	switch n.Marker {
	case MarkerIncremental:
		return KindIncremental
	case MarkerTerminal:
		return KindTerminal
	default:
		return KindReserved
	}
}
