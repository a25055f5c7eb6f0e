// ABOUTME: Sample element kinds and native format tags
// ABOUTME: Resolves element types to wire encodings in host byte order
package audio

import (
	"fmt"
	"reflect"

	"golang.org/x/sys/cpu"
)

// Sample is the closed set of element types a stream can carry.
// Any other element type is rejected by the compiler.
type Sample interface {
	~uint8 | ~int16 | ~int32 | ~float32
}

// SampleKind identifies one of the supported sample element encodings
type SampleKind int

const (
	KindU8 SampleKind = iota
	KindS16
	KindS32
	KindF32
)

// Width returns the size of one element in bytes
func (k SampleKind) Width() int {
	switch k {
	case KindU8:
		return 1
	case KindS16:
		return 2
	case KindS32, KindF32:
		return 4
	default:
		return 0
	}
}

func (k SampleKind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindS16:
		return "s16"
	case KindS32:
		return "s32"
	case KindF32:
		return "f32"
	default:
		return fmt.Sprintf("SampleKind(%d)", int(k))
	}
}

// KindOf resolves the element type S to its sample kind.
// Named types resolve through their underlying type.
func KindOf[S Sample]() SampleKind {
	switch reflect.TypeFor[S]().Kind() {
	case reflect.Uint8:
		return KindU8
	case reflect.Int16:
		return KindS16
	case reflect.Int32:
		return KindS32
	default:
		return KindF32
	}
}

// ByteOrder is the byte order of multi-byte sample encodings
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// HostByteOrder is the native byte order of the build target.
// cpu.IsBigEndian is fixed per GOARCH at compile time.
var HostByteOrder = hostByteOrder()

func hostByteOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// FormatTag is the wire encoding sent to the server.
// Values follow pa_sample_format_t.
type FormatTag int

const (
	FormatInvalid   FormatTag = -1
	FormatU8        FormatTag = 0
	FormatALaw      FormatTag = 1
	FormatULaw      FormatTag = 2
	FormatS16LE     FormatTag = 3
	FormatS16BE     FormatTag = 4
	FormatFloat32LE FormatTag = 5
	FormatFloat32BE FormatTag = 6
	FormatS32LE     FormatTag = 7
	FormatS32BE     FormatTag = 8
)

var formatNames = map[FormatTag]string{
	FormatU8:        "u8",
	FormatALaw:      "aLaw",
	FormatULaw:      "uLaw",
	FormatS16LE:     "s16le",
	FormatS16BE:     "s16be",
	FormatFloat32LE: "float32le",
	FormatFloat32BE: "float32be",
	FormatS32LE:     "s32le",
	FormatS32BE:     "s32be",
}

func (f FormatTag) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "invalid"
}

// SampleWidth returns the size of one sample of this encoding in bytes,
// or 0 for FormatInvalid
func (f FormatTag) SampleWidth() int {
	switch f {
	case FormatU8, FormatALaw, FormatULaw:
		return 1
	case FormatS16LE, FormatS16BE:
		return 2
	case FormatFloat32LE, FormatFloat32BE, FormatS32LE, FormatS32BE:
		return 4
	default:
		return 0
	}
}

// FormatOf maps a sample kind and byte order to its format tag.
// U8 has a single encoding regardless of order.
func FormatOf(kind SampleKind, order ByteOrder) FormatTag {
	big := order == BigEndian
	switch kind {
	case KindU8:
		return FormatU8
	case KindS16:
		if big {
			return FormatS16BE
		}
		return FormatS16LE
	case KindS32:
		if big {
			return FormatS32BE
		}
		return FormatS32LE
	case KindF32:
		if big {
			return FormatFloat32BE
		}
		return FormatFloat32LE
	default:
		return FormatInvalid
	}
}

// HostFormat maps a sample kind to its format tag in host byte order
func HostFormat(kind SampleKind) FormatTag {
	return FormatOf(kind, HostByteOrder)
}
