// Package endian provides byte order utilities for binary encoding and
// decoding, and the raw byte reinterpretation primitives described in the
// decoder's byte-primitives layer.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder into a unified EndianEngine interface, and
// adds DataType, the eight-width enumeration that every encoded column
// bottoms out on, plus Reinterpret, which turns a raw little-endian byte
// buffer into a typed NumericSequence.
//
// # Basic Usage
//
//	seq, err := endian.Reinterpret(rawBytes, endian.Int32)
//	if err != nil {
//	    // err wraps errs.ErrUnsupportedType or errs.ErrMalformedEncoding
//	}
//	fmt.Println(seq.Len(), seq.Int64At(0))
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The host
// endianness probe is computed once and cached.
package endian

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations. binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	hostOrderOnce sync.Once
	hostOrder     binary.ByteOrder
)

// CheckEndianness uses a fixed integer value to determine the host's byte
// order. The result is cached after the first call.
func CheckEndianness() binary.ByteOrder {
	hostOrderOnce.Do(func() {
		// 0x0100 is 256. For a little-endian system, the LSB (0x00) is
		// first. For a big-endian system, the MSB (0x01) is first.
		var i uint16 = 0x0100
		b := (*[2]byte)(unsafe.Pointer(&i))

		if b[0] == 0x01 {
			hostOrder = binary.BigEndian
		} else {
			hostOrder = binary.LittleEndian
		}
	})

	return hostOrder
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
