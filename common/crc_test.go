// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC8(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result byte
	}{
		// Sensirion application note test vector.
		{bytes: []byte{0xbe, 0xef}, result: 0x92},
		// SHTC1 datasheet example.
		{bytes: []byte{0x68, 0x3a}, result: 0xfd},
		{bytes: []byte{0x01, 0xa4}, result: 0x4d},
		{bytes: []byte{0xab, 0xcd}, result: 0x6f},
	}
	for _, test := range tests {
		res := CRC8(test.bytes)
		if res != test.result {
			t.Errorf("CRC8(%#v)!=%#x received %#x", test.bytes, test.result, res)
		}
	}
}

func TestCheckCRC8(t *testing.T) {
	if !CheckCRC8([]byte{0xbe, 0xef}, 0x92) {
		t.Error("CheckCRC8() rejected a valid checksum")
	}
	if CheckCRC8([]byte{0xbe, 0xef}, 0x93) {
		t.Error("CheckCRC8() accepted an invalid checksum")
	}
}
