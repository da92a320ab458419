// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation
package common

// CRC8 calculates the 8-bit CRC of the byte slice parameter and returns the
// calculated value. CRC bytes are used in sensors from TI and Sensirion.
// Polynomial 0x31, initial value 0xff, MSB first, no reflection, no final
// xor.
func CRC8(bytes []byte) byte {
	var crc byte = 0xff
	for _, val := range bytes {
		crc ^= val
		for i := 0; i < 8; i++ {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (byte)((crc << 1) ^ 0x31)
			}
		}
	}
	return crc
}

// CheckCRC8 reports whether checksum matches the CRC8 of data. Sensirion
// devices append one checksum byte to every two bytes of payload; callers
// pass the payload pair and the trailing byte.
func CheckCRC8(data []byte, checksum byte) bool {
	return CRC8(data) == checksum
}
