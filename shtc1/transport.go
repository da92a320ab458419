// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package shtc1

import (
	"periph.io/x/conn/v3/i2c"
)

// Transport is the bus capability the driver consumes. It exists so the
// driver can run over anything that can move bytes to a fixed 7-bit
// address: a kernel I2C bus, an MCU peripheral, or a scripted bus in tests.
type Transport interface {
	// Write sends buf to the device. stop controls whether a bus stop
	// condition is issued after the transfer. Measurement commands are sent
	// without a stop so the device can hold the bus until the conversion
	// completes.
	Write(buf []byte, stop bool) error
	// Read fills buf with len(buf) bytes from the device.
	Read(buf []byte) error
}

// I2CTransport adapts an i2c.Bus to the Transport capability.
//
// periph bus transactions always end with a stop condition, so the stop
// flag is accepted but cannot be acted on here. The SHTC1 tolerates the
// extra stop as long as the conversion delay is observed before the result
// read; transports that drive the bus directly should honor the flag.
type I2CTransport struct {
	d i2c.Dev
}

// NewI2CTransport returns a Transport backed by the given bus and address.
func NewI2CTransport(b i2c.Bus, addr i2c.Addr) *I2CTransport {
	return &I2CTransport{d: i2c.Dev{Bus: b, Addr: uint16(addr)}}
}

func (t *I2CTransport) Write(buf []byte, stop bool) error {
	return t.d.Tx(buf, nil)
}

func (t *I2CTransport) Read(buf []byte) error {
	return t.d.Tx(nil, buf)
}

var _ Transport = &I2CTransport{}
