// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package shtc1

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/sensors/common"
)

// Mode selects the measurement mode.
type Mode int

const (
	// HighPrecision takes about 14.4ms to convert.
	HighPrecision Mode = iota
	// LowPower takes about 0.94ms to convert at reduced repeatability.
	LowPower
)

// DefaultAddress is the fixed I2C address of the SHTC1.
const DefaultAddress i2c.Addr = 0x70

type devCommand []byte

// All measurement commands return T (CRC) RH (CRC).
var (
	measureHPMClockStretch = devCommand{0x7c, 0xa2}
	measureHPM             = devCommand{0x78, 0x66}
	measureLPMClockStretch = devCommand{0x64, 0x58}
	measureLPM             = devCommand{0x60, 0x9c}
	softReset              = devCommand{0x80, 0x5d}
	readIDRegister         = devCommand{0xef, 0xc8}
)

// Command lookup per Mode.
var measureClockStretch = []devCommand{measureHPMClockStretch, measureLPMClockStretch}
var measureNoStretch = []devCommand{measureHPM, measureLPM}

const (
	idRegisterMask    byte = 0x1f
	idRegisterContent byte = 0x07

	// Worst case conversion time, waited out for every mode.
	conversionDelay = 50 * time.Millisecond
)

// ErrBadData is returned when a measurement frame fails its CRC check. The
// transfer itself succeeded but the payload must not be trusted.
var ErrBadData = errors.New("shtc1: measurement failed crc check")

// Measurement holds one converted sensor reading.
type Measurement struct {
	// Temperature in 1/1000 degrees Celsius.
	Temperature int32
	// Humidity in 1/1000 percent relative humidity.
	Humidity int32
}

// Env populates e with the measurement in physic units. Pressure is zeroed,
// the SHTC1 does not measure it.
func (m Measurement) Env(e *physic.Env) {
	e.Temperature = physic.ZeroCelsius + physic.Temperature(m.Temperature)*physic.MilliKelvin
	e.Humidity = physic.RelativeHumidity(m.Humidity) * physic.MilliRH
	e.Pressure = 0
}

// Dev represents an SHTC1 sensor behind a Transport.
//
// Every call is self-contained and synchronous. The driver keeps no timers,
// goroutines or locks; callers sharing a Dev across goroutines must
// serialize access themselves, since the device holds the bus during clock
// stretching commands.
type Dev struct {
	t     Transport
	sleep func(time.Duration)
}

// New returns a driver for a sensor reachable through t.
func New(t Transport) (*Dev, error) {
	return &Dev{t: t, sleep: time.Sleep}, nil
}

// NewI2C returns a driver for a sensor on the given I2C bus. Use
// DefaultAddress unless the bus sits behind an address translator.
func NewI2C(b i2c.Bus, addr i2c.Addr) (*Dev, error) {
	return New(NewI2CTransport(b, addr))
}

func (m Mode) command(set []devCommand) (devCommand, error) {
	if m < HighPrecision || m > LowPower {
		return nil, fmt.Errorf("shtc1: invalid measurement mode %d", int(m))
	}
	return set[m], nil
}

// Measure performs a blocking measurement: it issues the clock stretching
// command for mode, waits out the worst case conversion time and reads the
// result.
func (d *Dev) Measure(mode Mode) (Measurement, error) {
	cmd, err := mode.command(measureClockStretch)
	if err != nil {
		return Measurement{}, err
	}
	werr := d.t.Write(cmd, false)
	// The delay runs before the write status is inspected. The device needs
	// the conversion time even when the command was only partially clocked
	// out, and the reference driver orders it this way.
	d.sleep(conversionDelay)
	if werr != nil {
		return Measurement{}, fmt.Errorf("shtc1: error transmitting measure command %w", werr)
	}
	return d.ReadResult()
}

// Start begins a measurement and returns immediately. The caller must wait
// at least the conversion time before calling ReadResult; the driver keeps
// no state between the two calls.
func (d *Dev) Start(mode Mode) error {
	cmd, err := mode.command(measureNoStretch)
	if err != nil {
		return err
	}
	if err := d.t.Write(cmd, false); err != nil {
		return fmt.Errorf("shtc1: error starting measurement %w", err)
	}
	return nil
}

// ReadResult reads out a measurement previously started with Start. Both
// halves of the frame carry their own checksum and both must match for the
// frame to be accepted.
func (d *Dev) ReadResult() (Measurement, error) {
	var frame [6]byte
	if err := d.t.Read(frame[:]); err != nil {
		return Measurement{}, fmt.Errorf("shtc1: error reading measurement %w", err)
	}
	return decode(frame[:])
}

// decode validates and converts a raw 6 byte measurement frame. Shared by
// the blocking and the start/poll paths so both produce identical results
// for identical frames.
func decode(frame []byte) (Measurement, error) {
	if !common.CheckCRC8(frame[0:2], frame[2]) || !common.CheckCRC8(frame[3:5], frame[5]) {
		return Measurement{}, ErrBadData
	}
	st := uint16(frame[0])<<8 | uint16(frame[1])
	srh := uint16(frame[3])<<8 | uint16(frame[4])
	return Measurement{
		Temperature: rawToMilliCelsius(st),
		Humidity:    rawToMilliPercent(srh),
	}, nil
}

// T = 175 * S / 2^16 - 45, scaled by 1000 and folded into one multiply and
// one shift. The product fits 32 bits for all raw codes.
func rawToMilliCelsius(raw uint16) int32 {
	return ((21875 * int32(raw)) >> 13) - 45000
}

// RH = 100 * S / 2^16, scaled by 1000, same folding.
func rawToMilliPercent(raw uint16) int32 {
	return (12500 * int32(raw)) >> 13
}

// Reset issues a soft reset. All device state machines restart and
// calibration data is reloaded. Unlike measurement commands the reset is
// sent with a normal stop condition.
func (d *Dev) Reset() error {
	if err := d.t.Write(softReset, true); err != nil {
		return fmt.Errorf("shtc1: error resetting %w", err)
	}
	return nil
}

// Detect reads the identification register and reports whether an SHTC1
// answered with the expected signature. Any failure along the way collapses
// to false; probing is advisory.
func (d *Dev) Detect() bool {
	// The write status is intentionally not checked. The probe stands or
	// falls on the read below, matching the reference driver even under
	// partial bus failures.
	_ = d.t.Write(readIDRegister, false)
	d.sleep(conversionDelay)
	var id [3]byte
	if err := d.t.Read(id[:]); err != nil {
		return false
	}
	if !common.CheckCRC8(id[0:2], id[2]) {
		return false
	}
	return id[1]&idRegisterMask == idRegisterContent
}

// Sense reads temperature and humidity in high precision mode. Implements
// the physic.SenseEnv read path; pressure is always 0.
func (d *Dev) Sense(e *physic.Env) error {
	m, err := d.Measure(HighPrecision)
	if err != nil {
		return err
	}
	m.Env(e)
	return nil
}

// Precision returns the smallest change in readings the driver reports.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.MilliKelvin
	e.Humidity = physic.MilliRH
	e.Pressure = 0
}

// Halt implements conn.Resource. The driver runs nothing in the
// background, so there is nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return "shtc1"
}

var _ conn.Resource = &Dev{}
