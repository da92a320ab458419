// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// This package provides a driver for the Sensirion SHTC1 I2C
// temperature/humidity sensor.
//
// The device supports a high precision and a low power measurement mode,
// each available as a clock stretching command (the sensor holds the bus
// until the conversion completes) and as a plain command for callers that
// prefer to poll the result later. Results are protected by a CRC-8
// checksum per 16-bit word.
//
// Temperature is reported in 1/1000 degrees Celsius and humidity in 1/1000
// percent relative humidity, using the fixed point arithmetic from the
// vendor reference driver.
//
// # Datasheet
//
// https://sensirion.com/media/documents/643F9C8E/63A5A436/Datasheet_SHTC1.pdf
package shtc1
