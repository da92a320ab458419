// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package shtc1_test

import (
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/sensors/shtc1"
)

// Example shows creating an SHTC1 sensor and reading from it.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal("Error calling host.init()")
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := shtc1.NewI2C(bus, shtc1.DefaultAddress)
	if err != nil {
		log.Fatal(err)
	}
	if !dev.Detect() {
		log.Fatal("no SHTC1 found on the bus")
	}

	env := &physic.Env{}
	if err := dev.Sense(env); err != nil {
		log.Fatal(err)
	}
	log.Printf("Temperature: %s   Humidity: %s\n", env.Temperature, env.Humidity)

	// The same reading split into start and poll, in low power mode.
	if err := dev.Start(shtc1.LowPower); err != nil {
		log.Fatal(err)
	}
	// Callers own the wait between the two calls.
	m, err := dev.ReadResult()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Temperature: %dm°C   Humidity: %dm%%\n", m.Temperature, m.Humidity)
}
