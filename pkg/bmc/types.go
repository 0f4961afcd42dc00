// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bmc

const (
	// ValueUnknown is the per-field fallback when a property is absent
	// from otherwise valid controller output.
	ValueUnknown = "Unknown"

	// ValueUnavailable marks every field of a record produced while the
	// controller could not be queried at all.
	ValueUnavailable = "Unavailable"
)

// SystemInformation is the identity and firmware record for one managed
// server. It is a plain value: construct it and pass it around by copy.
type SystemInformation struct {
	// Model is the server product name, e.g. "ProLiant DL380 Gen10".
	Model string `json:"model" yaml:"model"`

	// SerialNumber is the chassis serial number.
	SerialNumber string `json:"serialNumber" yaml:"serialNumber"`

	// ControllerGeneration names the management processor, e.g. "iLO 5".
	ControllerGeneration string `json:"controllerGeneration" yaml:"controllerGeneration"`

	// SystemROM is the system ROM version and date, composed as
	// "<version> (<date>)" when both are reported.
	SystemROM string `json:"systemRom" yaml:"systemRom"`

	// ControllerFirmware is the management processor firmware version and
	// date, composed the same way as SystemROM.
	ControllerFirmware string `json:"controllerFirmware" yaml:"controllerFirmware"`
}

// Unavailable returns the fixed fallback record used when a fetch fails.
func Unavailable() SystemInformation {
	return SystemInformation{
		Model:                ValueUnavailable,
		SerialNumber:         ValueUnavailable,
		ControllerGeneration: ValueUnavailable,
		SystemROM:            ValueUnavailable,
		ControllerFirmware:   ValueUnavailable,
	}
}
