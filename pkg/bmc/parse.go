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

import (
	"fmt"

	"github.com/NVIDIA/bmc-info/pkg/clp"
)

// assemble builds a SystemInformation record from the three raw CLP output
// blocks. Pure function: absent properties degrade to ValueUnknown, never
// to an error.
//
//   - systemText: output of "show /system1" (name, number)
//   - controllerText: output of "show /map1/firmware1" (name, version, date)
//   - romText: output of "show /system1/firmware1" (version, date)
func assemble(systemText, controllerText, romText string) SystemInformation {
	p := clp.NewParser()

	return SystemInformation{
		Model:                fieldOrUnknown(p, systemText, "name"),
		SerialNumber:         fieldOrUnknown(p, systemText, "number"),
		ControllerGeneration: fieldOrUnknown(p, controllerText, "name"),
		SystemROM:            firmwareIdentity(p, romText),
		ControllerFirmware:   firmwareIdentity(p, controllerText),
	}
}

func fieldOrUnknown(p *clp.Parser, block, key string) string {
	// A present-but-empty property is treated the same as an absent one.
	if v, ok := p.Field(block, key); ok && v != "" {
		return v
	}
	return ValueUnknown
}

// firmwareIdentity composes the version and date properties of a firmware
// block into a single display string: "<version> (<date>)" when both are
// present, whichever one is present otherwise, ValueUnknown when neither is.
func firmwareIdentity(p *clp.Parser, block string) string {
	version, _ := p.Field(block, "version")
	date, _ := p.Field(block, "date")

	switch {
	case version != "" && date != "":
		return fmt.Sprintf("%s (%s)", version, date)
	case version != "":
		return version
	case date != "":
		return date
	default:
		return ValueUnknown
	}
}
