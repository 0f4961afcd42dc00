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

// Package clp parses the semi-structured text output produced by SMASH CLP
// management processors.
//
// CLP output interleaves status lines, target paths, and indented
// key=value property lines:
//
//	status=0
//	status_tag=COMMAND COMPLETED
//
//	/system1
//	  Properties
//	    name=ProLiant DL380 Gen10
//	    number=CZJ1234XYZ
//
// The parser scans a raw output block line by line and extracts the value
// of a named property. Values keep everything after the first key=value
// delimiter verbatim (embedded spaces, punctuation, and further "="
// characters included), with surrounding whitespace and one layer of
// matching quotes removed.
package clp
