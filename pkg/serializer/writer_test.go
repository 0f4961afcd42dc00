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

package serializer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type record struct {
	Model        string `json:"model" yaml:"model"`
	SerialNumber string `json:"serialNumber" yaml:"serialNumber"`
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestSerializeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatJSON, buf)

	require.NoError(t, w.Serialize(record{Model: "ProLiant DL380 Gen10", SerialNumber: "CZJ1234XYZ"}))

	var got record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ProLiant DL380 Gen10", got.Model)
	assert.Equal(t, "CZJ1234XYZ", got.SerialNumber)
}

func TestSerializeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatYAML, buf)

	require.NoError(t, w.Serialize(record{Model: "ProLiant DL380 Gen10"}))

	var got record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ProLiant DL380 Gen10", got.Model)
}

func TestSerializeTable(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	require.NoError(t, w.Serialize(record{Model: "ProLiant DL380 Gen10", SerialNumber: "CZJ1234XYZ"}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "Model")
	assert.Contains(t, out, "ProLiant DL380 Gen10")
	assert.Contains(t, out, "SerialNumber")
}

func TestSerializeTableEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(FormatTable, buf)

	require.NoError(t, w.Serialize(struct{}{}))
	assert.Equal(t, "<empty>", strings.TrimSpace(buf.String()))
}

func TestSerializeUnknownFormat(t *testing.T) {
	w := NewWriter(Format("xml"), &bytes.Buffer{})
	assert.Error(t, w.Serialize(record{}))
}

func TestNewWriterNilOutputDefaultsToStdout(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	require.NotNil(t, w)
	assert.NotNil(t, w.output)
}
