/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = Conversions{
	{Line: 1, Input: "5 3 +", Output: "$5 + 3$"},
	{Line: 2, Input: "5 @", Error: "Unexpected character '@'", Column: 3},
}

func TestNewOutputWriter(t *testing.T) {
	assert.IsType(t, CSVWriter{}, NewOutputWriter(nil, "csv"))
	assert.IsType(t, JSONWriter{}, NewOutputWriter(nil, "json"))
	assert.IsType(t, TextWriter{}, NewOutputWriter(nil, "text"))
	assert.IsType(t, TextWriter{}, NewOutputWriter(nil, "bogus"))
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputWriter(&buf, "csv").Write(sample))

	want := "line,input,output,error\n" +
		"1,5 3 +,$5 + 3$,\n" +
		"2,5 @,,column 3: Unexpected character '@'\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputWriter(&buf, "json").Write(sample))

	var decoded Conversions
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputWriter(&buf, "text").Write(sample))

	out := buf.String()
	assert.Contains(t, out, "$5 + 3$")
	assert.Contains(t, out, "5 @")
}
