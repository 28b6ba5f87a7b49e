package client

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain.txt", "plain.txt"},
		{"&", "&amp;"},
		{"<", "&lt;"},
		{">", "&gt;"},
		{`"`, "&quot;"},
		{"'", "&#039;"},
		{"&lt;", "&amp;lt;"},
		{`<img src=x onerror="alert('x')">`, "&lt;img src=x onerror=&quot;alert(&#039;x&#039;)&quot;&gt;"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in), "input %q", tt.in)
	}
}

func TestToFixed2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1, "1.00"},
		{0.5, "0.50"},
		{1.234, "1.23"},
		{5242881.0 / mib, "5.00"},
		{1.005, "1.00"},
		{0.145, "0.14"},
		{0.125, "0.13"},
		{0.375, "0.38"},
		{-0.125, "-0.13"},
		{12345.678, "12345.68"},
		{0.005, "0.01"},
		{1e15 + 0.125, "1000000000000000.13"},
		{-(1e15 + 0.375), "-1000000000000000.38"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toFixed2(tt.in), "input %v", tt.in)
	}
}

func TestRenderRow(t *testing.T) {
	row := RenderRow(UploadResult{Filename: "cat.jpg", SizeMB: 0.5, ContentType: "image/jpeg"})
	assert.Equal(t, "<tr><td>cat.jpg</td><td>0.50</td><td>image/jpeg</td></tr>", row)
}

func TestRenderRow_UnknownType(t *testing.T) {
	row := RenderRow(UploadResult{Filename: "blob", SizeMB: 1})
	assert.Equal(t, "<tr><td>blob</td><td>1.00</td><td>unknown</td></tr>", row)
}

func TestRenderRow_Escapes(t *testing.T) {
	row := RenderRow(UploadResult{Filename: `<b>"Tom & Jerry's"</b>`, SizeMB: 0.01, ContentType: "text/<x>"})
	assert.Equal(t,
		"<tr><td>&lt;b&gt;&quot;Tom &amp; Jerry&#039;s&quot;&lt;/b&gt;</td><td>0.01</td><td>text/&lt;x&gt;</td></tr>",
		row)

	rows, err := Rows(row)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{`<b>"Tom & Jerry's"</b>`, "0.01", "text/<x>"}, rows[0])
}

func TestRows_Empty(t *testing.T) {
	rows, err := Rows("")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUploadResult_SizeCoercion(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"filename":"a","size_mb":1.5}`, "1.50"},
		{`{"filename":"a","size_mb":"1.5"}`, "1.50"},
		{`{"filename":"a","size_mb":" 2 "}`, "2.00"},
		{`{"filename":"a","size_mb":""}`, "0.00"},
		{`{"filename":"a","size_mb":null}`, "0.00"},
		{`{"filename":"a","size_mb":true}`, "1.00"},
		{`{"filename":"a","size_mb":"0x10"}`, "16.00"},
		{`{"filename":"a","size_mb":"1e400"}`, "Infinity"},
		{`{"filename":"a","size_mb":"big"}`, "NaN"},
		{`{"filename":"a","size_mb":"inf"}`, "NaN"},
		{`{"filename":"a","size_mb":[1]}`, "NaN"},
		{`{"filename":"a"}`, "NaN"},
	}
	for _, tt := range tests {
		var r UploadResult
		require.NoError(t, json.Unmarshal([]byte(tt.body), &r), tt.body)
		assert.Equal(t, tt.want, toFixed2(r.SizeMB), tt.body)
	}
}

func TestUploadResult_KeepsFields(t *testing.T) {
	var r UploadResult
	require.NoError(t, json.Unmarshal([]byte(`{"filename":"cat.jpg","size_mb":"0.5","content_type":"image/jpeg"}`), &r))
	assert.Equal(t, "<tr><td>cat.jpg</td><td>0.50</td><td>image/jpeg</td></tr>", RenderRow(r))
}
