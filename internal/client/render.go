package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"text/template"

	"github.com/PuerkitoBio/goquery"
)

const mib = 1024 * 1024

const unknownType = "unknown"

// UploadResult is the JSON body of a successful upload
type UploadResult struct {
	Filename    string  `json:"filename"`
	SizeMB      float64 `json:"size_mb"`
	ContentType string  `json:"content_type,omitempty"`
}

// UnmarshalJSON accepts size_mb the way the page coerces it: numeric
// strings, booleans and null convert, a missing or unusable value is NaN.
func (r *UploadResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Filename    string          `json:"filename"`
		SizeMB      json.RawMessage `json:"size_mb"`
		ContentType string          `json:"content_type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = UploadResult{Filename: raw.Filename, SizeMB: coerceNumber(raw.SizeMB), ContentType: raw.ContentType}
	return nil
}

func coerceNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return math.NaN()
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return math.NaN()
	}
	switch v := v.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.Contains(s, "_") {
		return math.NaN()
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	// strconv also takes inf, nan and hex floats
	if strings.ContainsAny(s, "xXpPiInN") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

var rowTmpl = template.Must(template.New("row").Funcs(template.FuncMap{
	"esc":   EscapeHTML,
	"fixed": toFixed2,
}).Parse(`<tr><td>{{esc .Filename}}</td><td>{{fixed .SizeMB}}</td><td>{{esc .Type}}</td></tr>`))

// RenderRow renders the single results row for r
func RenderRow(r UploadResult) string {
	ct := r.ContentType
	if ct == "" {
		ct = unknownType
	}
	var b strings.Builder
	// the template only calls infallible funcs on a strings.Builder
	_ = rowTmpl.Execute(&b, struct {
		Filename string
		SizeMB   float64
		Type     string
	}{r.Filename, r.SizeMB, ct})
	return b.String()
}

// Rows parses table rows out of markup and returns their cell text
func Rows(markup string) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tbody>" + markup + "</tbody></table>"))
	if err != nil {
		return nil, fmt.Errorf("parse rows: %w", err)
	}
	var rows [][]string
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, td.Text())
		})
		rows = append(rows, cells)
	})
	return rows, nil
}

func formatMB(size int64) string {
	return toFixed2(float64(size) / mib)
}

// toFixed2 formats x with two decimals. strconv rounds exact ties to even;
// the page has always rounded them away from zero, so those are fixed up.
func toFixed2(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(x, 'f', 2, 64)

	t := new(big.Float).SetPrec(256).SetFloat64(x)
	t.Mul(t, big.NewFloat(1000))
	if !t.IsInt() {
		return s
	}
	i, _ := t.Int(nil)
	i.Abs(i)
	if new(big.Int).Rem(i, big.NewInt(10)).Int64() != 5 {
		return s
	}
	// hundredths, rounded up from the tie
	i.Add(i, big.NewInt(5)).Quo(i, big.NewInt(10))
	digits := i.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if x < 0 {
		out = "-" + out
	}
	return out
}
