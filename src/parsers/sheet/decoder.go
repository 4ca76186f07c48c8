// Package sheet turns an uploaded CSV or XLSX buffer into header-keyed rows.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/utils"
	"github.com/xuri/excelize/v2"
)

// ErrDecodeFailed means the buffer is neither a readable CSV nor a readable
// XLSX workbook, or it holds no data rows.
var ErrDecodeFailed = errors.New("unable to decode settlement file")

var zipSignature = []byte{'P', 'K', 0x03, 0x04}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sheet is a decoded file: the header row in file order plus one RawRow per data line.
type Sheet struct {
	Format  string
	Headers []string
	Rows    []models.RawRow
}

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// IsXLSX reports whether buf starts with a ZIP local-file header.
func IsXLSX(buf []byte) bool {
	return bytes.HasPrefix(buf, zipSignature)
}

// Decode detects the file type and decodes it.
func Decode(buf []byte) (*Sheet, error) {
	var (
		s   *Sheet
		err error
	)
	if IsXLSX(buf) {
		s, err = decodeXLSX(buf)
	} else {
		s, err = decodeCSV(buf)
	}
	if err != nil {
		return nil, err
	}
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("%w: file contains no data rows", ErrDecodeFailed)
	}
	return s, nil
}

func decodeCSV(buf []byte) (*Sheet, error) {
	buf = bytes.TrimPrefix(buf, utf8BOM)
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("%w: file is neither an Excel workbook nor UTF-8 CSV text", ErrDecodeFailed)
	}

	reader := csv.NewReader(bytes.NewReader(buf))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}
		records = append(records, record)
	}

	s, err := fromRecords(records, nil)
	if err != nil {
		return nil, err
	}
	s.Format = FormatCSV
	return s, nil
}

func decodeXLSX(buf []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no worksheets", ErrDecodeFailed)
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	dates := &dateCells{file: f, sheet: name, styles: map[int]bool{}}
	s, err := fromRecords(rows, dates.coerce)
	if err != nil {
		return nil, err
	}
	s.Format = FormatXLSX
	return s, nil
}

// cellFunc rewrites a data cell; row and col are 1-based sheet coordinates.
type cellFunc func(value string, row, col int) string

// fromRecords keys every data record by the first non-blank record. Blank
// header cells are dropped; the first of two identical headers wins.
func fromRecords(records [][]string, coerce cellFunc) (*Sheet, error) {
	headerIdx := -1
	for i, rec := range records {
		if !isBlank(rec) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrDecodeFailed)
	}

	type column struct {
		index int
		name  string
	}
	var cols []column
	seen := make(map[string]bool)
	for i, h := range records[headerIdx] {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		cols = append(cols, column{index: i, name: h})
	}

	s := &Sheet{Headers: make([]string, 0, len(cols))}
	for _, c := range cols {
		s.Headers = append(s.Headers, c.name)
	}

	for i := headerIdx + 1; i < len(records); i++ {
		rec := records[i]
		if isBlank(rec) {
			continue
		}
		row := make(models.RawRow, len(cols))
		for _, c := range cols {
			v := ""
			if c.index < len(rec) {
				v = strings.TrimSpace(rec[c.index])
			}
			if coerce != nil && v != "" {
				v = coerce(v, i+1, c.index+1)
			}
			row[c.name] = v
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// dateCells rewrites numeric cells: date-formatted serials become YYYY-MM-DD
// and exponent forms such as 1.5E-2 become plain decimals. Style lookups are
// cached per style id.
type dateCells struct {
	file   *excelize.File
	sheet  string
	styles map[int]bool
}

func (d *dateCells) coerce(value string, row, col int) string {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
		return value
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return value
	}
	if typ, err := d.file.GetCellType(d.sheet, cell); err == nil &&
		(typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString) {
		return value
	}
	if styleID, err := d.file.GetCellStyle(d.sheet, cell); err == nil && d.isDateStyle(styleID) {
		if day := utils.NormalizeDate(num); day != nil {
			return *day
		}
	}
	if strings.ContainsAny(value, "eE") {
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
	return value
}

func (d *dateCells) isDateStyle(styleID int) bool {
	if isDate, ok := d.styles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := d.file.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	d.styles[styleID] = isDate
	return isDate
}

// isDateNumFmt recognises the built-in date formats and custom formats with day or year tokens.
func isDateNumFmt(id int, custom *string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if custom == nil {
		return false
	}
	format := strings.ToLower(stripLiterals(*custom))
	return strings.ContainsAny(format, "dy")
}

// stripLiterals drops quoted text and [..] sections such as colours or locales.
func stripLiterals(format string) string {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range format {
		switch {
		case r == '"' && !inBracket:
			inQuote = !inQuote
		case r == '[' && !inQuote:
			inBracket = true
		case r == ']' && inBracket:
			inBracket = false
		case !inQuote && !inBracket:
			b.WriteRune(r)
		}
	}
	return b.String()
}
