package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ISODateFormat is the day format every order date is stored in.
const ISODateFormat = "2006-01-02"

// Layouts seen in marketplace exports. Day-first wins over month-first
// because Indian exports are day-first.
var dateLayouts = []string{
	ISODateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2/1/2006",
	"2-1-2006",
	"02-01-2006 15:04",
	"02/01/2006 15:04:05",
	"02 Jan 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Excel serials between 1954 and 2119; anything outside is treated as a plain number.
const (
	minExcelSerial = 20000
	maxExcelSerial = 80000
)

// NormalizeDate coerces a cell into a YYYY-MM-DD string, or nil when it is
// empty or not recognisable as a date.
func NormalizeDate(value any) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return formatDay(v)
	case float64:
		return fromExcelSerial(v)
	case int:
		return fromExcelSerial(float64(v))
	case string:
		return parseDateString(v)
	default:
		return nil
	}
}

func parseDateString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatDay(t)
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromExcelSerial(f)
	}
	return nil
}

func fromExcelSerial(serial float64) *string {
	if serial < minExcelSerial || serial > maxExcelSerial {
		return nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil
	}
	return formatDay(t)
}

func formatDay(t time.Time) *string {
	s := t.Format(ISODateFormat)
	return &s
}

// ParseDay parses a YYYY-MM-DD query parameter.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(ISODateFormat, strings.TrimSpace(s))
}
