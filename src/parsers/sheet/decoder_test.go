package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/settlehub/src/models"
	"github.com/xuri/excelize/v2"
)

func TestDecode_CSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHeaders []string
		wantRows    []models.RawRow
	}{
		{
			name:        "header and one row",
			input:       "orderId,grossAmount,costPrice\nA1,500,200\n",
			wantHeaders: []string{"orderId", "grossAmount", "costPrice"},
			wantRows:    []models.RawRow{{"orderId": "A1", "grossAmount": "500", "costPrice": "200"}},
		},
		{
			name:        "bom, padding, blank lines and quoted commas",
			input:       "\xEF\xBB\xBF Order ID , Gross Amount \n\n  A1 ,\"1,234.50\"\n,\nA2,10\n",
			wantHeaders: []string{"Order ID", "Gross Amount"},
			wantRows: []models.RawRow{
				{"Order ID": "A1", "Gross Amount": "1,234.50"},
				{"Order ID": "A2", "Gross Amount": "10"},
			},
		},
		{
			name:        "short rows and duplicate headers",
			input:       "a,b,a,\n1\n2,3,4,5\n",
			wantHeaders: []string{"a", "b"},
			wantRows: []models.RawRow{
				{"a": "1", "b": ""},
				{"a": "2", "b": "3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, FormatCSV, s.Format)
			assert.Equal(t, tt.wantHeaders, s.Headers)
			assert.Equal(t, tt.wantRows, s.Rows)
		})
	}
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty buffer", input: nil},
		{name: "only blank lines", input: []byte("\n\n , \n")},
		{name: "header without data", input: []byte("orderId,grossAmount\n")},
		{name: "binary that is not utf-8", input: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0xFF}},
		{name: "zip signature but not a workbook", input: append([]byte("PK\x03\x04"), []byte("garbage")...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			assert.ErrorIs(t, err, ErrDecodeFailed)
		})
	}
}

func TestDecode_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Order ID", "Gross Amount", "Order Date", "Product"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"A1", 500, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "Mug"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"A2", 1234.5}))

	_, err := f.NewSheet("Ignored")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Ignored", "A1", "should not be read"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.True(t, IsXLSX(buf.Bytes()))

	s, err := Decode(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, FormatXLSX, s.Format)
	assert.Equal(t, []string{"Order ID", "Gross Amount", "Order Date", "Product"}, s.Headers)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, models.RawRow{"Order ID": "A1", "Gross Amount": "500", "Order Date": "2024-03-15", "Product": "Mug"}, s.Rows[0])
	assert.Equal(t, models.RawRow{"Order ID": "A2", "Gross Amount": "1234.5", "Order Date": "", "Product": ""}, s.Rows[1])
}

func TestDecode_XLSXExponentNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Order ID", "Other Fee"}))
	require.NoError(t, f.SetCellStr("Sheet1", "A2", "1E5"))
	require.NoError(t, f.SetCellDefault("Sheet1", "B2", "1.5E-2"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	s, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, models.RawRow{"Order ID": "1E5", "Other Fee": "0.015"}, s.Rows[0])
}

func TestDecode_XLSXHeaderOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Order ID", "Gross Amount"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = Decode(buf.Bytes())
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestIsDateNumFmt(t *testing.T) {
	custom := func(s string) *string { return &s }

	assert.True(t, isDateNumFmt(14, nil))
	assert.True(t, isDateNumFmt(22, nil))
	assert.False(t, isDateNumFmt(0, nil))
	assert.False(t, isDateNumFmt(2, nil))
	assert.True(t, isDateNumFmt(164, custom("dd/mm/yyyy")))
	assert.False(t, isDateNumFmt(165, custom("[Red]#,##0.00")))
	assert.False(t, isDateNumFmt(166, custom(`"Rs. day "0.00`)))
}
