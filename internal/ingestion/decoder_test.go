package ingestion

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DecoderTestSuite struct {
	suite.Suite
}

func TestDecoderSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}

func (s *DecoderTestSuite) TestDecode_RowCountAndWidth() {
	faker := gofakeit.New(42)

	for n := 0; n < 25; n += 6 {
		var b strings.Builder
		b.WriteString("a,b,c,d\n")
		for i := 0; i < n; i++ {
			// every other row drops its trailing fields
			if i%2 == 0 {
				fmt.Fprintf(&b, "%s,%d,%s,%s\n", faker.FirstName(), faker.Number(1, 99), faker.City(), faker.Word())
			} else {
				fmt.Fprintf(&b, "%s,%d\n", faker.FirstName(), faker.Number(1, 99))
			}
		}

		table, err := Decode(b.String())
		s.Require().NoError(err)
		s.Len(table.Rows, n)
		s.Empty(table.Errors)
		for _, row := range table.Rows {
			s.Len(row.Fields, 4)
		}
	}
}

func (s *DecoderTestSuite) TestDecode_PadsMissingTrailingFields() {
	table, err := Decode("a,b,c\nx\n")
	s.Require().NoError(err)
	s.Require().Len(table.Rows, 1)
	s.Equal([]string{"x", "", ""}, table.Rows[0].Fields)
}

func (s *DecoderTestSuite) TestDecode_KeepsLongRows() {
	table, err := Decode("a,b\n1,2,3\n")
	s.Require().NoError(err)
	s.Equal([]string{"1", "2", "3"}, table.Rows[0].Fields)
}

func (s *DecoderTestSuite) TestDecode_SkipsBlankLines() {
	table, err := Decode("\n\na,b\n\n1,2\n   \n3,4\n\n")
	s.Require().NoError(err)
	s.Equal(3, table.HeaderLine)
	s.Require().Len(table.Rows, 2)
	s.Equal(5, table.Rows[0].Line)
	s.Equal(7, table.Rows[1].Line)
}

func (s *DecoderTestSuite) TestDecode_CRLF() {
	table, err := Decode("a,b\r\n1,2\r\n")
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, table.Header)
	s.Equal([]string{"1", "2"}, table.Rows[0].Fields)
}

func (s *DecoderTestSuite) TestDecode_MalformedRowSkipped() {
	table, err := Decode("a,b\n1,2\n\"broken,3\n4,5\n")
	s.Require().NoError(err)

	s.Require().Len(table.Rows, 2)
	s.Equal("1", table.Rows[0].Field(0))
	s.Equal("4", table.Rows[1].Field(0))

	s.Require().Len(table.Errors, 1)
	s.Equal(3, table.Errors[0].Line)
	s.ErrorIs(table.Errors[0].Err, ErrUnterminatedQuote)
}

func (s *DecoderTestSuite) TestDecode_NoHeader() {
	_, err := Decode("")
	s.ErrorIs(err, ErrNoHeader)

	_, err = Decode("\n  \n")
	s.ErrorIs(err, ErrNoHeader)
}

func (s *DecoderTestSuite) TestDecode_MalformedHeader() {
	_, err := Decode("\"a,b\n1,2\n")
	s.Require().Error(err)

	var lineErr *LineError
	s.Require().True(errors.As(err, &lineErr))
	s.Equal(1, lineErr.Line)
	s.ErrorIs(err, ErrUnterminatedQuote)
	s.Equal("line 1: unterminated quoted field", err.Error())
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr error
	}{
		{name: "plain", line: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trims unquoted", line: " a , b ,c ", want: []string{"a", "b", "c"}},
		{name: "empty fields", line: "a,,", want: []string{"a", "", ""}},
		{name: "quoted comma and escaped quote", line: `1,"Rua ""A"", 10",x`, want: []string{"1", `Rua "A", 10`, "x"}},
		{name: "quoted keeps inner spaces", line: `" padded ",b`, want: []string{" padded ", "b"}},
		{name: "space before opening quote", line: `a,  "b,c"`, want: []string{"a", "b,c"}},
		{name: "space after closing quote", line: `"a"  ,b`, want: []string{"a", "b"}},
		{name: "empty quoted", line: `"",b`, want: []string{"", "b"}},
		{name: "unterminated", line: `a,"b`, wantErr: ErrUnterminatedQuote},
		{name: "quote inside unquoted", line: `ab"c,d`, wantErr: ErrUnexpectedQuote},
		{name: "text after closing quote", line: `"a"b,c`, wantErr: ErrUnexpectedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitLine(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRow_Field(t *testing.T) {
	row := Row{Line: 2, Fields: []string{"a"}}
	assert.Equal(t, "a", row.Field(0))
	assert.Equal(t, "", row.Field(1))
	assert.Equal(t, "", row.Field(-1))
}
