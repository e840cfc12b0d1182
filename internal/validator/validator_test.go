package validator

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidator_FirstErrorWins(t *testing.T) {
	t.Parallel()

	v := New()
	require.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "second message")
	v.Check(true, "author", "must be provided")

	require.False(t, v.Valid())
	require.True(t, v.Failed("title"))
	require.False(t, v.Failed("author"))
	require.Equal(t, "must be provided", v.Errors["title"])
}

func TestIn(t *testing.T) {
	t.Parallel()

	require.True(t, In("production", "development", "staging", "production"))
	require.False(t, In("prod", "development", "staging", "production"))
	require.False(t, In("x"))
}

func TestIsValidISBN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "isbn13 hyphenated", value: "978-0135957059", want: true},
		{name: "isbn13 bare", value: "9780135957059", want: true},
		{name: "isbn10 bare", value: "0201633612", want: true},
		{name: "isbn10 spaced", value: "0 201 63361 2", want: true},
		{name: "tab and newline stripped", value: "978\t0135957059\n", want: true},
		{name: "bad check digit still accepted", value: "978-0321146533", want: true},
		{name: "empty", value: "", want: false},
		{name: "only separators", value: "- -", want: false},
		{name: "11 digits", value: "01234567890", want: false},
		{name: "12 digits", value: "012345678901", want: false},
		{name: "14 digits", value: "01234567890123", want: false},
		{name: "isbn10 with X", value: "020163361X", want: false},
		{name: "letters", value: "invalid-isbn-123", want: false},
		{name: "non-ascii digits", value: "٠١٢٣٤٥٦٧٨٩", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsValidISBN(tc.value))
		})
	}
}

func TestIsValidISBN_DigitLengths(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 20; n++ {
		s := strings.Repeat("7", n)
		require.Equal(t, n == 10 || n == 13, IsValidISBN(s), "length %d", n)
	}
}

func TestValidPublishedYear(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		want   int
		wantOK bool
	}{
		{name: "lower bound", value: float64(1000), want: 1000, wantOK: true},
		{name: "upper bound", value: float64(2026), want: 2026, wantOK: true},
		{name: "typical", value: float64(1999), want: 1999, wantOK: true},
		{name: "int", value: 2008, want: 2008, wantOK: true},
		{name: "json number", value: json.Number("1994"), want: 1994, wantOK: true},
		{name: "below lower bound", value: float64(999)},
		{name: "past upper bound", value: float64(2027)},
		{name: "zero", value: float64(0)},
		{name: "negative", value: float64(-2000)},
		{name: "fraction", value: 1999.5},
		{name: "string", value: "1999"},
		{name: "bool", value: true},
		{name: "nil", value: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ValidPublishedYear(tc.value, now)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMaxPublishedYear(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2001, MaxPublishedYear(time.Date(2000, time.December, 31, 23, 0, 0, 0, time.UTC)))
}
