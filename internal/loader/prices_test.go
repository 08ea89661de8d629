package loader

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadPrices_Basic(t *testing.T) {
	csv := `Date,Open,Close
02/01/2024,9.5,10
03/01/2024,10.1,11
04/01/2024,11.2,12
`
	load, err := ReadPrices(strings.NewReader(csv), PriceOptions{DayFirst: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(load.Series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(load.Series))
	}
	if len(load.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", load.Warnings)
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if !load.Series[0].Date.Equal(want) {
		t.Errorf("day-first date parsed as %s, want %s", load.Series[0].Date, want)
	}
	if load.Series[2].Close != 12 {
		t.Errorf("expected close 12, got %g", load.Series[2].Close)
	}
}

func TestReadPrices_CaseInsensitiveHeaders(t *testing.T) {
	csv := " DATE , close \n01/02/2024,10\n01/03/2024,11\n"
	load, err := ReadPrices(strings.NewReader(csv), PriceOptions{})
	if err != nil {
		t.Fatal(err)
	}
	// Month-first: 01/02 is the 2nd of January
	if load.Series[0].Date.Day() != 2 || load.Series[0].Date.Month() != time.January {
		t.Errorf("month-first date parsed as %s", load.Series[0].Date)
	}
}

func TestReadPrices_DropsInvalidRows(t *testing.T) {
	csv := `Date,Close
02/01/2024,10
not-a-date,11
03/01/2024,abc
04/01/2024,-5
05/01/2024,0
06/01/2024,12
`
	load, err := ReadPrices(strings.NewReader(csv), PriceOptions{DayFirst: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(load.Series) != 2 {
		t.Fatalf("expected 2 surviving points, got %d", len(load.Series))
	}
	if len(load.Warnings) != 4 {
		t.Errorf("expected a warning per dropped row, got %d: %v", len(load.Warnings), load.Warnings)
	}
}

func TestReadPrices_SortsAndDeduplicates(t *testing.T) {
	csv := `Date,Close
04/01/2024,12
02/01/2024,10
02/01/2024,99
03/01/2024,11
`
	load, err := ReadPrices(strings.NewReader(csv), PriceOptions{DayFirst: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(load.Series) != 3 {
		t.Fatalf("expected 3 points after dedupe, got %d", len(load.Series))
	}
	for i := 1; i < len(load.Series); i++ {
		if !load.Series[i-1].Date.Before(load.Series[i].Date) {
			t.Fatalf("series not strictly ascending at %d", i)
		}
	}
	// First occurrence wins
	if load.Series[0].Close != 10 {
		t.Errorf("expected first duplicate to win, got close %g", load.Series[0].Close)
	}
	if len(load.Warnings) != 1 {
		t.Errorf("expected a duplicate warning, got %v", load.Warnings)
	}
}

func TestReadPrices_TrailingWindow(t *testing.T) {
	csv := `Date,Close
01/01/2024,8
01/03/2024,9
01/06/2024,10
10/06/2024,11
15/06/2024,12
`
	load, err := ReadPrices(strings.NewReader(csv), PriceOptions{DayFirst: true, TrailingDays: 30})
	if err != nil {
		t.Fatal(err)
	}

	// Only dates within 30 days of 15 June survive
	if len(load.Series) != 3 {
		t.Fatalf("expected 3 points in window, got %d", len(load.Series))
	}
	if load.Series[0].Close != 10 {
		t.Errorf("unexpected first point close %g", load.Series[0].Close)
	}
}

func TestReadPrices_MissingColumn(t *testing.T) {
	_, err := ReadPrices(strings.NewReader("Date,Volume\n01/01/2024,100\n"), PriceOptions{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestReadPrices_InsufficientData(t *testing.T) {
	cases := []string{
		"Date,Close\n",
		"Date,Close\n01/01/2024,10\n",
		"Date,Close\n01/01/2024,-10\n02/01/2024,0\n",
	}
	for _, csv := range cases {
		_, err := ReadPrices(strings.NewReader(csv), PriceOptions{DayFirst: true})
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData for %q, got %v", csv, err)
		}
	}
}
