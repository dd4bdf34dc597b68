package metadata

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
)

const fullHeader = "imgName,fileChecksum,originalCreationDate,favorite,hidden,deleted,viewCount,importDate\n"

func TestParser_FullRow(t *testing.T) {
	input := fullHeader +
		"IMG_001.HEIC,abc123,01/15/2020 10:30:00,yes,no,no,7,02/01/2020 09:00:00\n"

	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Name != "IMG_001.HEIC" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Checksum != "abc123" {
		t.Errorf("Checksum = %q", rec.Checksum)
	}
	if rec.OriginalDate != "01/15/2020 10:30:00" {
		t.Errorf("OriginalDate = %q", rec.OriginalDate)
	}
	if !rec.Favorite || rec.Hidden || rec.Deleted {
		t.Errorf("flags = %v/%v/%v, want true/false/false", rec.Favorite, rec.Hidden, rec.Deleted)
	}
	if rec.ViewCount != 7 {
		t.Errorf("ViewCount = %d, want 7", rec.ViewCount)
	}
	if rec.ImportDate != "02/01/2020 09:00:00" {
		t.Errorf("ImportDate = %q", rec.ImportDate)
	}

	if _, err := p.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("second Next err = %v, want io.EOF", err)
	}
}

func TestParser_OptionalColumnsDefault(t *testing.T) {
	// Only the required column plus the date: flags false, views 0.
	input := "imgName,originalCreationDate\n" +
		"IMG_002.JPG,01/15/2020 10:30:00\n"

	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Favorite || rec.Hidden || rec.Deleted {
		t.Errorf("flags should default to false, got %v/%v/%v", rec.Favorite, rec.Hidden, rec.Deleted)
	}
	if rec.ViewCount != 0 {
		t.Errorf("ViewCount = %d, want 0", rec.ViewCount)
	}
	if rec.Checksum != "" {
		t.Errorf("Checksum = %q, want empty", rec.Checksum)
	}
}

func TestParser_UnknownColumnsIgnored(t *testing.T) {
	input := "imgName,mysteryColumn,viewCount\n" +
		"a.jpg,whatever,3\n"

	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Name != "a.jpg" || rec.ViewCount != 3 {
		t.Errorf("rec = %+v", rec)
	}
}

func TestParser_MissingNameRowSkippable(t *testing.T) {
	input := fullHeader +
		",abc,01/15/2020 10:30:00,no,no,no,0,\n" +
		"b.jpg,def,01/16/2020 11:00:00,no,no,no,0,\n"

	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	if _, err := p.Next(); !errors.Is(err, ErrMissingName) {
		t.Fatalf("first Next err = %v, want ErrMissingName", err)
	}
	// Parsing continues with the remaining rows.
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next after bad row: %v", err)
	}
	if rec.Name != "b.jpg" {
		t.Errorf("Name = %q, want b.jpg", rec.Name)
	}
}

func TestParser_BadQuotingIsRowLevel(t *testing.T) {
	input := fullHeader +
		"a.jpg,\"broken,01/15/2020 10:30:00,no,no,no,0,\n" +
		"b.jpg,ok,01/16/2020 11:00:00,no,no,no,0,\n"

	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	_, err = p.Next()
	var pe *csv.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Next err = %v, want *csv.ParseError", err)
	}
}

func TestParser_HeaderWithoutName(t *testing.T) {
	if _, err := NewParser(strings.NewReader("fileChecksum,viewCount\nabc,1\n")); err == nil {
		t.Error("NewParser should fail when imgName column is missing")
	}
}

func TestParser_RaggedRowTolerated(t *testing.T) {
	input := fullHeader + "short.jpg,abc\n"

	p, err := NewParser(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	rec, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec.Name != "short.jpg" || rec.Checksum != "abc" || rec.OriginalDate != "" {
		t.Errorf("rec = %+v", rec)
	}
}

func TestParseFlag(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"yes", true},
		{"YES", true},
		{" Yes ", true},
		{"no", false},
		{"", false},
		{"true", false},
		{"1", false},
	}
	for _, tc := range cases {
		if got := parseFlag(tc.in); got != tc.want {
			t.Errorf("parseFlag(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
