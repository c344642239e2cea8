package main

import (
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/emojiextract/text"
)

func TestParseGlyphIDs(t *testing.T) {
	tests := []struct {
		in      string
		want    []text.GlyphID
		wantErr bool
	}{
		{"1076,1079, 1082", []text.GlyphID{1076, 1079, 1082}, false},
		{"none", []text.GlyphID{}, false},
		{"", []text.GlyphID{}, false},
		{"12,x", nil, true},
		{"70000", nil, true},
	}

	for _, tt := range tests {
		got, err := parseGlyphIDs(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseGlyphIDs(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !slices.Equal(got, tt.want) {
			t.Errorf("parseGlyphIDs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := joinGlyphIDs(text.DefaultToneSentinels()); got != "1076,1079,1082,1085,1088" {
		t.Errorf("joinGlyphIDs = %q", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#000000", color.NRGBA{A: 0xFF}, false},
		{"ff8000", color.NRGBA{R: 0xFF, G: 0x80, A: 0xFF}, false},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
