package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.tone != "" || header.status != "" {
		t.Error("Expected empty tone and status initially")
	}
}

func TestHeader_Setters(t *testing.T) {
	header := NewHeader()

	header.SetWidth(120)
	header.SetTone("Friendly")
	header.SetStatus("generating")

	if header.width != 120 {
		t.Errorf("Expected width 120, got %d", header.width)
	}
	if header.tone != "Friendly" {
		t.Errorf("Expected tone 'Friendly', got %q", header.tone)
	}
	if header.status != "generating" {
		t.Errorf("Expected status 'generating', got %q", header.status)
	}
}

func TestHeader_View_Title(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "emailwriter") {
		t.Errorf("Header should contain the title, got: %q", view)
	}
	if strings.Contains(view, "(") {
		t.Errorf("Header without status should have no parentheses, got: %q", view)
	}
}

func TestHeader_View_ToneAndStatus(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetTone("Apologetic")
	header.SetStatus("fallback draft")

	view := stripANSI(header.View())

	if !strings.Contains(view, "Apologetic (fallback draft)") {
		t.Errorf("Header should contain tone and status, got: %q", view)
	}
}

func TestHeader_View_StatusOnly(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetStatus("generating")

	view := stripANSI(header.View())

	if !strings.Contains(view, "(generating)") {
		t.Errorf("Header should contain status, got: %q", view)
	}
}

func TestHeader_View_FillsWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		tone  string
	}{
		{"ascii", 80, "Professional"},
		{"accented", 100, "Très formel"},
		{"wide runes", 80, "丁寧"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewHeader()
			header.SetWidth(tt.width)
			header.SetTone(tt.tone)

			view := stripANSI(header.View())

			if !strings.Contains(view, tt.tone) {
				t.Errorf("Header should contain tone, got: %q", view)
			}
			if got := runewidth.StringWidth(view); got != tt.width {
				t.Errorf("Header display width = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestHeader_View_Narrow(t *testing.T) {
	header := NewHeader()
	header.SetWidth(5)
	header.SetTone("Enthusiastic")

	view := stripANSI(header.View())

	if !strings.Contains(view, "Enthusiastic") {
		t.Errorf("Narrow header should still render content, got: %q", view)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#7C3AED")
	if r != 0x7C || g != 0x3A || b != 0xED {
		t.Errorf("parseHexColor = %d,%d,%d", r, g, b)
	}

	r, g, b = parseHexColor("purple")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("invalid hex should parse to zero, got %d,%d,%d", r, g, b)
	}
}
