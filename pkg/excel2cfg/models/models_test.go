package models

import (
	"errors"
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{-3, "-3"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{123456789012, "123456789012"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		if result := FormatNumber(tt.input); result != tt.expected {
			t.Errorf("FormatNumber(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		keyword  string
		expected Visibility
	}{
		{"ALL", VisibilityAll},
		{"All", VisibilityAll},
		{"CLIENT", VisibilityClientOnly},
		{"ClientOnly", VisibilityClientOnly},
		{"SERVER", VisibilityServerOnly},
		{"ServerOnly", VisibilityServerOnly},
		{"IGNORE", VisibilityIgnore},
		{"all", VisibilityUnrecognized},
		{"", VisibilityUnrecognized},
	}

	for _, tt := range tests {
		if result := ParseVisibility(tt.keyword); result != tt.expected {
			t.Errorf("ParseVisibility(%q) = %s, expected %s", tt.keyword, result, tt.expected)
		}
	}
}

func TestVisibleTo(t *testing.T) {
	tests := []struct {
		v      Visibility
		client bool
		server bool
		other  bool
	}{
		{VisibilityAll, true, true, true},
		{VisibilityClientOnly, true, false, true},
		{VisibilityServerOnly, false, true, true},
		{VisibilityIgnore, false, false, false},
		{VisibilityUnrecognized, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.v.VisibleTo(RoleClient); got != tt.client {
			t.Errorf("%s.VisibleTo(CLIENT) = %v", tt.v, got)
		}
		if got := tt.v.VisibleTo(RoleServer); got != tt.server {
			t.Errorf("%s.VisibleTo(SERVER) = %v", tt.v, got)
		}
		if got := tt.v.VisibleTo(RoleOther); got != tt.other {
			t.Errorf("%s.VisibleTo(OTHER) = %v", tt.v, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	for input, expected := range map[string]Role{"client": RoleClient, "SERVER": RoleServer, " other ": RoleOther} {
		role, err := ParseRole(input)
		if err != nil || role != expected {
			t.Errorf("ParseRole(%q) = %v, %v", input, role, err)
		}
	}
	if _, err := ParseRole("tester"); err == nil {
		t.Error("Expected an error for an unknown role")
	}
}

func TestSheetReportFailed(t *testing.T) {
	ok := SheetReport{Outputs: []OutputResult{{Format: "json"}}}
	if ok.Failed() {
		t.Error("Expected a clean report")
	}
	bad := SheetReport{Outputs: []OutputResult{{Format: "json"}, {Format: "lua", Err: errors.New("boom")}}}
	if !bad.Failed() {
		t.Error("Expected a failed report")
	}
	wb := WorkbookReport{Sheets: []SheetReport{ok, bad}}
	if !wb.Failed() {
		t.Error("Expected the workbook to report the failure")
	}
}
