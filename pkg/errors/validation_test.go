package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{1000, false},
		{0, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := ValidatePositive("length", tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !IsInvalidParameter(err) {
			t.Errorf("ValidatePositive(%d) code = %v, want INVALID_PARAMETER", tt.n, GetCode(err))
		}
	}
}

func TestValidateOpenUnit(t *testing.T) {
	tests := []struct {
		name    string
		p       float64
		wantErr bool
	}{
		{"half", 0.5, false},
		{"small", 1e-9, false},
		{"zero", 0, true},
		{"one", 1, true},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOpenUnit("p", tt.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOpenUnit(%v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "plot.svg", false},
		{"nested", "out/plots/iteration.png", false},
		{"absolute", "/tmp/plot.pdf", false},
		{"empty", "", true},
		{"directory", "out/", true},
		{"null byte", "plot\x00.svg", true},
		{"newline", "plot\n.svg", true},
		{"too long", strings.Repeat("a", 4097), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
