package system

import (
	"math"
	"testing"
)

func TestParseLoadAvg(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		load1  float64
		load5  float64
		load15 float64
	}{
		{"typical", "0.42 0.35 0.31 1/234 5678\n", 0.42, 0.35, 0.31},
		{"high load", "12.50 8.00 4.25 5/1000 99999", 12.50, 8.00, 4.25},
		{"truncated", "0.42 0.35", 0, 0, 0},
		{"empty", "", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l1, l5, l15 := parseLoadAvg(tt.input)
			if l1 != tt.load1 || l5 != tt.load5 || l15 != tt.load15 {
				t.Errorf("parseLoadAvg(%q) = %v, %v, %v", tt.input, l1, l5, l15)
			}
		})
	}
}

func TestParseMemInfo(t *testing.T) {
	input := "MemTotal:       16384000 kB\n" +
		"MemFree:         2048000 kB\n" +
		"MemAvailable:    8192000 kB\n" +
		"Buffers:          512000 kB\n"

	totalGB, availableGB, usedGB, usedPercent := parseMemInfo(input)
	if math.Abs(totalGB-15.625) > 0.001 {
		t.Errorf("totalGB = %v, want 15.625", totalGB)
	}
	if math.Abs(availableGB-7.8125) > 0.001 {
		t.Errorf("availableGB = %v, want 7.8125", availableGB)
	}
	if math.Abs(usedGB-(15.625-7.8125)) > 0.001 {
		t.Errorf("usedGB = %v", usedGB)
	}
	if math.Abs(usedPercent-50.0) > 0.001 {
		t.Errorf("usedPercent = %v, want 50", usedPercent)
	}
}

func TestParseMemInfoMissingTotal(t *testing.T) {
	totalGB, availableGB, usedGB, usedPercent := parseMemInfo("MemFree: 100 kB\n")
	if totalGB != 0 || availableGB != 0 || usedGB != 0 || usedPercent != 0 {
		t.Errorf("missing MemTotal should yield zeros, got %v %v %v %v",
			totalGB, availableGB, usedGB, usedPercent)
	}
}

func TestReadUsage(t *testing.T) {
	// Smoke test against the real procfs: values must be sane, not exact.
	u := ReadUsage()
	if u.Load1 < 0 || u.MemUsedPercent < 0 || u.MemUsedPercent > 100 {
		t.Errorf("implausible usage: %+v", u)
	}
}
