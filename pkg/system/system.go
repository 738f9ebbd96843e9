// Package system reads host CPU load and memory usage from procfs.
// It is a thin wrapper: read failures yield zero values rather than
// errors, so a monitor tick never aborts on missing host stats.
package system

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Usage is a point-in-time snapshot of host load and memory.
type Usage struct {
	Load1  float64
	Load5  float64
	Load15 float64

	MemTotalGB     float64
	MemAvailableGB float64
	MemUsedGB      float64
	MemUsedPercent float64
}

// FormatGB renders a gigabyte value the way the screens display it.
func FormatGB(gb float64) string {
	return fmt.Sprintf("%.2f", gb)
}

// ReadUsage reads /proc/loadavg and /proc/meminfo. Fields that cannot
// be read stay zero.
func ReadUsage() Usage {
	var u Usage
	if blob, err := os.ReadFile("/proc/loadavg"); err == nil {
		u.Load1, u.Load5, u.Load15 = parseLoadAvg(string(blob))
	}
	if blob, err := os.ReadFile("/proc/meminfo"); err == nil {
		u.MemTotalGB, u.MemAvailableGB, u.MemUsedGB, u.MemUsedPercent = parseMemInfo(string(blob))
	}
	return u
}

// parseLoadAvg extracts the 1/5/15 minute load averages from the
// /proc/loadavg format: "0.42 0.35 0.31 1/234 5678".
func parseLoadAvg(s string) (load1, load5, load15 float64) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return 0, 0, 0
	}
	load1, _ = strconv.ParseFloat(fields[0], 64)
	load5, _ = strconv.ParseFloat(fields[1], 64)
	load15, _ = strconv.ParseFloat(fields[2], 64)
	return load1, load5, load15
}

// parseMemInfo extracts totals from /proc/meminfo (values in kB).
func parseMemInfo(s string) (totalGB, availableGB, usedGB, usedPercent float64) {
	var totalKB, availableKB float64
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			totalKB, _ = strconv.ParseFloat(fields[1], 64)
		case "MemAvailable:":
			availableKB, _ = strconv.ParseFloat(fields[1], 64)
		}
	}
	if totalKB <= 0 {
		return 0, 0, 0, 0
	}
	if availableKB < 0 {
		availableKB = 0
	}
	const kbPerGB = 1024 * 1024
	totalGB = totalKB / kbPerGB
	availableGB = availableKB / kbPerGB
	usedGB = (totalKB - availableKB) / kbPerGB
	usedPercent = (totalKB - availableKB) / totalKB * 100
	return totalGB, availableGB, usedGB, usedPercent
}
