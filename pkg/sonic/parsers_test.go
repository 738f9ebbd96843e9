package sonic

import (
	"errors"
	"testing"

	"github.com/sonicmon/sonicmon/pkg/util"
)

func TestDecodePort(t *testing.T) {
	vals := map[string]string{
		"admin_status": "up",
		"oper_status":  "down",
		"alias":        "tenGigE0/0",
		"speed":        "10000",
		"mtu":          "9100",
		"lanes":        "65",
		"index":        "0",
		"description":  "uplink to spine1",
	}

	port, err := decodePort("Ethernet0", vals)
	if err != nil {
		t.Fatalf("decodePort: %v", err)
	}
	if port.Name != "Ethernet0" {
		t.Errorf("Name = %q", port.Name)
	}
	if port.AdminStatus != "up" || port.OperStatus != "down" {
		t.Errorf("status = %q/%q", port.AdminStatus, port.OperStatus)
	}
	if port.Description != "uplink to spine1" {
		t.Errorf("Description = %q", port.Description)
	}
}

func TestDecodePortMissingFields(t *testing.T) {
	_, err := decodePort("Ethernet4", map[string]string{"admin_status": "up"})
	if err == nil {
		t.Fatal("decodePort should fail when required fields are absent")
	}
	if !errors.Is(err, util.ErrDecode) {
		t.Errorf("error %v should match util.ErrDecode", err)
	}
	var decErr *util.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error %v is not a DecodeError", err)
	}
	if decErr.Key != "PORT_TABLE:Ethernet4" {
		t.Errorf("Key = %q", decErr.Key)
	}
	if len(decErr.Missing) != 4 {
		t.Errorf("Missing = %v, want oper_status, alias, speed, mtu", decErr.Missing)
	}
}

func TestDecodeLLDPEntry(t *testing.T) {
	vals := map[string]string{
		"lldp_rem_sys_name":   "spine1-ny",
		"lldp_rem_port_id":    "Ethernet12",
		"lldp_rem_chassis_id": "aa:bb:cc:dd:ee:ff",
		"lldp_rem_port_desc":  "downlink",
	}

	entry, err := decodeLLDPEntry("Ethernet0", vals)
	if err != nil {
		t.Fatalf("decodeLLDPEntry: %v", err)
	}
	if entry.LocalPort != "Ethernet0" {
		t.Errorf("LocalPort = %q", entry.LocalPort)
	}
	if entry.RemSysName != "spine1-ny" {
		t.Errorf("RemSysName = %q", entry.RemSysName)
	}

	_, err = decodeLLDPEntry("Ethernet0", map[string]string{"lldp_rem_sys_name": "x"})
	if !errors.Is(err, util.ErrDecode) {
		t.Errorf("partial entry: error %v should match util.ErrDecode", err)
	}
}

func TestDecodeDeviceMetadata(t *testing.T) {
	meta, err := decodeDeviceMetadata(map[string]string{
		"hostname":     "leaf1-ny",
		"hwsku":        "Force10-S6000",
		"platform":     "x86_64-dell_s6000_s1220-r0",
		"mac":          "00:11:22:33:44:55",
		"buffer_model": "traditional",
	})
	if err != nil {
		t.Fatalf("decodeDeviceMetadata: %v", err)
	}
	if meta.Hostname != "leaf1-ny" || meta.HwSKU != "Force10-S6000" {
		t.Errorf("got %q/%q", meta.Hostname, meta.HwSKU)
	}

	_, err = decodeDeviceMetadata(map[string]string{"platform": "x86_64"})
	if !errors.Is(err, util.ErrDecode) {
		t.Errorf("error %v should match util.ErrDecode", err)
	}
}

func TestParseSoftwareVersion(t *testing.T) {
	tests := []struct {
		name     string
		sysDesc  string
		expected SoftwareVersionInfo
	}{
		{
			name:    "full description",
			sysDesc: "SONiC Software Version: SONiC.HEAD.32-21ea29a - HwSku: Force10-S6000 - Distribution: Debian 10.13 - Kernel: 4.19.0-12-2-amd64",
			expected: SoftwareVersionInfo{
				SoftwareVersion: "SONiC.HEAD.32-21ea29a",
				HwSKU:           "Force10-S6000",
				Distribution:    "Debian 10.13",
				Kernel:          "4.19.0-12-2-amd64",
			},
		},
		{
			name:    "segments out of order",
			sysDesc: "Kernel: 5.10.0 - SONiC Software Version: SONiC.202211 - Distribution: Debian 11 - HwSku: Accton-AS7726",
			expected: SoftwareVersionInfo{
				SoftwareVersion: "SONiC.202211",
				HwSKU:           "Accton-AS7726",
				Distribution:    "Debian 11",
				Kernel:          "5.10.0",
			},
		},
		{
			name:    "unrecognized segments ignored, missing default empty",
			sysDesc: "SONiC Software Version: SONiC.foo - Uptime: 4 days",
			expected: SoftwareVersionInfo{
				SoftwareVersion: "SONiC.foo",
			},
		},
		{
			name:     "empty description",
			sysDesc:  "",
			expected: SoftwareVersionInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSoftwareVersion(tt.sysDesc); got != tt.expected {
				t.Errorf("parseSoftwareVersion(%q) = %+v, want %+v", tt.sysDesc, got, tt.expected)
			}
		})
	}
}

func TestSplitLAGMemberKey(t *testing.T) {
	tests := []struct {
		key         string
		portChannel string
		member      string
		ok          bool
	}{
		{"LAG_MEMBER_TABLE:PortChannel6:Ethernet49", "PortChannel6", "Ethernet49", true},
		{"LAG_MEMBER_TABLE:PortChannel100:Ethernet0", "PortChannel100", "Ethernet0", true},
		{"LAG_MEMBER_TABLE:PortChannel6", "", "", false},
		{"LAG_TABLE:PortChannel6", "", "", false},
		{"LAG_MEMBER_TABLE::Ethernet0", "", "", false},
	}

	for _, tt := range tests {
		pc, member, ok := splitLAGMemberKey(tt.key)
		if pc != tt.portChannel || member != tt.member || ok != tt.ok {
			t.Errorf("splitLAGMemberKey(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.key, pc, member, ok, tt.portChannel, tt.member, tt.ok)
		}
	}
}
