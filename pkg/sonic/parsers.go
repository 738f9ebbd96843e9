// Decode functions for raw Redis hashes. Kept separate from the client
// so they can be tested without a running Redis.
package sonic

import (
	"strings"

	"github.com/sonicmon/sonicmon/pkg/util"
)

// missingFields returns the names of required fields absent from vals.
func missingFields(vals map[string]string, required ...string) []string {
	var missing []string
	for _, f := range required {
		if _, ok := vals[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// decodePort builds a Port from a PORT_TABLE hash.
func decodePort(name string, vals map[string]string) (Port, error) {
	if missing := missingFields(vals, "admin_status", "oper_status", "alias", "speed", "mtu"); len(missing) > 0 {
		return Port{}, util.NewDecodeError(portTablePrefix+name, missing)
	}
	return Port{
		Name:        name,
		AdminStatus: vals["admin_status"],
		OperStatus:  vals["oper_status"],
		Speed:       vals["speed"],
		MTU:         vals["mtu"],
		Alias:       vals["alias"],
		Lanes:       vals["lanes"],
		Index:       vals["index"],
		Autoneg:     vals["autoneg"],
		Description: vals["description"],
		Preemphasis: vals["preemphasis"],
	}, nil
}

// decodeLLDPEntry builds an LLDPEntry from an LLDP_ENTRY_TABLE hash.
func decodeLLDPEntry(localPort string, vals map[string]string) (LLDPEntry, error) {
	if missing := missingFields(vals, "lldp_rem_sys_name", "lldp_rem_port_id", "lldp_rem_chassis_id"); len(missing) > 0 {
		return LLDPEntry{}, util.NewDecodeError(lldpEntryPrefix+localPort, missing)
	}
	return LLDPEntry{
		LocalPort:          localPort,
		RemSysName:         vals["lldp_rem_sys_name"],
		RemPortID:          vals["lldp_rem_port_id"],
		RemChassisID:       vals["lldp_rem_chassis_id"],
		RemPortDesc:        vals["lldp_rem_port_desc"],
		RemSysDesc:         vals["lldp_rem_sys_desc"],
		RemManAddr:         vals["lldp_rem_man_addr"],
		RemSysCapEnabled:   vals["lldp_rem_sys_cap_enabled"],
		RemSysCapSupported: vals["lldp_rem_sys_cap_supported"],
		RemIndex:           vals["lldp_rem_index"],
		RemTimeMark:        vals["lldp_rem_time_mark"],
		RemChassisIDSub:    vals["lldp_rem_chassis_id_subtype"],
		RemPortIDSub:       vals["lldp_rem_port_id_subtype"],
	}, nil
}

// decodeLocalChassis builds an LLDPLocalChassis from the
// LLDP_LOC_CHASSIS hash.
func decodeLocalChassis(vals map[string]string) (LLDPLocalChassis, error) {
	if missing := missingFields(vals, "lldp_loc_chassis_id", "lldp_loc_sys_name"); len(missing) > 0 {
		return LLDPLocalChassis{}, util.NewDecodeError(localChassisKey, missing)
	}
	return LLDPLocalChassis{
		ChassisID:       vals["lldp_loc_chassis_id"],
		SysName:         vals["lldp_loc_sys_name"],
		SysDesc:         vals["lldp_loc_sys_desc"],
		ManAddr:         vals["lldp_loc_man_addr"],
		ChassisIDSub:    vals["lldp_loc_chassis_id_subtype"],
		SysCapEnabled:   vals["lldp_loc_sys_cap_enabled"],
		SysCapSupported: vals["lldp_loc_sys_cap_supported"],
	}, nil
}

// decodeDeviceMetadata builds a DeviceMetadata from the
// DEVICE_METADATA|localhost hash.
func decodeDeviceMetadata(vals map[string]string) (DeviceMetadata, error) {
	if missing := missingFields(vals, "hostname", "hwsku"); len(missing) > 0 {
		return DeviceMetadata{}, util.NewDecodeError(deviceMetadataKey, missing)
	}
	return DeviceMetadata{
		Hostname:         vals["hostname"],
		HwSKU:            vals["hwsku"],
		Platform:         vals["platform"],
		MAC:              vals["mac"],
		Type:             vals["type"],
		BufferModel:      vals["buffer_model"],
		SynchronousMode:  vals["synchronous_mode"],
		DefaultBGPStatus: vals["default_bgp_status"],
		DefaultPFCWD:     vals["default_pfcwd_status"],
	}, nil
}

// parseSoftwareVersion extracts labeled segments from a system
// description such as:
//
//	SONiC Software Version: SONiC.foo - HwSku: Force10-S6000 - Distribution: Debian 10.13 - Kernel: 4.19.0
//
// Segments are matched by label prefix, order-independent. Unrecognized
// segments are ignored; missing segments leave the field empty.
func parseSoftwareVersion(sysDesc string) SoftwareVersionInfo {
	var info SoftwareVersionInfo
	for _, segment := range strings.Split(sysDesc, " - ") {
		value := segment
		if i := strings.LastIndex(segment, ":"); i >= 0 {
			value = strings.TrimSpace(segment[i+1:])
		}
		switch {
		case strings.HasPrefix(segment, "SONiC Software Version"):
			info.SoftwareVersion = value
		case strings.HasPrefix(segment, "HwSku:"):
			info.HwSKU = value
		case strings.HasPrefix(segment, "Distribution:"):
			info.Distribution = value
		case strings.HasPrefix(segment, "Kernel:"):
			info.Kernel = value
		}
	}
	return info
}

// splitLAGMemberKey parses "LAG_MEMBER_TABLE:<aggregate>:<member>" into
// its aggregate and member names. ok is false for keys that do not
// carry both segments.
func splitLAGMemberKey(key string) (portChannel, member string, ok bool) {
	rest := strings.TrimPrefix(key, lagMemberPrefix)
	if rest == key {
		return "", "", false
	}
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
