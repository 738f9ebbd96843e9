package testutil

// Canned field maps for seeding tests. Keys are raw Redis hashes the
// way SONiC daemons write them.

// PortFields returns a complete PORT_TABLE hash.
func PortFields(alias, adminStatus, operStatus string) map[string]string {
	return map[string]string{
		"admin_status": adminStatus,
		"oper_status":  operStatus,
		"alias":        alias,
		"speed":        "100000",
		"mtu":          "9100",
		"lanes":        "65,66,67,68",
		"index":        "1",
		"autoneg":      "off",
	}
}

// LLDPEntryFields returns a complete LLDP_ENTRY_TABLE hash.
func LLDPEntryFields(remSysName, remPortID string) map[string]string {
	return map[string]string{
		"lldp_rem_sys_name":   remSysName,
		"lldp_rem_port_id":    remPortID,
		"lldp_rem_chassis_id": "aa:bb:cc:dd:ee:01",
		"lldp_rem_port_desc":  "peer link",
		"lldp_rem_sys_desc":   "SONiC Software Version: SONiC.peer - HwSku: Peer-SKU - Distribution: Debian 10 - Kernel: 4.19.0",
	}
}

// DeviceMetadataFields returns a CONFIG_DB DEVICE_METADATA hash.
func DeviceMetadataFields(hostname, hwsku string) map[string]string {
	return map[string]string{
		"hostname":     hostname,
		"hwsku":        hwsku,
		"platform":     "x86_64-dell_s6000_s1220-r0",
		"mac":          "00:11:22:33:44:55",
		"type":         "LeafRouter",
		"buffer_model": "traditional",
	}
}

// LocalChassisFields returns an LLDP_LOC_CHASSIS hash whose system
// description parses into the given version fields.
func LocalChassisFields(sysName, version, hwsku, distribution, kernel string) map[string]string {
	return map[string]string{
		"lldp_loc_chassis_id":         "00:11:22:33:44:55",
		"lldp_loc_sys_name":           sysName,
		"lldp_loc_chassis_id_subtype": "4",
		"lldp_loc_sys_desc": "SONiC Software Version: " + version +
			" - HwSku: " + hwsku +
			" - Distribution: " + distribution +
			" - Kernel: " + kernel,
	}
}
