// Package sonic reads operational and configuration state from the
// Redis databases of a device running SONiC.
package sonic

// DB identifies one of the Redis databases on a SONiC device.
//
// See https://github.com/sonic-net/SONiC/blob/master/doc/system-telemetry/grpc_telemetry.md
type DB int

// The standard SONiC database indexes.
const (
	ApplDB        DB = 0
	AsicDB        DB = 1
	CountersDB    DB = 2
	LogLevelDB    DB = 3
	ConfigDB      DB = 4
	FlexCounterDB DB = 5
	StateDB       DB = 6
)

// Well-known keys the monitor depends on.
const (
	deviceMetadataKey = "DEVICE_METADATA|localhost"
	localChassisKey   = "LLDP_LOC_CHASSIS"
	portTablePrefix   = "PORT_TABLE:"
	lldpEntryPrefix   = "LLDP_ENTRY_TABLE:"
	lagMemberPrefix   = "LAG_MEMBER_TABLE:"
	portTablePattern  = "PORT_TABLE:Eth*"
	lldpEntryPattern  = "LLDP_ENTRY_TABLE:*"
	lagMemberPattern  = "LAG_MEMBER_TABLE:*"
)

// Port is one interface's state as it exists in APPL_DB PORT_TABLE.
type Port struct {
	Name        string `json:"name"`
	AdminStatus string `json:"admin_status"`
	OperStatus  string `json:"oper_status"`
	Speed       string `json:"speed"`
	MTU         string `json:"mtu"`
	Alias       string `json:"alias"`
	Lanes       string `json:"lanes,omitempty"`
	Index       string `json:"index,omitempty"`
	Autoneg     string `json:"autoneg,omitempty"`
	Description string `json:"description,omitempty"`
	Preemphasis string `json:"preemphasis,omitempty"`
}

// LLDPEntry is one discovered neighbor as it exists under the
// LLDP_ENTRY_TABLE:<interface> keys.
type LLDPEntry struct {
	LocalPort          string `json:"local_port"`
	RemSysName         string `json:"lldp_rem_sys_name"`
	RemPortID          string `json:"lldp_rem_port_id"`
	RemChassisID       string `json:"lldp_rem_chassis_id"`
	RemPortDesc        string `json:"lldp_rem_port_desc,omitempty"`
	RemSysDesc         string `json:"lldp_rem_sys_desc,omitempty"`
	RemManAddr         string `json:"lldp_rem_man_addr,omitempty"`
	RemSysCapEnabled   string `json:"lldp_rem_sys_cap_enabled,omitempty"`
	RemSysCapSupported string `json:"lldp_rem_sys_cap_supported,omitempty"`
	RemIndex           string `json:"lldp_rem_index,omitempty"`
	RemTimeMark        string `json:"lldp_rem_time_mark,omitempty"`
	RemChassisIDSub    string `json:"lldp_rem_chassis_id_subtype,omitempty"`
	RemPortIDSub       string `json:"lldp_rem_port_id_subtype,omitempty"`
}

// LLDPLocalChassis is the LLDP identity the device advertises, from the
// LLDP_LOC_CHASSIS key.
type LLDPLocalChassis struct {
	ChassisID       string `json:"lldp_loc_chassis_id"`
	SysName         string `json:"lldp_loc_sys_name"`
	SysDesc         string `json:"lldp_loc_sys_desc,omitempty"`
	ManAddr         string `json:"lldp_loc_man_addr,omitempty"`
	ChassisIDSub    string `json:"lldp_loc_chassis_id_subtype,omitempty"`
	SysCapEnabled   string `json:"lldp_loc_sys_cap_enabled,omitempty"`
	SysCapSupported string `json:"lldp_loc_sys_cap_supported,omitempty"`
}

// DeviceMetadata is the device identity configured in CONFIG_DB under
// DEVICE_METADATA|localhost.
type DeviceMetadata struct {
	Hostname         string `json:"hostname"`
	HwSKU            string `json:"hwsku"`
	Platform         string `json:"platform,omitempty"`
	MAC              string `json:"mac,omitempty"`
	Type             string `json:"type,omitempty"`
	BufferModel      string `json:"buffer_model,omitempty"`
	SynchronousMode  string `json:"synchronous_mode,omitempty"`
	DefaultBGPStatus string `json:"default_bgp_status,omitempty"`
	DefaultPFCWD     string `json:"default_pfcwd_status,omitempty"`
}

// SoftwareVersionInfo is parsed out of the local chassis system
// description string.
type SoftwareVersionInfo struct {
	SoftwareVersion string `json:"software_version"`
	HwSKU           string `json:"hwsku"`
	Distribution    string `json:"distribution"`
	Kernel          string `json:"kernel"`
}

// PortChannelMember describes the aggregate a member interface belongs
// to and the membership status.
type PortChannelMember struct {
	PortChannel string `json:"port_channel"`
	Status      string `json:"status"`
}

// PortChannelState maps member interface names to their aggregate.
// Member names are unique: an interface belongs to at most one LAG.
type PortChannelState map[string]PortChannelMember
