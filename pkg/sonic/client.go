package sonic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/sonicmon/sonicmon/pkg/util"
)

// Client reads monitor state from the SONiC Redis databases. It holds
// one connection per database the monitor touches: APPL_DB (0) for
// port, LLDP and LAG tables, CONFIG_DB (4) for device metadata, and
// STATE_DB (6) for chassis state.
type Client struct {
	appl   *redis.Client
	config *redis.Client
	state  *redis.Client
	ctx    context.Context
}

// NewClient creates a client for the Redis instance at addr
// (host:port). Connections are established lazily; use Connect to
// verify reachability up front.
func NewClient(addr string) *Client {
	return &Client{
		appl:   redis.NewClient(&redis.Options{Addr: addr, DB: int(ApplDB)}),
		config: redis.NewClient(&redis.Options{Addr: addr, DB: int(ConfigDB)}),
		state:  redis.NewClient(&redis.Options{Addr: addr, DB: int(StateDB)}),
		ctx:    context.Background(),
	}
}

// Connect tests the connection.
func (c *Client) Connect() error {
	if err := c.appl.Ping(c.ctx).Err(); err != nil {
		return fmt.Errorf("%w: connecting to redis: %v", util.ErrFetch, err)
	}
	return nil
}

// Close closes all database connections.
func (c *Client) Close() error {
	var firstErr error
	for _, db := range []*redis.Client{c.appl, c.config, c.state} {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Client) handle(db DB) (*redis.Client, error) {
	switch db {
	case ApplDB:
		return c.appl, nil
	case ConfigDB:
		return c.config, nil
	case StateDB:
		return c.state, nil
	default:
		return nil, fmt.Errorf("no connection for database %d", db)
	}
}

// getEntry reads all fields of a record by key. Returns ErrNotFound
// when the key has no record.
func (c *Client) getEntry(db DB, key string) (map[string]string, error) {
	h, err := c.handle(db)
	if err != nil {
		return nil, err
	}
	vals, err := h.HGetAll(c.ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", util.ErrFetch, key, err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: %w", key, util.ErrNotFound)
	}
	return vals, nil
}

// SetEntry writes a record as a field map. Used by the seed command
// and by integration tests.
func (c *Client) SetEntry(db DB, key string, fields map[string]string) error {
	h, err := c.handle(db)
	if err != nil {
		return err
	}
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	if err := h.HSet(c.ctx, key, args...).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// DeleteEntry removes a key.
func (c *Client) DeleteEntry(db DB, key string) error {
	h, err := c.handle(db)
	if err != nil {
		return err
	}
	if err := h.Del(c.ctx, key).Err(); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// scanKeys iterates Redis keys matching the given pattern using
// cursor-based SCAN instead of the blocking O(N) KEYS command. The
// count hint controls how many keys Redis returns per iteration (not
// an exact limit).
func scanKeys(ctx context.Context, client *redis.Client, pattern string, countHint int64) ([]string, error) {
	var cursor uint64
	var keys []string
	for {
		batch, nextCursor, err := client.Scan(ctx, cursor, pattern, countHint).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

// GetPort reads a single interface from APPL_DB PORT_TABLE.
func (c *Client) GetPort(iface string) (*Port, error) {
	vals, err := c.getEntry(ApplDB, portTablePrefix+iface)
	if err != nil {
		return nil, err
	}
	port, err := decodePort(iface, vals)
	if err != nil {
		return nil, err
	}
	return &port, nil
}

// GetAllPorts enumerates every PORT_TABLE entry, ordered by interface
// name. Entries that fail to decode are logged and skipped; partial
// results are acceptable for a full listing.
func (c *Client) GetAllPorts() ([]Port, error) {
	keys, err := scanKeys(c.ctx, c.appl, portTablePattern, 100)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerating PORT_TABLE keys: %v", util.ErrFetch, err)
	}
	sort.Strings(keys)

	ports := make([]Port, 0, len(keys))
	for _, key := range keys {
		vals, err := c.appl.HGetAll(c.ctx, key).Result()
		if err != nil || len(vals) == 0 {
			util.Warnf("skipping %s: %v", key, err)
			continue
		}
		port, err := decodePort(strings.TrimPrefix(key, portTablePrefix), vals)
		if err != nil {
			util.Warnf("skipping %s: %v", key, err)
			continue
		}
		ports = append(ports, port)
	}
	return ports, nil
}

// GetLLDPEntry reads the neighbor discovered on one local interface.
func (c *Client) GetLLDPEntry(iface string) (*LLDPEntry, error) {
	vals, err := c.getEntry(ApplDB, lldpEntryPrefix+iface)
	if err != nil {
		return nil, err
	}
	entry, err := decodeLLDPEntry(iface, vals)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAllLLDPEntries enumerates every LLDP_ENTRY_TABLE entry, ordered
// by local port. Same skip-on-decode-error policy as GetAllPorts.
func (c *Client) GetAllLLDPEntries() ([]LLDPEntry, error) {
	keys, err := scanKeys(c.ctx, c.appl, lldpEntryPattern, 100)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerating LLDP_ENTRY_TABLE keys: %v", util.ErrFetch, err)
	}
	sort.Strings(keys)

	entries := make([]LLDPEntry, 0, len(keys))
	for _, key := range keys {
		vals, err := c.appl.HGetAll(c.ctx, key).Result()
		if err != nil || len(vals) == 0 {
			util.Warnf("skipping %s: %v", key, err)
			continue
		}
		entry, err := decodeLLDPEntry(strings.TrimPrefix(key, lldpEntryPrefix), vals)
		if err != nil {
			util.Warnf("skipping %s: %v", key, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetPortChannelMembers enumerates LAG_MEMBER_TABLE keys and maps each
// member interface to its aggregate and membership status. A failed
// enumeration is an error; individual missing or malformed entries are
// skipped. Zero member keys yields an empty map.
func (c *Client) GetPortChannelMembers() (PortChannelState, error) {
	keys, err := scanKeys(c.ctx, c.appl, lagMemberPattern, 100)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerating LAG_MEMBER_TABLE keys: %v", util.ErrFetch, err)
	}

	members := make(PortChannelState, len(keys))
	for _, key := range keys {
		portChannel, member, ok := splitLAGMemberKey(key)
		if !ok {
			util.Warnf("skipping malformed LAG member key %s", key)
			continue
		}
		vals, err := c.appl.HGetAll(c.ctx, key).Result()
		if err != nil || len(vals) == 0 {
			util.Warnf("skipping %s: %v", key, err)
			continue
		}
		members[member] = PortChannelMember{
			PortChannel: portChannel,
			Status:      vals["status"],
		}
	}
	return members, nil
}

// GetDeviceMetadata reads the device identity from CONFIG_DB.
func (c *Client) GetDeviceMetadata() (*DeviceMetadata, error) {
	vals, err := c.getEntry(ConfigDB, deviceMetadataKey)
	if err != nil {
		return nil, err
	}
	meta, err := decodeDeviceMetadata(vals)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// GetLocalChassis reads the advertised LLDP identity from APPL_DB.
func (c *Client) GetLocalChassis() (*LLDPLocalChassis, error) {
	vals, err := c.getEntry(ApplDB, localChassisKey)
	if err != nil {
		return nil, err
	}
	chassis, err := decodeLocalChassis(vals)
	if err != nil {
		return nil, err
	}
	return &chassis, nil
}

// GetSoftwareVersion derives software version fields from the local
// chassis system description. The description field is optional on the
// record but required here, so its absence is a MissingFieldError.
func (c *Client) GetSoftwareVersion() (*SoftwareVersionInfo, error) {
	chassis, err := c.GetLocalChassis()
	if err != nil {
		return nil, err
	}
	if chassis.SysDesc == "" {
		return nil, util.NewMissingFieldError(localChassisKey, "lldp_loc_sys_desc")
	}
	info := parseSoftwareVersion(chassis.SysDesc)
	return &info, nil
}
