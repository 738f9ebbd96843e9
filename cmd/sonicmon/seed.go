package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sonicmon/sonicmon/pkg/cli"
	"github.com/sonicmon/sonicmon/pkg/sonic"
)

var seedFile string

// seedCmd loads a fixture into the device databases so the monitor can
// be demoed or tested off-device.
//
// Fixture format, database number to raw key to field map:
//
//	{
//	  "0": {
//	    "PORT_TABLE:Ethernet0": {"admin_status": "up", ...},
//	    "LLDP_LOC_CHASSIS": {...}
//	  },
//	  "4": {
//	    "DEVICE_METADATA|localhost": {"hostname": "leaf1-ny", ...}
//	  }
//	}
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a JSON fixture into the device databases",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (required)")
	seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}

	var fixture map[string]map[string]map[string]string
	if err := json.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", seedFile, err)
	}

	addr, _, err := resolveConfig()
	if err != nil {
		return err
	}
	client := sonic.NewClient(addr)
	if err := client.Connect(); err != nil {
		return fmt.Errorf("device database at %s is unreachable: %w", addr, err)
	}
	defer client.Close()

	counts := make(map[string]int, len(fixture))
	for dbName, entries := range fixture {
		n, err := strconv.Atoi(dbName)
		if err != nil {
			return fmt.Errorf("fixture database %q is not a number", dbName)
		}
		for key, fields := range entries {
			if len(fields) == 0 {
				continue
			}
			if err := client.SetEntry(sonic.DB(n), key, fields); err != nil {
				return err
			}
		}
		counts[dbName] = len(entries)
	}

	dbs := make([]string, 0, len(counts))
	for db := range counts {
		dbs = append(dbs, db)
	}
	sort.Strings(dbs)

	t := cli.NewTable(os.Stdout, "DB", "KEYS")
	for _, db := range dbs {
		t.Row(db, strconv.Itoa(counts[db]))
	}
	t.Flush()
	return nil
}
