// Sonicmon - terminal monitor for SONiC devices
//
// Sonicmon polls the Redis databases of a device running SONiC and
// redraws one of three screens at a configurable interval:
//
//	main       device identity, software version, host load, neighbor count
//	interface  per-port status for admin-enabled interfaces, LAG membership
//	lldp       discovered LLDP neighbors
//
// While the monitor runs, a line of input switches screens or changes
// the refresh interval:
//
//	i/interface, m/main, l/lldp   select a screen
//	<positive float>              set the refresh interval in seconds
//	q/quit                        exit
//
// Defaults come from ~/.sonicmon/settings.yaml; flags override them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sonicmon/sonicmon/pkg/monitor"
	"github.com/sonicmon/sonicmon/pkg/settings"
	"github.com/sonicmon/sonicmon/pkg/sonic"
	"github.com/sonicmon/sonicmon/pkg/util"
	"github.com/sonicmon/sonicmon/pkg/version"
	"github.com/sonicmon/sonicmon/pkg/view"
)

var (
	redisAddr  string
	interval   float64
	screenName string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sonicmon",
	Short:         "Terminal monitor for SONiC devices",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Sonicmon periodically polls a SONiC device's Redis databases and
renders a monitoring screen to the terminal.

Run it on the device (or against a reachable Redis) and type a command
followed by Enter to switch screens or change the refresh interval.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Redis address (host:port, default localhost:6379)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().Float64Var(&interval, "interval", 0, "refresh interval in seconds")
	rootCmd.Flags().StringVar(&screenName, "screen", "", "startup screen (main, interface, lldp)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
}

// resolveConfig layers built-in defaults, the settings file, then flags.
func resolveConfig() (string, monitor.Config, error) {
	addr := "localhost:6379"
	cfg := monitor.DefaultConfig()

	s, err := settings.Load()
	if err != nil {
		return "", cfg, fmt.Errorf("loading settings: %w", err)
	}
	if s.RedisAddr != "" {
		addr = s.RedisAddr
	}
	if s.Screen != "" {
		screen, err := monitor.ParseScreen(s.Screen)
		if err != nil {
			return "", cfg, fmt.Errorf("settings file: %w", err)
		}
		cfg.Screen = screen
	}
	if s.Interval > 0 {
		cfg.Interval = s.Interval
	}

	if redisAddr != "" {
		addr = redisAddr
	}
	if screenName != "" {
		screen, err := monitor.ParseScreen(screenName)
		if err != nil {
			return "", cfg, err
		}
		cfg.Screen = screen
	}
	if interval != 0 {
		if interval < 0 {
			return "", cfg, fmt.Errorf("interval must be positive, got %v", interval)
		}
		cfg.Interval = interval
	}
	return addr, cfg, nil
}

func runMonitor(cmd *cobra.Command, args []string) error {
	if logLevel != "" {
		if err := util.SetLogLevel(logLevel); err != nil {
			return err
		}
	}

	addr, cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client := sonic.NewClient(addr)
	if err := client.Connect(); err != nil {
		return fmt.Errorf("device database at %s is unreachable: %w", addr, err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := monitor.NewController(cfg, client, view.Render, view.TerminalWidth, os.Stdin, os.Stdout)
	err = ctrl.Run(ctx)
	fmt.Println("\nExiting monitor tool...")
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sonicmon " + version.Info())
	},
}
