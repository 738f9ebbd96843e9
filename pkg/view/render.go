// Package view renders view models into colored, terminal-ready text.
// Rendering is a pure function of (view model, terminal width); no
// store access happens here.
package view

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/sonicmon/sonicmon/pkg/cli"
	"github.com/sonicmon/sonicmon/pkg/monitor"
	"github.com/sonicmon/sonicmon/pkg/system"
)

// DefaultWidth is used when stdout is not a terminal.
const DefaultWidth = 80

const usageHint = "Screen selection: 'i/interface', 'l/lldp', 'm/main', 'q/quit' or a float to change the interval"

// now is swapped in tests for a stable timestamp.
var now = time.Now

// TerminalWidth returns the current terminal width, or DefaultWidth
// when stdout is not a tty.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Render formats the view model for a terminal of the given width.
// The discriminant selects the strategy; a model whose variant does
// not match its discriminant is a hard error and should be unreachable.
func Render(vm monitor.ViewModel, width int) (string, error) {
	switch vm.Screen {
	case monitor.ScreenMain:
		if vm.Main != nil {
			return renderMain(vm.Main, width), nil
		}
	case monitor.ScreenInterface:
		if vm.Interface != nil {
			return renderInterface(vm.Interface, width), nil
		}
	case monitor.ScreenLldp:
		if vm.Lldp != nil {
			return renderLldp(vm.Lldp, width), nil
		}
	default:
		return "", fmt.Errorf("no renderer for screen %q", vm.Screen)
	}
	return "", fmt.Errorf("view model for screen %q has no payload", vm.Screen)
}

// screen accumulates colored lines for one frame.
type screen struct {
	lines []string
	width int
}

func (s *screen) add(line string) { s.lines = append(s.lines, line) }

func (s *screen) rule() { s.add(cli.Yellow(cli.Rule("-", s.width))) }

func (s *screen) subRule() { s.add(cli.LightYellow(cli.Rule(".", s.width))) }

func (s *screen) String() string { return strings.Join(s.lines, "\n") }

// header emits the shared screen header.
func (s *screen) header(hostname string, sc monitor.Screen) {
	s.rule()
	s.add(cli.Goldenrod(fmt.Sprintf("System name: %s | Current view: %s | Current time: %s",
		hostname, sc, now().Format("2006-01-02 15:04:05.000000"))))
	s.rule()
}

// footer emits the shared usage hint.
func (s *screen) footer() {
	s.rule()
	s.add(cli.Khaki(usageHint))
	s.rule()
}

func labeled(label, value string) string {
	return fmt.Sprintf("%-30s%s", label, value)
}

func renderMain(m *monitor.MainView, width int) string {
	s := &screen{width: width}
	s.header(m.Hostname, monitor.ScreenMain)

	s.add(cli.LightYellow(labeled("System model:", m.Model)))
	s.add(cli.LightYellow(labeled("System version:", m.SoftwareVersion)))
	s.add(cli.LightYellow(labeled("Distribution:", m.Distribution)))
	s.add(cli.LightYellow(labeled("Kernel version:", m.KernelVersion)))

	s.rule()
	s.add(cli.LightYellow(labeled("CPU usage average 1 min:", fmt.Sprintf("%.2f", m.Usage.Load1))))
	s.add(cli.LightYellow(labeled("CPU usage average 5 min:", fmt.Sprintf("%.2f", m.Usage.Load5))))
	s.add(cli.LightYellow(labeled("CPU usage average 15 min:", fmt.Sprintf("%.2f", m.Usage.Load15))))

	s.rule()
	s.add(cli.LightYellow(labeled("Memory total in GB:", system.FormatGB(m.Usage.MemTotalGB))))
	s.add(cli.LightYellow(labeled("Memory available in GB:",
		fmt.Sprintf("%s ( %.1f%% )", system.FormatGB(m.Usage.MemAvailableGB), 100-m.Usage.MemUsedPercent))))
	s.add(cli.LightYellow(labeled("Memory used in GB:",
		fmt.Sprintf("%s ( %.1f%% )", system.FormatGB(m.Usage.MemUsedGB), m.Usage.MemUsedPercent))))

	s.rule()
	s.add(cli.LightYellow(labeled("Detected LLDP neighbors:", fmt.Sprintf("%d", len(m.Neighbors)))))

	s.footer()
	return s.String()
}

func renderInterface(v *monitor.InterfaceView, width int) string {
	s := &screen{width: width}
	s.header(v.Hostname, monitor.ScreenInterface)

	s.subRule()
	s.add(cli.Gold("Port information (includes admin enabled interfaces only):"))
	s.subRule()
	s.add(cli.LightYellow(fmt.Sprintf("%-25s | %-15s | %-20s | %-20s",
		"Port name", "admin status", "operational status", "description")))

	for _, port := range v.Ports {
		if port.AdminStatus != "up" {
			continue
		}
		line := fmt.Sprintf("%-25s | %-15s | %-20s | %-20s",
			port.Alias, port.AdminStatus, port.OperStatus, port.Description)
		if port.OperStatus == "up" {
			s.add(cli.Green(line))
		} else {
			s.add(cli.Red(line))
		}
	}

	s.subRule()
	s.add(cli.Gold("Interfaces attached to a port channel:"))
	s.subRule()
	s.add(cli.LightYellow(fmt.Sprintf("%-25s | %-25s | %-20s",
		"Port channel name", "port channel status", "child interface")))

	members := make([]string, 0, len(v.PortChannels))
	for member := range v.PortChannels {
		members = append(members, member)
	}
	sort.Strings(members)
	for _, member := range members {
		pc := v.PortChannels[member]
		s.add(cli.Gold(fmt.Sprintf("%-25s | %-25s | %-20s", pc.PortChannel, pc.Status, member)))
	}

	s.footer()
	return s.String()
}

func renderLldp(v *monitor.LldpView, width int) string {
	s := &screen{width: width}
	s.header(v.Hostname, monitor.ScreenLldp)

	s.add(cli.LightYellow("Known LLDP neighbors:"))
	s.subRule()
	s.add(cli.Gold(fmt.Sprintf("%-45s | %-20s | %-20s",
		"System name", "local port", "remote port")))
	for _, neighbor := range v.Neighbors {
		s.subRule()
		s.add(cli.LightYellow(fmt.Sprintf("%-45s | %-20s | %-20s",
			neighbor.RemSysName, neighbor.LocalPort, neighbor.RemPortID)))
	}
	s.subRule()

	s.footer()
	return s.String()
}
