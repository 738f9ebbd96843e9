// Package monitor contains the view-model builder and the control
// loop that drives the periodic render cycle.
package monitor

import (
	"fmt"

	"github.com/sonicmon/sonicmon/pkg/sonic"
	"github.com/sonicmon/sonicmon/pkg/system"
)

// Screen identifies one of the user-selectable views.
type Screen string

// The available screens.
const (
	ScreenMain      Screen = "main"
	ScreenInterface Screen = "interface"
	ScreenLldp      Screen = "lldp"
)

// ParseScreen maps a screen name to its Screen value.
func ParseScreen(name string) (Screen, error) {
	switch Screen(name) {
	case ScreenMain, ScreenInterface, ScreenLldp:
		return Screen(name), nil
	}
	return "", fmt.Errorf("unknown screen %q (want main, interface or lldp)", name)
}

// MainView carries the data the main screen renders.
type MainView struct {
	Hostname        string
	Model           string
	SoftwareVersion string
	Distribution    string
	KernelVersion   string
	Neighbors       []string
	Usage           system.Usage
}

// InterfaceView carries the data the interface screen renders.
type InterfaceView struct {
	Hostname        string
	Model           string
	SoftwareVersion string
	Ports           []sonic.Port
	PortChannels    sonic.PortChannelState
}

// LldpView carries the data the LLDP screen renders.
type LldpView struct {
	Hostname        string
	Model           string
	SoftwareVersion string
	Neighbors       []sonic.LLDPEntry
}

// ViewModel is a closed sum over the three screen payloads. Screen is
// the discriminant and always matches the single populated variant.
type ViewModel struct {
	Screen    Screen
	Main      *MainView
	Interface *InterfaceView
	Lldp      *LldpView
}
