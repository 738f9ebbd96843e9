package monitor

import (
	"fmt"

	"github.com/sonicmon/sonicmon/pkg/sonic"
	"github.com/sonicmon/sonicmon/pkg/system"
)

// DataSource is the read surface the screens need. *sonic.Client
// implements it; tests substitute a fake.
type DataSource interface {
	GetDeviceMetadata() (*sonic.DeviceMetadata, error)
	GetSoftwareVersion() (*sonic.SoftwareVersionInfo, error)
	GetAllPorts() ([]sonic.Port, error)
	GetAllLLDPEntries() ([]sonic.LLDPEntry, error)
	GetPortChannelMembers() (sonic.PortChannelState, error)
}

// readUsage is swapped out in tests for deterministic host stats.
var readUsage = system.ReadUsage

// BuildViewModel assembles the ViewModel for the requested screen,
// issuing only the fetches that screen needs. Any fetch error
// propagates unchanged; the caller aborts that tick's render.
func BuildViewModel(screen Screen, src DataSource) (ViewModel, error) {
	switch screen {
	case ScreenMain:
		return buildMainView(src)
	case ScreenInterface:
		return buildInterfaceView(src)
	case ScreenLldp:
		return buildLldpView(src)
	}
	return ViewModel{}, fmt.Errorf("no builder for screen %q", screen)
}

func buildMainView(src DataSource) (ViewModel, error) {
	meta, err := src.GetDeviceMetadata()
	if err != nil {
		return ViewModel{}, err
	}
	version, err := src.GetSoftwareVersion()
	if err != nil {
		return ViewModel{}, err
	}
	entries, err := src.GetAllLLDPEntries()
	if err != nil {
		return ViewModel{}, err
	}
	neighbors := make([]string, 0, len(entries))
	for _, e := range entries {
		neighbors = append(neighbors, e.RemSysName)
	}
	return ViewModel{
		Screen: ScreenMain,
		Main: &MainView{
			Hostname:        meta.Hostname,
			Model:           meta.HwSKU,
			SoftwareVersion: version.SoftwareVersion,
			Distribution:    version.Distribution,
			KernelVersion:   version.Kernel,
			Neighbors:       neighbors,
			Usage:           readUsage(),
		},
	}, nil
}

func buildInterfaceView(src DataSource) (ViewModel, error) {
	meta, err := src.GetDeviceMetadata()
	if err != nil {
		return ViewModel{}, err
	}
	version, err := src.GetSoftwareVersion()
	if err != nil {
		return ViewModel{}, err
	}
	ports, err := src.GetAllPorts()
	if err != nil {
		return ViewModel{}, err
	}
	portChannels, err := src.GetPortChannelMembers()
	if err != nil {
		return ViewModel{}, err
	}
	return ViewModel{
		Screen: ScreenInterface,
		Interface: &InterfaceView{
			Hostname:        meta.Hostname,
			Model:           meta.HwSKU,
			SoftwareVersion: version.SoftwareVersion,
			Ports:           ports,
			PortChannels:    portChannels,
		},
	}, nil
}

func buildLldpView(src DataSource) (ViewModel, error) {
	meta, err := src.GetDeviceMetadata()
	if err != nil {
		return ViewModel{}, err
	}
	version, err := src.GetSoftwareVersion()
	if err != nil {
		return ViewModel{}, err
	}
	entries, err := src.GetAllLLDPEntries()
	if err != nil {
		return ViewModel{}, err
	}
	return ViewModel{
		Screen: ScreenLldp,
		Lldp: &LldpView{
			Hostname:        meta.Hostname,
			Model:           meta.HwSKU,
			SoftwareVersion: version.SoftwareVersion,
			Neighbors:       entries,
		},
	}, nil
}
