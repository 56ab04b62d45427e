package network

type AdapterStatus string
type AdapterType string

const (
	StatusUp           AdapterStatus = "Up"
	StatusDisabled     AdapterStatus = "Disabled"
	StatusDisconnected AdapterStatus = "Disconnected"
	StatusUnknown      AdapterStatus = "Unknown"
)

const (
	TypeEthernet AdapterType = "Ethernet"
	TypeWiFi     AdapterType = "Wi-Fi"
	TypeUnknown  AdapterType = "Unknown"
)

// Adapter is a snapshot of one network adapter taken at query time.
// Name is the key for every later enable/disable call.
type Adapter struct {
	Name                 string        `json:"name" yaml:"name"`
	InterfaceDescription string        `json:"interfaceDescription" yaml:"interfaceDescription"`
	Status               AdapterStatus `json:"status" yaml:"status"`
	Type                 AdapterType   `json:"type" yaml:"type"`
}

func (a Adapter) IsEnabled() bool {
	return a.Status == StatusUp
}

func (a Adapter) IsEthernet() bool {
	return a.Type == TypeEthernet
}

func (a Adapter) IsWifi() bool {
	return a.Type == TypeWiFi
}

// FirstOfType returns the first adapter of the given type, or nil.
func FirstOfType(adapters []Adapter, adapterType AdapterType) *Adapter {
	for _, adapter := range adapters {
		if adapter.Type == adapterType {
			found := adapter
			return &found
		}
	}

	return nil
}
