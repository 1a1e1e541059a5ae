package models

// Interface is one HMC network interface address.
type Interface struct {
	// Name is the interface name (eth0..eth3).
	Name string `json:"name"`
	// Address is "ip/netmask", or the bare IP when no netmask was recorded.
	Address string `json:"address"`
}

// HMC holds the identity and network settings of a Hardware Management Console.
type HMC struct {
	Hostname      *string     `json:"hostname,omitempty"`
	HardwareModel *string     `json:"hardware_model,omitempty"`
	Serial        *string     `json:"serial,omitempty"`
	BaseVersion   *string     `json:"base_version,omitempty"`
	ServicePack   *string     `json:"service_pack,omitempty"`
	Gateway       *string     `json:"gateway,omitempty"`
	IPAddresses   []Interface `json:"ip_addresses,omitempty"`
}

// IsEmpty reports whether no field and no interface is set.
func (h *HMC) IsEmpty() bool {
	return len(h.IPAddresses) == 0 && !anySet(
		h.Hostname, h.HardwareModel, h.Serial, h.BaseVersion, h.ServicePack, h.Gateway,
	)
}

// Address returns the recorded address of the named interface.
func (h *HMC) Address(name string) (string, bool) {
	for _, iface := range h.IPAddresses {
		if iface.Name == name {
			return iface.Address, true
		}
	}
	return "", false
}
