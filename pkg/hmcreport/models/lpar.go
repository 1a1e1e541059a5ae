package models

// LPAR is one logical partition profile.
type LPAR struct {
	LPARName                string  `json:"lpar_name"`
	DesiredEntitledCPU      *string `json:"desired_entitled_cpu,omitempty"`
	MinCPU                  *string `json:"min_cpu,omitempty"`
	MaxCPU                  *string `json:"max_cpu,omitempty"`
	DesiredVirtualProcessor *string `json:"desired_virtual_processor,omitempty"`
	MinVirtualProcessor     *string `json:"min_virtual_processor,omitempty"`
	MaxVirtualProcessor     *string `json:"max_virtual_processor,omitempty"`
	EntitledMemoryGB        *string `json:"entitled_memory_gb,omitempty"`
	MinMemoryGB             *string `json:"min_memory_gb,omitempty"`
	MaxMemoryGB             *string `json:"max_memory_gb,omitempty"`
	PowerServer             *string `json:"power_server,omitempty"`
}

// HasDetails reports whether any field besides the name is set.
func (l *LPAR) HasDetails() bool {
	return anySet(
		l.DesiredEntitledCPU, l.MinCPU, l.MaxCPU,
		l.DesiredVirtualProcessor, l.MinVirtualProcessor, l.MaxVirtualProcessor,
		l.EntitledMemoryGB, l.MinMemoryGB, l.MaxMemoryGB,
		l.PowerServer,
	)
}
