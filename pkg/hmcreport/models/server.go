package models

// Server is one physical system from the system summary sheet.
type Server struct {
	ServerName    string  `json:"server_name"`
	Model         *string `json:"model,omitempty"`
	Serial        *string `json:"serial,omitempty"`
	CPU           *string `json:"cpu,omitempty"`
	Memory        *string `json:"memory,omitempty"`
	FirmwareLevel *string `json:"firmware_level,omitempty"`
	FSPIPAddress  *string `json:"fsp_ip_address,omitempty"`
}

// HasDetails reports whether any field besides the name is set.
func (s *Server) HasDetails() bool {
	return anySet(s.Model, s.Serial, s.CPU, s.Memory, s.FirmwareLevel, s.FSPIPAddress)
}
