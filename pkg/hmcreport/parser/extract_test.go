package parser

import (
	"testing"

	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
)

// gridSheet builds a sheet whose data rows hold the given cells.
func gridSheet(name string, cells map[models.CellRef]string) *models.Sheet {
	s := &models.Sheet{Name: name, Header: []string{"header"}}
	for ref, v := range cells {
		for len(s.Rows) <= ref.Row {
			s.Rows = append(s.Rows, nil)
		}
		for len(s.Rows[ref.Row]) <= ref.Col {
			s.Rows[ref.Row] = append(s.Rows[ref.Row], "")
		}
		s.Rows[ref.Row][ref.Col] = v
	}
	return s
}

func str(v *string) string {
	if v == nil {
		return "<nil>"
	}
	return *v
}

func TestExtractHMC(t *testing.T) {
	sheet := gridSheet("HMC", map[models.CellRef]string{
		models.At(15, 1): "hmc1",
		models.At(1, 1):  "M1",
	})

	h, ok := ExtractHMC(sheet)
	if !ok {
		t.Fatal("expected an HMC record")
	}
	if str(h.Hostname) != "hmc1" {
		t.Errorf("Hostname = %s, expected hmc1", str(h.Hostname))
	}
	if str(h.HardwareModel) != "M1" {
		t.Errorf("HardwareModel = %s, expected M1", str(h.HardwareModel))
	}
	for name, v := range map[string]*string{
		"serial":       h.Serial,
		"base_version": h.BaseVersion,
		"service_pack": h.ServicePack,
		"gateway":      h.Gateway,
	} {
		if v != nil {
			t.Errorf("%s = %q, expected absent", name, *v)
		}
	}
	if len(h.IPAddresses) != 0 {
		t.Errorf("IPAddresses = %v, expected none", h.IPAddresses)
	}
}

func TestExtractHMCAllFields(t *testing.T) {
	sheet := gridSheet("hmc", map[models.CellRef]string{
		models.At(15, 1): " hmc-prod ",
		models.At(1, 1):  "7063-CR2",
		models.At(2, 1):  "78ABCDE",
		models.At(4, 4):  "V10R2",
		models.At(2, 4):  "M1040",
		models.At(17, 1): "10.0.0.1",
	})

	h, ok := ExtractHMC(sheet)
	if !ok {
		t.Fatal("expected an HMC record")
	}

	tests := []struct {
		field    string
		got      *string
		expected string
	}{
		{"hostname", h.Hostname, "hmc-prod"},
		{"hardware_model", h.HardwareModel, "7063-CR2"},
		{"serial", h.Serial, "78ABCDE"},
		{"base_version", h.BaseVersion, "V10R2"},
		{"service_pack", h.ServicePack, "M1040"},
		{"gateway", h.Gateway, "10.0.0.1"},
	}
	for _, tt := range tests {
		if str(tt.got) != tt.expected {
			t.Errorf("%s = %s, expected %s", tt.field, str(tt.got), tt.expected)
		}
	}
}

func TestExtractHMCInterfaces(t *testing.T) {
	sheet := gridSheet("HMC", map[models.CellRef]string{
		models.At(22, 1): "10.0.0.5",
		models.At(23, 1): "255.255.255.0",
		models.At(22, 2): "192.168.1.10",
		models.At(22, 3): "nan",
		models.At(23, 3): "255.255.0.0",
		models.At(22, 4): "172.16.0.2",
		models.At(23, 4): "nan",
	})

	h, ok := ExtractHMC(sheet)
	if !ok {
		t.Fatal("expected an HMC record")
	}

	tests := []struct {
		iface    string
		present  bool
		expected string
	}{
		{"eth0", true, "10.0.0.5/255.255.255.0"},
		{"eth1", true, "192.168.1.10"},
		{"eth2", false, ""},
		{"eth3", true, "172.16.0.2"},
	}
	for _, tt := range tests {
		addr, ok := h.Address(tt.iface)
		if ok != tt.present || addr != tt.expected {
			t.Errorf("Address(%s) = %q, %v, expected %q, %v", tt.iface, addr, ok, tt.expected, tt.present)
		}
	}

	if len(h.IPAddresses) != 3 || h.IPAddresses[0].Name != "eth0" || h.IPAddresses[2].Name != "eth3" {
		t.Errorf("interfaces out of order: %v", h.IPAddresses)
	}
}

func TestExtractHMCEmptyAndShortSheets(t *testing.T) {
	if _, ok := ExtractHMC(&models.Sheet{Name: "HMC"}); ok {
		t.Error("empty sheet produced an HMC record")
	}

	// Only header-area rows: every offset beyond the sheet is absent.
	short := gridSheet("HMC", map[models.CellRef]string{models.At(0, 0): "Model", models.At(1, 0): "x"})
	if _, ok := ExtractHMC(short); ok {
		t.Error("sheet without any mapped cell produced an HMC record")
	}

	nanOnly := gridSheet("HMC", map[models.CellRef]string{models.At(15, 1): "nan", models.At(1, 1): "  "})
	if _, ok := ExtractHMC(nanOnly); ok {
		t.Error("missing-value markers produced an HMC record")
	}
}

func TestExtractServers(t *testing.T) {
	sheet := &models.Sheet{
		Name:   "System_summary",
		Header: []string{"Name", "State", "Type-Model"},
		Rows: [][]string{
			{"p9-a", "Operating", "9009-42A", "7812345", "", "", "24", "", "", "", "", "", "", "", "", "1024", "", "", "", "", "", "", "10.1.1.10", "", "", "", "FW950.71"},
			{"p9-b"},
			{"", "", "9009-22A"},
			{"nan", "", "9009-22A"},
			{"p9-c", "", "nan", "nan", "", "", "nan"},
			{"p10-d", "", "9105-42A"},
		},
	}

	servers, outcomes := ExtractServers(sheet)
	if len(servers) != 2 {
		t.Fatalf("expected 2 servers, got %d: %+v", len(servers), servers)
	}

	s := servers[0]
	checks := []struct {
		field    string
		got      *string
		expected string
	}{
		{"model", s.Model, "9009-42A"},
		{"serial", s.Serial, "7812345"},
		{"cpu", s.CPU, "24"},
		{"memory", s.Memory, "1024"},
		{"fsp_ip_address", s.FSPIPAddress, "10.1.1.10"},
		{"firmware_level", s.FirmwareLevel, "FW950.71"},
	}
	if s.ServerName != "p9-a" {
		t.Errorf("ServerName = %q, expected p9-a", s.ServerName)
	}
	for _, c := range checks {
		if str(c.got) != c.expected {
			t.Errorf("%s = %s, expected %s", c.field, str(c.got), c.expected)
		}
	}

	if servers[1].ServerName != "p10-d" || str(servers[1].Model) != "9105-42A" || servers[1].Serial != nil {
		t.Errorf("unexpected second server %+v", servers[1])
	}

	expected := []struct {
		status models.Status
		reason string
	}{
		{models.StatusExtracted, ""},
		{models.StatusSkipped, models.ReasonNoFields},
		{models.StatusSkipped, models.ReasonBlankName},
		{models.StatusSkipped, models.ReasonBlankName},
		{models.StatusSkipped, models.ReasonNoFields},
		{models.StatusExtracted, ""},
	}
	if len(outcomes) != len(expected) {
		t.Fatalf("expected %d outcomes, got %d", len(expected), len(outcomes))
	}
	for i, e := range expected {
		if outcomes[i].Row != i || outcomes[i].Status != e.status || outcomes[i].Reason != e.reason {
			t.Errorf("outcome %d = %+v, expected %s/%q", i, outcomes[i], e.status, e.reason)
		}
	}
}

func TestExtractLPARs(t *testing.T) {
	row := make([]string, 34)
	row[0] = "lpar01"
	row[6], row[7], row[8] = "8", "16", "32"
	row[16], row[17], row[18] = "0.5", "1.0", "4.0"
	row[19], row[20], row[21] = "1", "2", "8"
	row[33] = "p9-a"

	sheet := &models.Sheet{
		Name:   "LPAR_profiles",
		Header: make([]string, 34),
		Rows:   [][]string{row, {"lpar02", "", "", "", "", "", "", "4"}, {"lpar03"}},
	}

	lpars, outcomes := ExtractLPARs(sheet)
	if len(lpars) != 2 {
		t.Fatalf("expected 2 LPARs, got %d", len(lpars))
	}

	l := lpars[0]
	checks := []struct {
		field    string
		got      *string
		expected string
	}{
		{"min_memory_gb", l.MinMemoryGB, "8"},
		{"entitled_memory_gb", l.EntitledMemoryGB, "16"},
		{"max_memory_gb", l.MaxMemoryGB, "32"},
		{"min_cpu", l.MinCPU, "0.5"},
		{"desired_entitled_cpu", l.DesiredEntitledCPU, "1.0"},
		{"max_cpu", l.MaxCPU, "4.0"},
		{"min_virtual_processor", l.MinVirtualProcessor, "1"},
		{"desired_virtual_processor", l.DesiredVirtualProcessor, "2"},
		{"max_virtual_processor", l.MaxVirtualProcessor, "8"},
		{"power_server", l.PowerServer, "p9-a"},
	}
	for _, c := range checks {
		if str(c.got) != c.expected {
			t.Errorf("%s = %s, expected %s", c.field, str(c.got), c.expected)
		}
	}

	if lpars[1].LPARName != "lpar02" || str(lpars[1].EntitledMemoryGB) != "4" || lpars[1].PowerServer != nil {
		t.Errorf("unexpected second LPAR %+v", lpars[1])
	}
	if outcomes[2].Status != models.StatusSkipped || outcomes[2].Reason != models.ReasonNoFields {
		t.Errorf("name-only row outcome = %+v", outcomes[2])
	}
}

func TestExtractSheet(t *testing.T) {
	var inv models.Inventory

	hmc := gridSheet("HMC_info", map[models.CellRef]string{models.At(15, 1): "hmc1"})
	kind, outcomes := ExtractSheet(hmc, &inv)
	if kind != KindHMC || len(outcomes) != 1 || outcomes[0].Status != models.StatusExtracted {
		t.Errorf("HMC sheet: kind=%q outcomes=%+v", kind, outcomes)
	}

	servers := &models.Sheet{Name: "System_summary", Rows: [][]string{{"p1", "", "9009"}, {""}}}
	kind, outcomes = ExtractSheet(servers, &inv)
	if kind != KindServer || len(outcomes) != 2 {
		t.Errorf("server sheet: kind=%q outcomes=%+v", kind, outcomes)
	}
	for _, o := range outcomes {
		if o.Sheet != "System_summary" || o.Kind != "server" {
			t.Errorf("outcome missing sheet/kind: %+v", o)
		}
	}

	kind, outcomes = ExtractSheet(&models.Sheet{Name: "LPAR_profiles"}, &inv)
	if kind != KindLPAR || len(outcomes) != 1 || outcomes[0].Reason != models.ReasonEmptySheet {
		t.Errorf("empty LPAR sheet: kind=%q outcomes=%+v", kind, outcomes)
	}

	kind, outcomes = ExtractSheet(&models.Sheet{Name: "CPU_pool", Rows: [][]string{{"x", "y"}}}, &inv)
	if kind != KindUnknown || len(outcomes) != 1 || outcomes[0].Reason != models.ReasonUnknownSheet {
		t.Errorf("unknown sheet: kind=%q outcomes=%+v", kind, outcomes)
	}

	if inv.Counts() != (models.Counts{HMCs: 1, Servers: 1, LPARs: 0}) {
		t.Errorf("unexpected counts %+v", inv.Counts())
	}
}

func TestPositions(t *testing.T) {
	want := map[string]string{
		"hostname":       "B17",
		"service_pack":   "E4",
		"base_version":   "E6",
		"gateway":        "B19",
		"eth0 ip":        "B24",
		"eth3 netmask":   "E25",
		"server_name":    "A",
		"fsp_ip_address": "W",
		"firmware_level": "AA",
		"power_server":   "AH",
	}

	got := map[string]string{}
	for _, p := range Positions() {
		got[p.Field] = p.Cell
	}
	for field, cell := range want {
		if got[field] != cell {
			t.Errorf("position of %s = %q, expected %q", field, got[field], cell)
		}
	}
}
