package catalog

// Stock status values. Anything other than StockOut counts as in stock.
const (
	StockIn  = "in_stock"
	StockOut = "out_of_stock"
)

// Part is a catalog entry of one category. It is implemented only by the
// pointer types in this file; a category switch over them is exhaustive.
type Part interface {
	// Base returns the attributes shared by every category.
	Base() *Info

	// Category returns the build slot this part fills.
	Category() Category

	part()
}

// Stock is the availability of a part.
type Stock struct {
	Status   string `json:"status"`
	Quantity int    `json:"quantity"`
}

// InStock reports whether the part can be ordered now.
func (s Stock) InStock() bool {
	return s.Status != StockOut
}

// Info holds the attributes shared by every part.
type Info struct {
	// ID is unique within a category
	ID string `json:"id"`

	Brand string `json:"brand"`
	Model string `json:"model"`

	// Name is the display name
	Name string `json:"name"`

	// Price is a non-negative amount in the catalog's currency unit
	Price int `json:"price"`

	Stock Stock `json:"stock"`

	// Tags are free-text feature labels from the catalog
	Tags []string `json:"tags,omitempty"`
}

// Base returns the shared attributes.
func (i *Info) Base() *Info { return i }

func (i *Info) part() {}

// Motherboard

type CPUSupport struct {
	Vendor      string   `json:"vendor"`
	Socket      string   `json:"socket"`
	Generations []string `json:"generations"`
}

type BoardMemory struct {
	Type          string `json:"type"`
	SlotCount     int    `json:"slot_count"`
	MaxCapacityGB int    `json:"max_capacity_gb"`
	SpeedsMHz     []int  `json:"speeds_mhz"`
}

// MaxSpeed returns the highest supported memory speed, or 0 when none is listed.
func (m BoardMemory) MaxSpeed() int {
	highest := 0
	for _, s := range m.SpeedsMHz {
		if s > highest {
			highest = s
		}
	}
	return highest
}

type BoardStorage struct {
	SATAPorts int    `json:"sata_ports"`
	M2Slots   int    `json:"m2_slots"`
	M2PCIeGen string `json:"m2_pcie_gen,omitempty"`
}

type BoardExpansion struct {
	PCIeX16 int    `json:"pcie_x16"`
	PCIeX1  int    `json:"pcie_x1"`
	PCIeGen string `json:"pcie_gen,omitempty"`
}

type BoardNetwork struct {
	Ethernet      string  `json:"ethernet,omitempty"`
	WiFiBluetooth *string `json:"wifi_bluetooth,omitempty"`
}

type Motherboard struct {
	Info
	FormFactor string         `json:"form_factor"`
	Chipset    string         `json:"chipset,omitempty"`
	Socket     string         `json:"socket"`
	CPUSupport CPUSupport     `json:"cpu_support"`
	Memory     BoardMemory    `json:"memory"`
	Storage    BoardStorage   `json:"storage"`
	Expansion  BoardExpansion `json:"expansion"`
	Network    BoardNetwork   `json:"network"`
}

func (*Motherboard) Category() Category { return CategoryMotherboard }

// CPU

type MemorySupport struct {
	Type   string `json:"type"`
	MaxMHz int    `json:"max_mhz"`
}

type CPU struct {
	Info
	Vendor        string        `json:"vendor"`
	Socket        string        `json:"socket"`
	Generation    string        `json:"generation"`
	Cores         int           `json:"cores"`
	Threads       int           `json:"threads"`
	BaseClockGHz  float64       `json:"base_clock_ghz"`
	BoostClockGHz float64       `json:"boost_clock_ghz"`
	TDPW          int           `json:"tdp_w"`
	MemorySupport MemorySupport `json:"memory_support"`
	IntegratedGPU bool          `json:"integrated_gpu"`
}

func (*CPU) Category() Category { return CategoryCPU }

// RAM

type RAM struct {
	Info
	Series           string   `json:"series,omitempty"`
	Type             string   `json:"type"`
	KitCapacityGB    int      `json:"kit_capacity_gb"`
	ModuleCount      int      `json:"module_count"`
	ModuleCapacityGB int      `json:"module_capacity_gb"`
	SpeedMHz         int      `json:"speed_mhz"`
	SpeedProfilesMHz []int    `json:"speed_profiles_mhz,omitempty"`
	CAS              int      `json:"cas"`
	Voltage          float64  `json:"voltage"`
	Profiles         []string `json:"profiles,omitempty"`
	ECC              bool     `json:"ecc"`
	Rank             string   `json:"rank,omitempty"`
	Heatsink         bool     `json:"heatsink"`
	RGB              bool     `json:"rgb"`
}

func (*RAM) Category() Category { return CategoryRAM }

// GPU

type VRAM struct {
	SizeGB int    `json:"size_gb"`
	Type   string `json:"type"`
}

type GPUInterface struct {
	Version string `json:"version"`
	Lanes   string `json:"lanes"`
}

type GPUPower struct {
	TGPW int `json:"tgp_w"`

	// ExtraConnectors are free-text descriptions such as "2 x 8-pin" or "1 x 12VHPWR"
	ExtraConnectors []string `json:"extra_connectors,omitempty"`

	RecommendedPSUW int `json:"recommended_psu_w,omitempty"`
}

type Dimensions struct {
	LengthMM *int `json:"length_mm,omitempty"`
	HeightMM *int `json:"height_mm,omitempty"`
	WidthMM  *int `json:"width_mm,omitempty"`
	Slots    *int `json:"slots,omitempty"`
}

type VideoOutputs struct {
	HDMI int `json:"hdmi"`
	DP   int `json:"dp"`
	DVI  int `json:"dvi"`
}

type GPU struct {
	Info
	Series     string       `json:"series"`
	VRAM       VRAM         `json:"vram"`
	PCIe       GPUInterface `json:"pcie"`
	Power      GPUPower     `json:"power"`
	Dimensions Dimensions   `json:"dimensions"`
	Outputs    VideoOutputs `json:"outputs"`
}

func (*GPU) Category() Category { return CategoryGPU }

// PSU

type PSUConnectors struct {
	PCIe8Pin    int `json:"pcie_8pin"`
	PCIe12VHPWR int `json:"pcie_12vhpwr"`
	EPS8Pin     int `json:"eps_8pin"`
	SATA        int `json:"sata"`
}

type PSU struct {
	Info
	Series      string        `json:"series,omitempty"`
	Watts       int           `json:"watts"`
	Efficiency  string        `json:"efficiency"`
	FormFactor  string        `json:"form_factor"`
	Modular     string        `json:"modular"`
	Connectors  PSUConnectors `json:"connectors"`
	Protections []string      `json:"protections,omitempty"`
}

func (*PSU) Category() Category { return CategoryPSU }

// Case

type IntegratedPSU struct {
	Watts      int    `json:"watts"`
	Efficiency string `json:"efficiency"`
	FormFactor string `json:"form_factor"`
}

// RadiatorSupport lists the radiator lengths (mm) each mount position accepts.
type RadiatorSupport struct {
	Front RadiatorSizes `json:"front,omitempty"`
	Top   RadiatorSizes `json:"top,omitempty"`
	Rear  RadiatorSizes `json:"rear,omitempty"`
}

// All returns front, top and rear sizes in one list.
func (r RadiatorSupport) All() []int {
	out := make([]int, 0, len(r.Front)+len(r.Top)+len(r.Rear))
	out = append(out, r.Front...)
	out = append(out, r.Top...)
	return append(out, r.Rear...)
}

type Case struct {
	Info
	FormFactor         string          `json:"form_factor"`
	MotherboardSupport []string        `json:"motherboard_support"`
	MaxGPULengthMM     int             `json:"max_gpu_length_mm"`
	MaxCoolerHeightMM  int             `json:"max_cooler_height_mm"`
	PSUSupport         []string        `json:"psu_support,omitempty"`
	PSUIntegrated      bool            `json:"psu_integrated"`
	IntegratedPSU      *IntegratedPSU  `json:"integrated_psu,omitempty"`
	RadiatorSupport    RadiatorSupport `json:"radiator_support"`
}

func (*Case) Category() Category { return CategoryCase }

// CPU cooler

const (
	CoolerAir    = "Air"
	CoolerLiquid = "Liquid"
)

type CPUCooler struct {
	Info
	Type             string   `json:"type"`
	FanCount         int      `json:"fan_count"`
	FanSizeMM        int      `json:"fan_size_mm"`
	RadiatorMM       *int     `json:"radiator_mm,omitempty"`
	HeightMM         int      `json:"height_mm"`
	SupportedSockets []string `json:"supported_sockets"`
	MaxTDPW          int      `json:"max_tdp_w"`
	NoiseDB          float64  `json:"noise_db"`
	RGB              bool     `json:"rgb"`
}

func (*CPUCooler) Category() Category { return CategoryCPUCooler }

// Storage

type StorageInterface struct {
	// Type is "SATA", "M.2 SATA" or "M.2 NVMe"
	Type     string `json:"type"`
	Protocol string `json:"protocol"`
	Port     string `json:"port,omitempty"`
}

type StoragePerformance struct {
	ReadMBs  int `json:"read_mb_s"`
	WriteMBs int `json:"write_mb_s"`
}

type Storage struct {
	Info
	FormFactor  string             `json:"form_factor"`
	Interface   StorageInterface   `json:"interface"`
	CapacityGB  int                `json:"capacity_gb"`
	Performance StoragePerformance `json:"performance"`
	TBW         *int               `json:"tbw,omitempty"`
	RPM         *int               `json:"rpm,omitempty"`
}

func (*Storage) Category() Category { return CategoryStorage }

// Monitor

type Resolution struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Aspect string `json:"aspect,omitempty"`
}

type MonitorFeatures struct {
	HDR             *string `json:"hdr,omitempty"`
	FreeSync        bool    `json:"freesync"`
	GSyncCompatible bool    `json:"gsync_compatible"`
	Curved          bool    `json:"curved"`
	Ultrawide       bool    `json:"ultrawide"`
}

type Monitor struct {
	Info
	Series     string          `json:"series,omitempty"`
	SizeInch   float64         `json:"size_inch"`
	Resolution Resolution      `json:"resolution"`
	Panel      string          `json:"panel"`
	RefreshHz  int             `json:"refresh_hz"`
	ResponseMS float64         `json:"response_ms"`
	Features   MonitorFeatures `json:"features"`
}

func (*Monitor) Category() Category { return CategoryMonitor }

// Keyboard

type KeySwitch struct {
	Type    string `json:"type"`
	HotSwap bool   `json:"hot_swap"`
}

type Connection struct {
	Type      string `json:"type"`
	Bluetooth bool   `json:"bluetooth,omitempty"`
}

type Keyboard struct {
	Info
	Series     string     `json:"series,omitempty"`
	Size       string     `json:"size"`
	Layout     string     `json:"layout"`
	Switch     KeySwitch  `json:"switch"`
	Connection Connection `json:"connection"`
	Wireless   bool       `json:"wireless"`
	PollingHz  int        `json:"polling_hz"`
	Backlight  *string    `json:"backlight,omitempty"`
}

func (*Keyboard) Category() Category { return CategoryKeyboard }

// Mouse

type DPIRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type MouseShape struct {
	Style string `json:"style"`
	Grip  string `json:"grip,omitempty"`
}

type Mouse struct {
	Info
	Sensor     string     `json:"sensor"`
	DPI        DPIRange   `json:"dpi"`
	WeightG    int        `json:"weight_g"`
	PollingHz  int        `json:"polling_hz"`
	Connection Connection `json:"connection"`
	Wireless   bool       `json:"wireless"`
	Shape      MouseShape `json:"shape"`
	Buttons    int        `json:"buttons"`
}

func (*Mouse) Category() Category { return CategoryMouse }
