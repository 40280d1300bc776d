// Package catalogtest provides a small, hand-checked parts catalog for tests.
package catalogtest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hpungsan/rig/internal/catalog"
)

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// String returns a pointer to s.
func String(s string) *string { return &s }

func info(id, brand, model string, price int, stock string) catalog.Info {
	return catalog.Info{
		ID:    id,
		Brand: brand,
		Model: model,
		Name:  brand + " " + model,
		Price: price,
		Stock: catalog.Stock{Status: stock, Quantity: qty(stock)},
	}
}

func qty(stock string) int {
	if stock == catalog.StockOut {
		return 0
	}
	return 10
}

// Motherboards: an AM5 ATX board, an LGA1700 mATX DDR4 board and a
// stripped-down ITX board with no x16 slot, M.2 or SATA.
func Motherboards() []catalog.Part {
	return []catalog.Part{
		&catalog.Motherboard{
			Info:       info("mb-am5", "ASUS", "TUF B650-PLUS", 100, catalog.StockIn),
			FormFactor: "ATX",
			Chipset:    "B650",
			Socket:     "AM5",
			CPUSupport: catalog.CPUSupport{Vendor: "AMD", Socket: "AM5", Generations: []string{"Zen4", "Zen5"}},
			Memory:     catalog.BoardMemory{Type: "DDR5", SlotCount: 4, MaxCapacityGB: 192, SpeedsMHz: []int{4800, 5600, 6000}},
			Storage:    catalog.BoardStorage{SATAPorts: 4, M2Slots: 2, M2PCIeGen: "4.0"},
			Expansion:  catalog.BoardExpansion{PCIeX16: 1, PCIeX1: 2, PCIeGen: "4.0"},
		},
		&catalog.Motherboard{
			Info:       info("mb-lga1700", "MSI", "PRO B760M-A DDR4", 90, catalog.StockIn),
			FormFactor: "Micro-ATX",
			Chipset:    "B760",
			Socket:     "LGA1700",
			CPUSupport: catalog.CPUSupport{Vendor: "Intel", Socket: "LGA1700", Generations: []string{"12th Gen", "13th Gen"}},
			Memory:     catalog.BoardMemory{Type: "DDR4", SlotCount: 2, MaxCapacityGB: 64, SpeedsMHz: []int{2666, 3200}},
			Storage:    catalog.BoardStorage{SATAPorts: 2, M2Slots: 0},
			Expansion:  catalog.BoardExpansion{PCIeX16: 1},
		},
		&catalog.Motherboard{
			Info:       info("mb-bare", "Biostar", "A620MS", 150, catalog.StockIn),
			FormFactor: "Mini-ITX",
			Socket:     "AM5",
			CPUSupport: catalog.CPUSupport{Vendor: "AMD", Socket: "AM5", Generations: []string{"Zen4"}},
			Memory:     catalog.BoardMemory{Type: "DDR5", SlotCount: 2, SpeedsMHz: []int{5200}},
		},
	}
}

// CPUs covering a match, a wrong generation, an out-of-stock match and a wrong vendor.
func CPUs() []catalog.Part {
	return []catalog.Part{
		&catalog.CPU{
			Info:       info("cpu-7950x", "AMD", "Ryzen 9 7950X", 200, catalog.StockIn),
			Vendor:     "AMD", Socket: "AM5", Generation: "Zen4",
			Cores: 16, Threads: 32, BaseClockGHz: 4.5, BoostClockGHz: 5.7, TDPW: 125,
			MemorySupport: catalog.MemorySupport{Type: "DDR5", MaxMHz: 5200},
			IntegratedGPU: true,
		},
		&catalog.CPU{
			Info:   info("cpu-5800x", "AMD", "Ryzen 7 5800X", 150, catalog.StockIn),
			Vendor: "AMD", Socket: "AM4", Generation: "Zen3",
			Cores: 8, Threads: 16, TDPW: 105,
		},
		&catalog.CPU{
			Info:   info("cpu-9700x", "AMD", "Ryzen 7 9700X", 300, catalog.StockOut),
			Vendor: "AMD", Socket: "AM5", Generation: "Zen5",
			Cores: 8, Threads: 16, TDPW: 65,
		},
		&catalog.CPU{
			Info:   info("cpu-13600k", "Intel", "Core i5-13600K", 250, catalog.StockIn),
			Vendor: "Intel", Socket: "LGA1700", Generation: "13th Gen",
			Cores: 14, Threads: 20, TDPW: 125,
			IntegratedGPU: true,
		},
	}
}

// RAMs: a DDR5 kit the AM5 board runs, one too fast, a DDR4 kit and an
// out-of-stock quad kit.
func RAMs() []catalog.Part {
	return []catalog.Part{
		&catalog.RAM{
			Info: info("ram-ddr5-6000", "G.Skill", "Trident Z5 Neo 32GB", 120, catalog.StockIn),
			Type: "DDR5", KitCapacityGB: 32, ModuleCount: 2, ModuleCapacityGB: 16,
			SpeedMHz: 6000, CAS: 30, Voltage: 1.35, Profiles: []string{"EXPO"}, RGB: true, Heatsink: true,
		},
		&catalog.RAM{
			Info: info("ram-ddr5-7200", "Corsair", "Vengeance 32GB 7200", 180, catalog.StockIn),
			Type: "DDR5", KitCapacityGB: 32, ModuleCount: 2, ModuleCapacityGB: 16,
			SpeedMHz: 7200, CAS: 34, Profiles: []string{"XMP"},
		},
		&catalog.RAM{
			Info: info("ram-ddr4-3200", "Kingston", "Fury Beast 16GB", 60, catalog.StockIn),
			Type: "DDR4", KitCapacityGB: 16, ModuleCount: 2, ModuleCapacityGB: 8,
			SpeedMHz: 3200, CAS: 16, Profiles: []string{"XMP"},
		},
		&catalog.RAM{
			Info: info("ram-ddr5-quad", "Kingston", "Fury Beast 64GB 4x16", 220, catalog.StockOut),
			Type: "DDR5", KitCapacityGB: 64, ModuleCount: 4, ModuleCapacityGB: 16,
			SpeedMHz: 5600,
		},
	}
}

// GPUs: a 2x 8-pin card, a 12VHPWR card and a short card with unknown length.
func GPUs() []catalog.Part {
	return []catalog.Part{
		&catalog.GPU{
			Info:       info("gpu-7900xt", "Sapphire", "Pulse RX 7900 XT", 700, catalog.StockIn),
			Series:     "Radeon RX 7000",
			VRAM:       catalog.VRAM{SizeGB: 20, Type: "GDDR6"},
			Power:      catalog.GPUPower{TGPW: 300, ExtraConnectors: []string{"2 x 8-pin"}, RecommendedPSUW: 750},
			Dimensions: catalog.Dimensions{LengthMM: Int(320)},
		},
		&catalog.GPU{
			Info:       info("gpu-4090", "ASUS", "TUF RTX 4090", 1600, catalog.StockIn),
			Series:     "GeForce RTX 40",
			VRAM:       catalog.VRAM{SizeGB: 24, Type: "GDDR6X"},
			Power:      catalog.GPUPower{TGPW: 450, ExtraConnectors: []string{"1 x 12VHPWR"}, RecommendedPSUW: 850},
			Dimensions: catalog.Dimensions{LengthMM: Int(357)},
		},
		&catalog.GPU{
			Info:   info("gpu-a380", "Sparkle", "Arc A380 ELF", 250, catalog.StockIn),
			Series: "Arc A",
			VRAM:   catalog.VRAM{SizeGB: 6, Type: "GDDR6"},
			Power:  catalog.GPUPower{TGPW: 75},
		},
	}
}

// PSUs around the 575W threshold of cpu-7950x + gpu-7900xt.
func PSUs() []catalog.Part {
	return []catalog.Part{
		&catalog.PSU{
			Info:  info("psu-650", "Corsair", "RM650e", 90, catalog.StockIn),
			Watts: 650, Efficiency: "80+ Gold", FormFactor: "ATX", Modular: "full",
			Connectors: catalog.PSUConnectors{PCIe8Pin: 2, EPS8Pin: 1, SATA: 6},
		},
		&catalog.PSU{
			Info:  info("psu-550", "be quiet!", "System Power 10 550W", 60, catalog.StockIn),
			Watts: 550, Efficiency: "80+ Bronze", FormFactor: "ATX", Modular: "non",
			Connectors: catalog.PSUConnectors{PCIe8Pin: 2, EPS8Pin: 1, SATA: 5},
		},
		&catalog.PSU{
			Info:  info("psu-1000", "Seasonic", "Vertex GX-1000", 200, catalog.StockIn),
			Watts: 1000, Efficiency: "80+ Gold", FormFactor: "ATX", Modular: "full",
			Connectors: catalog.PSUConnectors{PCIe8Pin: 4, PCIe12VHPWR: 1, EPS8Pin: 2, SATA: 8},
		},
		&catalog.PSU{
			Info:  info("psu-sfx-750", "Cooler Master", "V750 SFX", 150, catalog.StockIn),
			Watts: 750, Efficiency: "80+ Gold", FormFactor: "SFX", Modular: "full",
			Connectors: catalog.PSUConnectors{PCIe8Pin: 2, EPS8Pin: 1, SATA: 4},
		},
	}
}

// Cases: a roomy ATX tower, a small ITX box and a case with a built-in PSU.
func Cases() []catalog.Part {
	return []catalog.Part{
		&catalog.Case{
			Info:               info("case-atx", "Fractal", "North", 80, catalog.StockIn),
			FormFactor:         "Mid Tower",
			MotherboardSupport: []string{"ATX", "Micro-ATX", "Mini-ITX"},
			MaxGPULengthMM:     400,
			MaxCoolerHeightMM:  170,
			PSUSupport:         []string{"ATX"},
			RadiatorSupport: catalog.RadiatorSupport{
				Front: catalog.RadiatorSizes{240, 360},
				Top:   catalog.RadiatorSizes{240, 280},
				Rear:  catalog.RadiatorSizes{120},
			},
		},
		&catalog.Case{
			Info:               info("case-itx", "NZXT", "H1", 110, catalog.StockIn),
			FormFactor:         "Mini Tower",
			MotherboardSupport: []string{"Mini-ITX"},
			MaxGPULengthMM:     300,
			MaxCoolerHeightMM:  70,
			PSUSupport:         []string{"SFX"},
		},
		&catalog.Case{
			Info:               info("case-psu", "Thermaltake", "Versa H17 500W", 80, catalog.StockIn),
			FormFactor:         "Mini Tower",
			MotherboardSupport: []string{"ATX", "Micro-ATX"},
			MaxGPULengthMM:     330,
			MaxCoolerHeightMM:  160,
			PSUIntegrated:      true,
			IntegratedPSU:      &catalog.IntegratedPSU{Watts: 500, Efficiency: "80+", FormFactor: "ATX"},
		},
	}
}

// CPUCoolers exercising each gate of the cooler rule.
func CPUCoolers() []catalog.Part {
	return []catalog.Part{
		&catalog.CPUCooler{
			Info: info("cooler-air", "Noctua", "NH-D15", 90, catalog.StockIn),
			Type: catalog.CoolerAir, FanCount: 2, FanSizeMM: 140, HeightMM: 165,
			SupportedSockets: []string{"AM5", "AM4", "LGA1700"}, MaxTDPW: 220, NoiseDB: 24.6,
		},
		&catalog.CPUCooler{
			Info: info("cooler-air-tall", "Thermalright", "Frost Commander 200", 100, catalog.StockIn),
			Type: catalog.CoolerAir, FanCount: 2, FanSizeMM: 140, HeightMM: 180,
			SupportedSockets: []string{"AM5"}, MaxTDPW: 250, NoiseDB: 26,
		},
		&catalog.CPUCooler{
			Info: info("cooler-aio-360", "Arctic", "Liquid Freezer III 360", 150, catalog.StockIn),
			Type: catalog.CoolerLiquid, FanCount: 3, FanSizeMM: 120, RadiatorMM: Int(360), HeightMM: 52,
			SupportedSockets: []string{"AM5", "LGA1700"}, MaxTDPW: 300, NoiseDB: 22.5, RGB: true,
		},
		&catalog.CPUCooler{
			Info: info("cooler-aio-420", "Arctic", "Liquid Freezer III 420", 200, catalog.StockIn),
			Type: catalog.CoolerLiquid, FanCount: 3, FanSizeMM: 140, RadiatorMM: Int(420), HeightMM: 52,
			SupportedSockets: []string{"AM5"}, MaxTDPW: 350, NoiseDB: 23,
		},
		&catalog.CPUCooler{
			Info: info("cooler-stock", "Intel", "Laminar RM1", 30, catalog.StockIn),
			Type: catalog.CoolerAir, FanCount: 1, FanSizeMM: 92, HeightMM: 47,
			SupportedSockets: []string{"LGA1700"}, MaxTDPW: 65, NoiseDB: 30,
		},
	}
}

// Storages: NVMe, SATA and an interface no board supports.
func Storages() []catalog.Part {
	return []catalog.Part{
		&catalog.Storage{
			Info:       info("ssd-nvme", "Samsung", "990 PRO 2TB", 150, catalog.StockIn),
			FormFactor: "M.2 2280",
			Interface:  catalog.StorageInterface{Type: "M.2 NVMe", Protocol: "NVMe 2.0", Port: "PCIe 4.0 x4"},
			CapacityGB: 2000,
			TBW:        Int(1200),
		},
		&catalog.Storage{
			Info:       info("ssd-sata", "Crucial", "MX500 1TB", 70, catalog.StockIn),
			FormFactor: "2.5in",
			Interface:  catalog.StorageInterface{Type: "SATA", Protocol: "AHCI", Port: "SATA III"},
			CapacityGB: 1000,
		},
		&catalog.Storage{
			Info:       info("hdd-sas", "Seagate", "Exos 7E10 8TB SAS", 100, catalog.StockIn),
			FormFactor: "3.5in",
			Interface:  catalog.StorageInterface{Type: "SAS", Protocol: "SAS-3"},
			CapacityGB: 8000,
			RPM:        Int(7200),
		},
	}
}

func Monitors() []catalog.Part {
	return []catalog.Part{
		&catalog.Monitor{
			Info:       info("mon-27", "Dell", "S2721DGF", 300, catalog.StockIn),
			SizeInch:   27,
			Resolution: catalog.Resolution{Name: "QHD", Width: 2560, Height: 1440, Aspect: "16:9"},
			Panel:      "IPS", RefreshHz: 165, ResponseMS: 1,
			Features: catalog.MonitorFeatures{HDR: String("HDR400"), FreeSync: true},
		},
	}
}

func Keyboards() []catalog.Part {
	return []catalog.Part{
		&catalog.Keyboard{
			Info: info("kb-tkl", "Keychron", "V3", 80, catalog.StockIn),
			Size: "TKL", Layout: "US ANSI",
			Switch:     catalog.KeySwitch{Type: "Red", HotSwap: true},
			Connection: catalog.Connection{Type: "USB-C"},
			PollingHz:  1000,
			Backlight:  String("RGB"),
		},
	}
}

func Mice() []catalog.Part {
	return []catalog.Part{
		&catalog.Mouse{
			Info:   info("mouse-1", "Logitech", "G Pro X Superlight 2", 60, catalog.StockIn),
			Sensor: "HERO 2", DPI: catalog.DPIRange{Min: 100, Max: 32000}, WeightG: 60, PollingHz: 2000,
			Connection: catalog.Connection{Type: "2.4GHz"},
			Wireless:   true,
			Shape:      catalog.MouseShape{Style: "Symmetric", Grip: "claw"},
			Buttons:    5,
		},
	}
}

// Lists returns every fixture list keyed by category.
func Lists() map[catalog.Category][]catalog.Part {
	return map[catalog.Category][]catalog.Part{
		catalog.CategoryMotherboard: Motherboards(),
		catalog.CategoryCPU:         CPUs(),
		catalog.CategoryRAM:         RAMs(),
		catalog.CategoryGPU:         GPUs(),
		catalog.CategoryPSU:         PSUs(),
		catalog.CategoryCase:        Cases(),
		catalog.CategoryCPUCooler:   CPUCoolers(),
		catalog.CategoryStorage:     Storages(),
		catalog.CategoryMonitor:     Monitors(),
		catalog.CategoryKeyboard:    Keyboards(),
		catalog.CategoryMouse:       Mice(),
	}
}

// Catalog returns the full fixture catalog.
func Catalog() *catalog.Catalog {
	return catalog.NewCatalog(Lists())
}

// WriteDir writes one <key>.json file per category into dir.
func WriteDir(dir string) error {
	for cat, parts := range Lists() {
		data, err := json.MarshalIndent(parts, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, cat.Key()+".json"), data, 0600); err != nil {
			return err
		}
	}
	return nil
}

// FullBuild is a compatible pick for every slot, in pipeline order.
var FullBuild = [catalog.NumCategories]string{
	"mb-am5", "cpu-7950x", "ram-ddr5-6000", "gpu-7900xt", "psu-650", "case-atx",
	"cooler-air", "ssd-nvme", "mon-27", "kb-tkl", "mouse-1",
}
