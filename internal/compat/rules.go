package compat

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/hpungsan/rig/internal/catalog"
)

// PSUHeadroomW is added to CPU TDP plus GPU TGP to size the power supply.
const PSUHeadroomW = 150

// CPU: vendor, socket, then generation. First mismatch wins.
func checkCPU(mobo *catalog.Motherboard, cpu *catalog.CPU) []string {
	support := mobo.CPUSupport
	switch {
	case cpu.Vendor != support.Vendor:
		return []string{fmt.Sprintf("vendor %s not supported (motherboard takes %s)", cpu.Vendor, support.Vendor)}
	case cpu.Socket != support.Socket:
		return []string{fmt.Sprintf("socket %s does not match motherboard socket %s", cpu.Socket, support.Socket)}
	case !slices.Contains(support.Generations, cpu.Generation):
		return []string{fmt.Sprintf("generation %s not supported by motherboard", cpu.Generation)}
	}
	return nil
}

// RAM: every failing check is reported.
func checkRAM(mobo *catalog.Motherboard, ram *catalog.RAM) []string {
	var reasons []string
	if ram.Type != mobo.Memory.Type {
		reasons = append(reasons, fmt.Sprintf("memory type %s not supported (motherboard takes %s)", ram.Type, mobo.Memory.Type))
	}
	if maxSpeed := mobo.Memory.MaxSpeed(); ram.SpeedMHz > maxSpeed {
		reasons = append(reasons, fmt.Sprintf("speed %dMHz exceeds motherboard maximum %dMHz", ram.SpeedMHz, maxSpeed))
	}
	if ram.ModuleCount > mobo.Memory.SlotCount {
		reasons = append(reasons, fmt.Sprintf("%d modules but only %d memory slots", ram.ModuleCount, mobo.Memory.SlotCount))
	}
	return reasons
}

func checkGPU(mobo *catalog.Motherboard) []string {
	if mobo.Expansion.PCIeX16 < 1 {
		return []string{"motherboard has no PCIe x16 slot"}
	}
	return nil
}

// RequiredWatts is the minimum PSU rating for a CPU and GPU pair.
func RequiredWatts(cpu *catalog.CPU, gpu *catalog.GPU) int {
	return cpu.TDPW + gpu.Power.TGPW + PSUHeadroomW
}

var eightPinCount = regexp.MustCompile(`(?i)(\d+)\s*x\s*8-pin`)

// ConnectorNeeds counts the PCIe 8-pin and 12VHPWR plugs a GPU's connector
// descriptions ask for. "2 x 8-pin" needs two 8-pin plugs; a bare "8-pin" or
// "6+2-pin 8-pin" needs one; anything mentioning 12VHPWR needs one 12VHPWR.
func ConnectorNeeds(connectors []string) (eightPin, hpwr int) {
	for _, c := range connectors {
		if m := eightPinCount.FindStringSubmatch(c); m != nil {
			n, _ := strconv.Atoi(m[1])
			eightPin += n
		} else if strings.Contains(strings.ToLower(c), "8-pin") {
			eightPin++
		} else if strings.Contains(strings.ToUpper(c), "12VHPWR") {
			hpwr++
		}
	}
	return eightPin, hpwr
}

// PSU: wattage and connector reasons are both reported when both fail.
func checkPSU(cpu *catalog.CPU, gpu *catalog.GPU, psu *catalog.PSU) []string {
	var reasons []string
	required := RequiredWatts(cpu, gpu)
	if psu.Watts < required {
		reasons = append(reasons, fmt.Sprintf("insufficient wattage (at least %dW required)", required))
	}
	eightPin, hpwr := ConnectorNeeds(gpu.Power.ExtraConnectors)
	if psu.Connectors.PCIe8Pin < eightPin || psu.Connectors.PCIe12VHPWR < hpwr {
		reasons = append(reasons, fmt.Sprintf("insufficient power connectors (need %dx 8-pin, %dx 12VHPWR)", eightPin, hpwr))
	}
	return reasons
}

// CPU cooler: socket, TDP, air cooler height, radiator size. First failing
// gate wins.
func checkCooler(cpu *catalog.CPU, pcCase *catalog.Case, cooler *catalog.CPUCooler) []string {
	if !slices.Contains(cooler.SupportedSockets, cpu.Socket) {
		return []string{fmt.Sprintf("socket %s not supported", cpu.Socket)}
	}
	if cooler.MaxTDPW < cpu.TDPW {
		return []string{fmt.Sprintf("max TDP %dW below CPU TDP %dW", cooler.MaxTDPW, cpu.TDPW)}
	}
	if cooler.Type == catalog.CoolerAir && cooler.HeightMM > pcCase.MaxCoolerHeightMM {
		return []string{fmt.Sprintf("height %dmm exceeds case limit %dmm", cooler.HeightMM, pcCase.MaxCoolerHeightMM)}
	}
	if cooler.Type == catalog.CoolerLiquid && cooler.RadiatorMM != nil &&
		!slices.Contains(pcCase.RadiatorSupport.All(), *cooler.RadiatorMM) {
		return []string{fmt.Sprintf("case does not fit a %dmm radiator", *cooler.RadiatorMM)}
	}
	return nil
}

func checkStorage(mobo *catalog.Motherboard, s *catalog.Storage) []string {
	switch {
	case strings.HasPrefix(s.FormFactor, "M.2"):
		if mobo.Storage.M2Slots < 1 {
			return []string{"motherboard has no M.2 slot"}
		}
	case s.Interface.Type == "SATA":
		if mobo.Storage.SATAPorts < 1 {
			return []string{"motherboard has no SATA port"}
		}
	default:
		return []string{"unknown interface type"}
	}
	return nil
}

// Case: motherboard form factor, GPU length and PSU form factor are all
// checked and every failure is reported. The PSU gate is skipped for cases
// with a built-in PSU, as is the GPU gate when the GPU length is unknown.
func checkCase(mobo *catalog.Motherboard, gpu *catalog.GPU, psu *catalog.PSU, pcCase *catalog.Case) []string {
	var reasons []string
	if !slices.Contains(pcCase.MotherboardSupport, mobo.FormFactor) {
		reasons = append(reasons, fmt.Sprintf("motherboard form factor %s does not fit", mobo.FormFactor))
	}
	if l := gpu.Dimensions.LengthMM; l != nil && *l > pcCase.MaxGPULengthMM {
		reasons = append(reasons, fmt.Sprintf("GPU length %dmm exceeds case limit %dmm", *l, pcCase.MaxGPULengthMM))
	}
	if !pcCase.PSUIntegrated && !slices.Contains(pcCase.PSUSupport, psu.FormFactor) {
		reasons = append(reasons, fmt.Sprintf("PSU form factor %s does not fit", psu.FormFactor))
	}
	return reasons
}

const integratedPSUConflict = "case has an integrated PSU; the selected PSU would be redundant"

func caseConflict(psu *catalog.PSU, pcCase *catalog.Case) string {
	if pcCase.PSUIntegrated && psu != nil {
		return integratedPSUConflict
	}
	return ""
}
