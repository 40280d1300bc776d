package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Features returns the searchable feature labels of a part: its catalog tags
// followed by labels synthesized from its category attributes. The result may
// contain duplicates; callers that need a set deduplicate.
func Features(p Part) []string {
	if p == nil {
		return nil
	}

	features := make([]string, 0, len(p.Base().Tags)+8)
	for _, tag := range p.Base().Tags {
		if strings.TrimSpace(tag) != "" {
			features = append(features, tag)
		}
	}

	add := func(labels ...string) {
		for _, l := range labels {
			if l != "" {
				features = append(features, l)
			}
		}
	}

	switch v := p.(type) {
	case *Motherboard:
		add(v.FormFactor, v.Memory.Type)
		add(v.CPUSupport.Generations...)

	case *CPU:
		add(v.Vendor, v.Socket, v.Generation,
			fmt.Sprintf("%d cores", v.Cores),
			fmt.Sprintf("%d threads", v.Threads),
			fmt.Sprintf("%dW TDP", v.TDPW))
		if v.IntegratedGPU {
			add("Integrated GPU")
		}

	case *RAM:
		add(v.Type,
			fmt.Sprintf("%dGB", v.KitCapacityGB),
			fmt.Sprintf("%dMHz", v.SpeedMHz))
		add(v.Profiles...)
		if v.RGB {
			add("RGB")
		}
		if v.Heatsink {
			add("Heatsink")
		}

	case *GPU:
		add(v.Series,
			fmt.Sprintf("%dGB VRAM", v.VRAM.SizeGB),
			v.VRAM.Type,
			fmt.Sprintf("%dW TGP", v.Power.TGPW))

	case *PSU:
		add(fmt.Sprintf("%dW", v.Watts), v.Efficiency, v.Modular, v.FormFactor)

	case *Case:
		add(v.FormFactor)
		add(v.MotherboardSupport...)
		add(v.PSUSupport...)
		if v.PSUIntegrated {
			add("Integrated PSU")
		}

	case *CPUCooler:
		add(v.Type,
			fmt.Sprintf("%dW TDP", v.MaxTDPW),
			formatFloat(v.NoiseDB)+"dB")
		add(v.SupportedSockets...)
		if v.RGB {
			add("RGB")
		}

	case *Storage:
		add(v.FormFactor, v.Interface.Type,
			fmt.Sprintf("%dGB", v.CapacityGB),
			v.Interface.Protocol)

	case *Monitor:
		add(formatFloat(v.SizeInch)+`"`, v.Panel,
			fmt.Sprintf("%dHz", v.RefreshHz),
			fmt.Sprintf("%dx%d", v.Resolution.Width, v.Resolution.Height),
			formatFloat(v.ResponseMS)+"ms")
		if v.Features.HDR != nil && *v.Features.HDR != "" {
			add("HDR")
		}
		if v.Features.Curved {
			add("Curved")
		}
		if v.Features.Ultrawide {
			add("Ultrawide")
		}

	case *Keyboard:
		add(v.Size, v.Layout, v.Switch.Type, v.Connection.Type)
		if v.Wireless {
			add("Wireless")
		}
		if v.Backlight != nil && *v.Backlight != "" {
			add("Backlight")
		}

	case *Mouse:
		add(v.Sensor, fmt.Sprintf("%d DPI", v.DPI.Max), v.Connection.Type, v.Shape.Style)
		if v.Wireless {
			add("Wireless")
		}
	}

	return features
}

// formatFloat renders 27 as "27" and 0.5 as "0.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
