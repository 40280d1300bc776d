package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// New returns an empty part of the given category, ready to be decoded into.
func New(c Category) (Part, error) {
	switch c {
	case CategoryMotherboard:
		return &Motherboard{}, nil
	case CategoryCPU:
		return &CPU{}, nil
	case CategoryRAM:
		return &RAM{}, nil
	case CategoryGPU:
		return &GPU{}, nil
	case CategoryPSU:
		return &PSU{}, nil
	case CategoryCase:
		return &Case{}, nil
	case CategoryCPUCooler:
		return &CPUCooler{}, nil
	case CategoryStorage:
		return &Storage{}, nil
	case CategoryMonitor:
		return &Monitor{}, nil
	case CategoryKeyboard:
		return &Keyboard{}, nil
	case CategoryMouse:
		return &Mouse{}, nil
	}
	return nil, fmt.Errorf("unknown category %d", int(c))
}

// EncodePart serializes a single part as JSON.
func EncodePart(p Part) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("nil part")
	}
	return json.Marshal(p)
}

// DecodePart decodes one part of category c.
func DecodePart(c Category, data []byte) (Part, error) {
	p, err := New(c)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c, err)
	}
	return p, nil
}

// DecodeList decodes a JSON array of parts of category c.
func DecodeList(c Category, data []byte) ([]Part, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", c, err)
	}
	parts := make([]Part, 0, len(raw))
	for i, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		p, err := DecodePart(c, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// RadiatorSizes is a list of radiator lengths in millimetres. Catalog files mix
// numbers and strings ("240", "240mm"); entries that carry no number are dropped.
type RadiatorSizes []int

// UnmarshalJSON implements json.Unmarshaler.
func (r *RadiatorSizes) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	sizes := make(RadiatorSizes, 0, len(raw))
	for _, v := range raw {
		switch x := v.(type) {
		case float64:
			sizes = append(sizes, int(x))
		case string:
			s := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(x)), "mm")
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				sizes = append(sizes, n)
			}
		}
	}
	*r = sizes
	return nil
}
