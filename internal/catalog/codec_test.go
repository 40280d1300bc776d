package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePart_DispatchesOnCategory(t *testing.T) {
	data := []byte(`{
		"id": "cpu-1", "brand": "AMD", "model": "Ryzen 5 7600", "name": "AMD Ryzen 5 7600",
		"price": 180, "stock": {"status": "in_stock", "quantity": 4},
		"vendor": "AMD", "socket": "AM5", "generation": "Zen4", "tdp_w": 65
	}`)

	p, err := DecodePart(CategoryCPU, data)
	require.NoError(t, err)
	require.Equal(t, CategoryCPU, p.Category())

	cpu, ok := p.(*CPU)
	require.True(t, ok)
	require.Equal(t, "cpu-1", cpu.ID)
	require.Equal(t, 180, cpu.Price)
	require.Equal(t, 65, cpu.TDPW)
	require.True(t, cpu.Stock.InStock())
}

func TestDecodePart_InvalidJSON(t *testing.T) {
	_, err := DecodePart(CategoryGPU, []byte(`{"id":`))
	require.Error(t, err)
}

func TestDecodePart_InvalidCategory(t *testing.T) {
	_, err := DecodePart(Category(99), []byte(`{}`))
	require.Error(t, err)
}

func TestEncodeDecode_PreservesVariant(t *testing.T) {
	in := &Case{
		Info:               Info{ID: "case-1", Brand: "Lian Li", Model: "A3", Price: 90},
		FormFactor:         "Micro Tower",
		MotherboardSupport: []string{"Micro-ATX"},
		PSUIntegrated:      true,
		IntegratedPSU:      &IntegratedPSU{Watts: 450},
		RadiatorSupport:    RadiatorSupport{Top: RadiatorSizes{240}},
	}

	data, err := EncodePart(in)
	require.NoError(t, err)

	out, err := DecodePart(CategoryCase, data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodePart_Nil(t *testing.T) {
	_, err := EncodePart(nil)
	require.Error(t, err)
}

func TestDecodeList(t *testing.T) {
	data := []byte(`[
		{"id": "k1", "brand": "Keychron", "size": "TKL"},
		null,
		{"id": "k2", "brand": "Ducky", "size": "60%"}
	]`)

	parts, err := DecodeList(CategoryKeyboard, data)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	require.Equal(t, "k1", parts[0].Base().ID)
	require.Equal(t, "k2", parts[1].Base().ID)
}

func TestDecodeList_ReportsItemIndex(t *testing.T) {
	_, err := DecodeList(CategoryMouse, []byte(`[{"id":"m1"},{"id":5}]`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "item 1")
}

func TestDecodeList_NotAnArray(t *testing.T) {
	_, err := DecodeList(CategoryMouse, []byte(`{"id":"m1"}`))
	require.Error(t, err)
}

func TestRadiatorSizes_MixedEntries(t *testing.T) {
	var sizes RadiatorSizes
	err := json.Unmarshal([]byte(`[240, "280", "360mm", " 120 MM ", "none", true]`), &sizes)
	require.NoError(t, err)
	require.Equal(t, RadiatorSizes{240, 280, 360, 120}, sizes)
}

func TestRadiatorSupport_All(t *testing.T) {
	r := RadiatorSupport{
		Front: RadiatorSizes{240, 360},
		Top:   RadiatorSizes{280},
		Rear:  RadiatorSizes{120},
	}
	require.Equal(t, []int{240, 360, 280, 120}, r.All())
	require.Empty(t, RadiatorSupport{}.All())
}

func TestStock_InStock(t *testing.T) {
	require.True(t, Stock{Status: StockIn}.InStock())
	require.True(t, Stock{Status: "preorder"}.InStock())
	require.True(t, Stock{}.InStock())
	require.False(t, Stock{Status: StockOut}.InStock())
}

func TestBoardMemory_MaxSpeed(t *testing.T) {
	require.Equal(t, 6000, BoardMemory{SpeedsMHz: []int{4800, 6000, 5600}}.MaxSpeed())
	require.Zero(t, BoardMemory{}.MaxSpeed())
}
