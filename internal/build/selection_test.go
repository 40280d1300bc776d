package build

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/catalog/catalogtest"
	"github.com/hpungsan/rig/internal/errors"
)

func fullSelection(t *testing.T, cat *catalog.Catalog) *Selection {
	t.Helper()
	sel := NewSelection()
	for _, c := range catalog.Categories() {
		p, ok := cat.Find(c, catalogtest.FullBuild[c])
		require.True(t, ok, "fixture %s missing", catalogtest.FullBuild[c])
		_, err := sel.Select(c, p)
		require.NoError(t, err)
	}
	require.Equal(t, catalog.NumCategories, sel.Filled())
	return sel
}

func TestSelect_CascadesDownstream(t *testing.T) {
	cat := catalogtest.Catalog()
	sel := fullSelection(t, cat)
	mobo := sel.Get(catalog.CategoryMotherboard)
	cpu := sel.Get(catalog.CategoryCPU)

	newRAM, ok := cat.Find(catalog.CategoryRAM, "ram-ddr5-7200")
	require.True(t, ok)

	cleared, err := sel.Select(catalog.CategoryRAM, newRAM)
	require.NoError(t, err)

	require.Same(t, mobo, sel.Get(catalog.CategoryMotherboard))
	require.Same(t, cpu, sel.Get(catalog.CategoryCPU))
	require.Same(t, newRAM, sel.Get(catalog.CategoryRAM))
	for _, c := range catalog.CategoryRAM.Downstream() {
		require.Nil(t, sel.Get(c), c.Key())
	}
	require.Equal(t, catalog.CategoryRAM.Downstream(), cleared)
}

func TestSelect_ReportsOnlyFilledClears(t *testing.T) {
	cat := catalogtest.Catalog()
	sel := NewSelection()

	mobo, _ := cat.Find(catalog.CategoryMotherboard, "mb-am5")
	cpu, _ := cat.Find(catalog.CategoryCPU, "cpu-7950x")
	monitor, _ := cat.Find(catalog.CategoryMonitor, "mon-27")

	_, err := sel.Select(catalog.CategoryMotherboard, mobo)
	require.NoError(t, err)
	_, err = sel.Select(catalog.CategoryCPU, cpu)
	require.NoError(t, err)
	sel.slots[catalog.CategoryMonitor] = monitor

	cleared, err := sel.Select(catalog.CategoryMotherboard, mobo)
	require.NoError(t, err)
	require.Equal(t, []catalog.Category{catalog.CategoryCPU, catalog.CategoryMonitor}, cleared)
}

func TestSelect_LastSlotClearsNothing(t *testing.T) {
	sel := NewSelection()
	cleared, err := sel.Select(catalog.CategoryMouse, catalogtest.Mice()[0])
	require.NoError(t, err)
	require.Empty(t, cleared)
	require.True(t, sel.Has(catalog.CategoryMouse))
}

func TestSelect_Rejects(t *testing.T) {
	sel := NewSelection()

	_, err := sel.Select(catalog.CategoryCPU, catalogtest.GPUs()[0])
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))

	_, err = sel.Select(catalog.CategoryCPU, nil)
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))

	_, err = sel.Select(catalog.Category(-1), catalogtest.CPUs()[0])
	require.True(t, errors.Is(err, errors.ErrInvalidRequest))

	require.Zero(t, sel.Filled())
}

func TestClearAll(t *testing.T) {
	sel := fullSelection(t, catalogtest.Catalog())
	sel.ClearAll()
	require.Zero(t, sel.Filled())
	require.Empty(t, sel.Parts())
}

func TestSteps(t *testing.T) {
	cat := catalogtest.Catalog()
	sel := NewSelection()

	steps := sel.Steps()
	require.Len(t, steps, catalog.NumCategories)
	require.True(t, steps[catalog.CategoryMotherboard].Enabled)
	for _, s := range steps[1:] {
		require.False(t, s.Enabled, s.Category.Key())
		require.False(t, s.Selected)
	}

	mobo, _ := cat.Find(catalog.CategoryMotherboard, "mb-am5")
	_, err := sel.Select(catalog.CategoryMotherboard, mobo)
	require.NoError(t, err)

	steps = sel.Steps()
	require.True(t, steps[catalog.CategoryMotherboard].Selected)
	require.True(t, steps[catalog.CategoryCPU].Enabled)
	require.False(t, steps[catalog.CategoryCPU].Selected)
	require.False(t, steps[catalog.CategoryRAM].Enabled)
}

func TestSteps_GapDisablesLaterSlots(t *testing.T) {
	sel := NewSelection()
	sel.Restore(map[catalog.Category]catalog.Part{
		catalog.CategoryRAM: catalogtest.RAMs()[0],
	})

	steps := sel.Steps()
	require.True(t, steps[catalog.CategoryRAM].Selected)
	require.False(t, steps[catalog.CategoryRAM].Enabled)
	require.True(t, steps[catalog.CategoryMotherboard].Enabled)
}

func TestRestore_Verbatim(t *testing.T) {
	ram := catalogtest.RAMs()[0]
	ghost := &catalog.GPU{Info: catalog.Info{ID: "gone-from-catalog"}}

	sel := NewSelection()
	sel.Restore(map[catalog.Category]catalog.Part{
		catalog.CategoryRAM:   ram,
		catalog.CategoryGPU:   ghost,
		catalog.CategoryMouse: catalogtest.CPUs()[0],
	})

	require.Nil(t, sel.Get(catalog.CategoryMotherboard))
	require.Same(t, ram, sel.Get(catalog.CategoryRAM))
	require.Same(t, ghost, sel.Get(catalog.CategoryGPU))
	require.Nil(t, sel.Get(catalog.CategoryMouse))
}

func TestPrune(t *testing.T) {
	cat := catalogtest.Catalog()
	sel := fullSelection(t, cat)

	// Swap the GPU for one the catalog no longer carries.
	sel.slots[catalog.CategoryGPU] = &catalog.GPU{Info: catalog.Info{ID: "gpu-discontinued"}}

	dropped := sel.Prune(cat.Find)

	require.Equal(t, catalog.CategoryRAM.Downstream(), dropped)
	require.Equal(t, 3, sel.Filled())
}

func TestPrune_DropsAfterGap(t *testing.T) {
	cat := catalogtest.Catalog()
	sel := NewSelection()
	sel.Restore(map[catalog.Category]catalog.Part{
		catalog.CategoryMotherboard: catalogtest.Motherboards()[0],
		catalog.CategoryRAM:         catalogtest.RAMs()[0],
	})

	dropped := sel.Prune(cat.Find)

	require.Equal(t, []catalog.Category{catalog.CategoryRAM}, dropped)
	require.True(t, sel.Has(catalog.CategoryMotherboard))

	// Prune swaps in the catalog's own instance.
	fresh, _ := cat.Find(catalog.CategoryMotherboard, "mb-am5")
	require.Same(t, fresh, sel.Get(catalog.CategoryMotherboard))
}

func TestClone(t *testing.T) {
	sel := fullSelection(t, catalogtest.Catalog())
	cp := sel.Clone()
	cp.ClearAll()
	require.Equal(t, catalog.NumCategories, sel.Filled())

	var nilSel *Selection
	require.Zero(t, nilSel.Clone().Filled())
}

func TestTypedAccessors(t *testing.T) {
	sel := fullSelection(t, catalogtest.Catalog())
	require.Equal(t, "mb-am5", sel.Motherboard().ID)
	require.Equal(t, "cpu-7950x", sel.CPU().ID)
	require.Equal(t, "ram-ddr5-6000", sel.RAM().ID)
	require.Equal(t, "gpu-7900xt", sel.GPU().ID)
	require.Equal(t, "psu-650", sel.PSU().ID)
	require.Equal(t, "case-atx", sel.Case().ID)
	require.Equal(t, "cooler-air", sel.CPUCooler().ID)
	require.Equal(t, "ssd-nvme", sel.Storage().ID)

	var empty Selection
	require.Nil(t, empty.CPU())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sel, err := store.Load(ctx, DefaultKey)
	require.NoError(t, err)
	require.Zero(t, sel.Filled())

	mobo := catalogtest.Motherboards()[0]
	cpu := catalogtest.CPUs()[0]
	require.NoError(t, store.SaveSlot(ctx, DefaultKey, catalog.CategoryMotherboard, mobo))
	require.NoError(t, store.SaveSlot(ctx, DefaultKey, catalog.CategoryCPU, cpu))
	require.NoError(t, store.SaveSlot(ctx, "other", catalog.CategoryCPU, cpu))

	sel, err = store.Load(ctx, DefaultKey)
	require.NoError(t, err)
	require.Same(t, mobo, sel.Get(catalog.CategoryMotherboard))
	require.Same(t, cpu, sel.Get(catalog.CategoryCPU))

	require.NoError(t, store.SaveSlot(ctx, DefaultKey, catalog.CategoryCPU, nil))
	sel, err = store.Load(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, 1, sel.Filled())

	require.NoError(t, store.Reset(ctx, DefaultKey))
	sel, err = store.Load(ctx, DefaultKey)
	require.NoError(t, err)
	require.Zero(t, sel.Filled())

	sel, err = store.Load(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, 1, sel.Filled())
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()
	_, err := store.Load(ctx, DefaultKey)
	require.Error(t, err)
	require.Error(t, store.SaveSlot(ctx, DefaultKey, catalog.CategoryCPU, nil))
	require.Error(t, store.Reset(ctx, DefaultKey))
}
