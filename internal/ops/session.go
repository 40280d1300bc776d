// Package ops implements the build session shared by the CLI, MCP and web
// front ends.
package ops

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/hpungsan/rig/internal/build"
	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/config"
	"github.com/hpungsan/rig/internal/errors"
	"github.com/hpungsan/rig/internal/obs"
)

// Session is one build being assembled against a loaded catalog.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cat    *catalog.Catalog
	report *catalog.LoadReport
	store  build.Store
	key    string
	sel    *build.Selection
	logger *slog.Logger

	// warnings raised while restoring, reported by Status
	restoreWarnings []string
}

// Open restores the saved build named by cfg.Build (or build.DefaultKey) and
// returns a session over it. A snapshot that cannot be read is logged and the
// session starts empty; Open itself never fails on persistence.
func Open(ctx context.Context, cat *catalog.Catalog, report *catalog.LoadReport, store build.Store, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cat == nil {
		cat = catalog.NewCatalog(nil)
	}
	if report == nil {
		report = &catalog.LoadReport{Counts: map[catalog.Category]int{}, Empty: cat.Empty()}
	}

	key := strings.TrimSpace(cfg.Build)
	if key == "" {
		key = build.DefaultKey
	}

	s := &Session{
		cat:    cat,
		report: report,
		store:  store,
		key:    key,
		sel:    build.NewSelection(),
		logger: obs.Logger.With("build", key),
	}
	s.restore(ctx, cfg.RestoreMode)
	return s
}

func (s *Session) restore(ctx context.Context, mode string) {
	if s.store == nil {
		return
	}
	sel, err := s.store.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, errors.ErrPersistenceReadFailure) {
			err = errors.NewPersistenceRead(err)
		}
		s.logger.Warn("restore failed, starting empty", "error", err)
		s.restoreWarnings = append(s.restoreWarnings, err.Error())
		return
	}
	s.sel = sel

	if mode != config.RestorePrune {
		return
	}
	dropped := s.sel.Prune(s.cat.Find)
	if len(dropped) == 0 {
		return
	}
	s.logger.Info("pruned saved build", "dropped", keys(dropped))
	for _, c := range dropped {
		s.persist(ctx, c, nil)
	}
}

// Key returns the build name.
func (s *Session) Key() string {
	return s.key
}

// persist writes one slot. Failures are logged, never returned.
func (s *Session) persist(ctx context.Context, c catalog.Category, part catalog.Part) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveSlot(ctx, s.key, c, part); err != nil {
		if !errors.Is(err, errors.ErrPersistenceWriteFailure) {
			err = errors.NewPersistenceWrite(err)
		}
		s.logger.Warn("save failed", "category", c.Key(), "error", err)
	}
}

// PartView is the listing shape of a part.
type PartView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Brand   string `json:"brand"`
	Price   int    `json:"price"`
	InStock bool   `json:"in_stock"`
}

func viewOf(p catalog.Part) PartView {
	info := p.Base()
	return PartView{
		ID:      info.ID,
		Name:    info.Name,
		Brand:   info.Brand,
		Price:   info.Price,
		InStock: info.Stock.InStock(),
	}
}

func keys(cats []catalog.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Key()
	}
	return out
}

// lockedBy returns the upstream categories of c that are still empty.
func lockedBy(sel *build.Selection, c catalog.Category) []catalog.Category {
	var missing []catalog.Category
	for _, u := range c.Upstream() {
		if !sel.Has(u) {
			missing = append(missing, u)
		}
	}
	return missing
}
