// Package app wires the spreadsheet reader, merger, cache, and
// analysis engine into the per-interaction dashboard flow.
package app

import (
	"context"
	"sync"

	"baselinedash/adapters/excel"
	"baselinedash/domain/baseline"
	"baselinedash/domain/core"
	"baselinedash/internal"
	"baselinedash/internal/analysis"
	"baselinedash/internal/config"
	"baselinedash/internal/dataset"
	"baselinedash/internal/errors"

	"golang.org/x/sync/errgroup"
)

// SourceFile is one uploaded workbook held in memory. Nothing is
// persisted; the bytes live only for the duration of the merge.
type SourceFile struct {
	Name string
	Data []byte
}

// Result is the structured payload handed to the presentation layer
// for one filter query: either the aggregates plus the filtered rows,
// or the explicit no-data state with a guidance message.
type Result struct {
	NoData  bool              `json:"noData"`
	Message string            `json:"message,omitempty"`
	Summary *baseline.Summary `json:"summary,omitempty"`
	Rows    []baseline.Row    `json:"rows,omitempty"`
}

// LoadInfo reports the outcome of a successful source-pair load.
type LoadInfo struct {
	UploadID  core.UploadID `json:"uploadId"`
	RowCount  int           `json:"rowCount"`
	FromCache bool          `json:"fromCache"`
}

// DashboardService owns the current unified table for one session and
// recomputes the filtered view and aggregates on every criteria change.
// The table is immutable once built; a new upload replaces it.
type DashboardService struct {
	cfg   config.DataConfig
	cache *dataset.MergeCache
	log   *internal.Logger

	mu     sync.RWMutex
	table  baseline.Table
	loaded bool
}

// NewDashboardService creates a service with an empty table.
func NewDashboardService(cfg config.DataConfig) *DashboardService {
	return &DashboardService{
		cfg:   cfg,
		cache: dataset.NewMergeCache(),
		log:   internal.NewLogger("Dashboard"),
	}
}

// LoadSources reads both workbooks, merges them into the unified table,
// and makes it current. The merge is memoized by the content identity
// of the pair, so re-uploading the same files skips re-parsing. The two
// workbooks are independent files and are read concurrently; the merge
// itself is a single synchronous pass.
func (s *DashboardService) LoadSources(ctx context.Context, sourceA, sourceB SourceFile) (*LoadInfo, error) {
	uploadID := core.NewUploadID()
	key := core.PairKey(core.NewSourceHash(sourceA.Data), core.NewSourceHash(sourceB.Data))

	if table, ok := s.cache.Get(key); ok {
		s.log.Info("upload %s: source pair unchanged, reusing merged table (%d rows)", uploadID, table.Len())
		s.setTable(table)
		return &LoadInfo{UploadID: uploadID, RowCount: table.Len(), FromCache: true}, nil
	}

	var sheetA, sheetB *excel.Sheet
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sheetA, err = readSheet(ctx, sourceA, s.cfg.Sheet2425)
		return err
	})
	g.Go(func() error {
		var err error
		sheetB, err = readSheet(ctx, sourceB, s.cfg.Sheet2526)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("upload %s: reading sources failed: %v", uploadID, err)
		return nil, errors.Wrap(err, "failed to read source workbooks")
	}

	table, err := dataset.Merge(sheetA, sheetB)
	if err != nil {
		s.log.Error("upload %s: merge failed: %v", uploadID, err)
		return nil, errors.Wrap(err, "failed to merge source workbooks")
	}

	s.cache.Put(key, table)
	s.setTable(table)
	s.log.Info("upload %s: merged %q + %q into %d rows", uploadID, sourceA.Name, sourceB.Name, table.Len())

	return &LoadInfo{UploadID: uploadID, RowCount: table.Len()}, nil
}

// Options returns the candidate values per filterable column, derived
// from the current unified table.
func (s *DashboardService) Options() (map[string][]string, error) {
	table, err := s.currentTable()
	if err != nil {
		return nil, err
	}
	return analysis.AllOptions(table), nil
}

// Query filters the current table and computes the aggregates. An
// empty filtered set yields the no-data result, not an error.
func (s *DashboardService) Query(criteria baseline.Criteria) (*Result, error) {
	table, err := s.currentTable()
	if err != nil {
		return nil, err
	}

	filtered := analysis.Filter(table, criteria)
	summary, err := analysis.Summarize(filtered)
	if core.IsEmptyResult(err) {
		s.log.Debug("query matched no rows")
		return &Result{
			NoData:  true,
			Message: "No data available for the selected filters. Please adjust your selection.",
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize filtered data")
	}

	return &Result{Summary: summary, Rows: filtered}, nil
}

// Loaded reports whether a unified table is currently available.
func (s *DashboardService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *DashboardService) setTable(table baseline.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.loaded = true
}

func (s *DashboardService) currentTable() (baseline.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, core.ErrNoTable
	}
	return s.table, nil
}

func readSheet(ctx context.Context, source SourceFile, sheetName string) (*excel.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return excel.NewSheetReader(source.Name).ReadBytes(source.Data, sheetName)
}
