// SPDX-License-Identifier: MIT

// Package pipeline runs the full compaction: read vectors, build the
// compatibility graph, extract a greedy clique cover, merge every clique into
// a template, and write the dictionary.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ternclique/clique"
	"github.com/katalvlaran/ternclique/compat"
	"github.com/katalvlaran/ternclique/config"
	"github.com/katalvlaran/ternclique/dictfile"
	"github.com/katalvlaran/ternclique/metrics"
	"github.com/katalvlaran/ternclique/template"
	"github.com/katalvlaran/ternclique/ternary"
)

// Params configures Compress.
type Params struct {
	Limit    int             // maximum dictionary entries
	Strategy clique.Strategy // per-round heuristic
	Format   dictfile.Format // Members skips the template merge
	Workers  int             // fan-out for graph build and extraction; <1 means 1
	Logger   *zap.Logger     // nil means no logging
	Recorder *metrics.Recorder
}

// Dictionary is the in-memory result of Compress.
type Dictionary struct {
	// Templates[i] is the merge of Cliques[i]; nil for the Members format,
	// whose groups are written as index lists and never merged.
	Templates []ternary.Vector
	Cliques   []clique.Clique
	// Edges is the edge count of the graph before pruning.
	Edges  int
	Result *clique.Result
}

// Shortfall reports whether fewer entries than requested were produced.
func (d *Dictionary) Shortfall() bool { return d.Result.Shortfall() }

// Compress turns set into a dictionary of at most p.Limit templates.
// It is deterministic for a fixed (set, Limit, Strategy), whatever Workers is.
//
// A group that is not a clique (possible under MaxDegree) fails the merge
// with template.ErrConflict. With Format Members no merge happens, so such
// groups are returned as extracted.
func Compress(ctx context.Context, set *ternary.VectorSet, p Params) (*Dictionary, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rec := p.Recorder
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	workers := max(p.Workers, 1)

	stop := rec.Time(metrics.StageGraph)
	g, err := compat.Build(set, compat.WithContext(ctx), compat.WithWorkers(workers))
	stop()
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	edges := g.EdgeCount()
	rec.Graph(edges)
	log.Debug("compatibility graph built",
		zap.Int("vertices", g.Order()),
		zap.Int("edges", edges))

	stop = rec.Time(metrics.StageCover)
	res, err := clique.Cover(g, p.Limit,
		clique.WithContext(ctx),
		clique.WithWorkers(workers),
		clique.WithStrategy(p.Strategy),
		clique.WithOnRound(func(round int, c clique.Clique) {
			rec.Clique(c.Size())
			log.Debug("clique extracted", zap.Int("round", round), zap.Int("size", c.Size()))
		}))
	stop()
	if err != nil {
		return nil, fmt.Errorf("cover: %w", err)
	}
	rec.Shortfall(res.Requested - res.Found())

	dict := &Dictionary{
		Cliques: res.Cliques,
		Edges:   edges,
		Result:  res,
	}
	if p.Format == dictfile.Members {
		return dict, nil
	}

	stop = rec.Time(metrics.StageMerge)
	dict.Templates, err = template.MergeAll(res.Cliques, set)
	stop()
	if err != nil {
		if errors.Is(err, template.ErrConflict) {
			return nil, fmt.Errorf("merge (strategy %s produced a non-clique): %w", p.Strategy, err)
		}
		return nil, fmt.Errorf("merge: %w", err)
	}

	return dict, nil
}

// Report summarises a Run for the caller.
type Report struct {
	Vectors    int
	Skipped    int
	Edges      int
	Requested  int
	Found      int
	Shortfall  bool
	Dictionary *Dictionary
}

// Run executes cfg end to end: validate, read cfg.Input, Compress, write
// cfg.Output in cfg.Format, and finally write metrics to cfg.MetricsFile
// when set.
//
// Fatal conditions come back as errors wrapping the config, dictfile,
// ternary or template sentinels. A shortfall is reported in the Report and
// logged, never returned as an error.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := cfg.StrategyValue()
	format, _ := cfg.FormatValue()
	policy, _ := cfg.PolicyValue()
	rec := metrics.NewRecorder()

	stop := rec.Time(metrics.StageRead)
	set, st, err := dictfile.ReadFile(cfg.Input, cfg.VectorLength,
		dictfile.WithPolicy(policy), dictfile.WithLogger(log))
	stop()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.Input, err)
	}
	rec.Loaded(set.Len(), st.Skipped)
	log.Info("vectors loaded",
		zap.String("input", cfg.Input),
		zap.Int("vectors", set.Len()),
		zap.Int("skipped", st.Skipped))

	dict, err := Compress(ctx, set, Params{
		Limit:    cfg.MaxEntries,
		Strategy: strategy,
		Format:   format,
		Workers:  cfg.Workers,
		Logger:   log,
		Recorder: rec,
	})
	if err != nil {
		return nil, err
	}

	stop = rec.Time(metrics.StageWrite)
	err = write(cfg.Output, format, dict)
	stop()
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	rep := &Report{
		Vectors:    set.Len(),
		Skipped:    st.Skipped,
		Edges:      dict.Edges,
		Requested:  cfg.MaxEntries,
		Found:      dict.Result.Found(),
		Shortfall:  dict.Shortfall(),
		Dictionary: dict,
	}
	if rep.Shortfall {
		log.Warn("fewer dictionary entries than requested",
			zap.Int("requested", rep.Requested),
			zap.Int("found", rep.Found))
	}
	log.Info("dictionary written",
		zap.String("output", cfg.Output),
		zap.String("format", format.String()),
		zap.Int("entries", rep.Found))

	if cfg.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return nil, fmt.Errorf("write metrics %s: %w", cfg.MetricsFile, err)
		}
	}

	return rep, nil
}

func write(path string, format dictfile.Format, dict *Dictionary) (err error) {
	wc, err := dictfile.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", dictfile.ErrOutputAccess, cerr)
		}
	}()

	if format == dictfile.Members {
		return dictfile.WriteMembers(wc, dict.Cliques)
	}

	return dictfile.WriteTemplates(wc, dict.Templates)
}
