// Package seed строит SQL seed-скрипт справочника работ из строк листа.
package seed

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Spok95/labour-seed/internal/domain/catalog"
	"github.com/Spok95/labour-seed/internal/domain/labours"
)

type RowReader interface {
	ReadLabours(path string) ([]labours.Labour, error)
}

type Summary struct {
	OutputPath string
	Read       int // строк данных в файле
	Skipped    int // без названия
	Labours    int
	Categories int
	Roots      int
}

// Print консольный отчёт о прогоне.
func (s Summary) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Generated %s\n", s.OutputPath)
	_, _ = fmt.Fprintf(w, "  Categories: %d\n", s.Categories)
	_, _ = fmt.Fprintf(w, "  Labours: %d\n", s.Labours)
	_, _ = fmt.Fprintf(w, "  Top-level categories: %d\n", s.Roots)
}

type Generator struct {
	rows    RowReader
	emitter Emitter
	newID   catalog.IDFunc
	log     *slog.Logger
}

func NewGenerator(rows RowReader, emitter Emitter, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{rows: rows, emitter: emitter, log: log}
}

// WithIDs подменяет генератор uuid категорий (нужно для воспроизводимого вывода).
func (g *Generator) WithIDs(newID catalog.IDFunc) *Generator {
	g.newID = newID
	return g
}

// Run читает книгу, строит дерево категорий и перезаписывает outputPath готовым скриптом.
func (g *Generator) Run(inputPath, outputPath string) (Summary, error) {
	all, err := g.rows.ReadLabours(inputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("read labours: %w", err)
	}
	rows, skipped := labours.Retain(all)
	g.log.Debug("rows loaded", "input", inputPath, "read", len(all), "skipped", skipped)

	h := catalog.NewHierarchy(g.newID)
	for _, r := range rows {
		if r.CategoryPath == "" {
			continue
		}
		h.Add(r.CategoryPath, r.CategoryNumber)
	}
	cats := h.Categories()
	g.log.Debug("categories built", "categories", len(cats), "roots", h.Roots())

	em := g.emitter
	if em.Source == "" {
		em.Source = filepath.Base(inputPath)
	}
	script := em.Render(cats, rows)

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(script), 0o644); err != nil {
		return Summary{}, fmt.Errorf("write seed: %w", err)
	}
	g.log.Info("seed written", "output", outputPath, "bytes", len(script))

	return Summary{
		OutputPath: outputPath,
		Read:       len(all),
		Skipped:    skipped,
		Labours:    len(rows),
		Categories: len(cats),
		Roots:      h.Roots(),
	}, nil
}
