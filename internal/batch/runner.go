package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/krishnasree5/outliner/internal/config"
	"github.com/krishnasree5/outliner/internal/extract"
	"github.com/krishnasree5/outliner/internal/outline"
)

// Run processes every supported document in cfg.InputDir and writes one
// `<stem>.json` artifact per input into cfg.OutputDir. A document that
// fails extraction still yields a well-formed empty outline artifact;
// only setup problems (missing input dir, unwritable output dir) fail
// the run itself.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var docs []string
	for _, e := range entries {
		if e.IsDir() || !extract.IsSupportedExtension(e.Name()) {
			continue
		}
		docs = append(docs, e.Name())
	}
	log.Info("starting batch", "documents", len(docs), "workers", cfg.WorkerCount)

	queue := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range queue {
				processDocument(ctx, cfg, log, name)
			}
		}()
	}

dispatch:
	for _, name := range docs {
		select {
		case <-ctx.Done():
			break dispatch
		case queue <- name:
		}
	}
	close(queue)
	wg.Wait()

	return ctx.Err()
}

// processDocument extracts one document and persists its outline. Every
// failure path still writes an empty artifact so downstream consumers
// never see a missing file.
func processDocument(ctx context.Context, cfg config.Config, log *slog.Logger, name string) {
	log = log.With("document", name)
	start := time.Now()

	out := outline.Empty()
	data, err := os.ReadFile(filepath.Join(cfg.InputDir, name))
	if err != nil {
		log.Error("read failed", "error", err)
	} else {
		w := NewWorker(log, cfg.Layout, cfg.DocTimeout, nil)
		result, err := w.extract(ctx, name, data)
		if err != nil {
			log.Error("extraction failed", "error", err)
		} else {
			out = result
		}
	}

	outPath := filepath.Join(cfg.OutputDir, artifactName(name))
	if err := WriteArtifact(outPath, out); err != nil {
		log.Error("write failed", "path", outPath, "error", err)
		return
	}
	log.Info("processed",
		"output", outPath,
		"headings", len(out.Entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// artifactName replaces the input's extension with .json.
func artifactName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
}

// WriteArtifact persists an outline as UTF-8 JSON.
func WriteArtifact(path string, out outline.Outline) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		f.Close()
		return fmt.Errorf("encode artifact: %w", err)
	}
	return f.Close()
}
