package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxConcurrentReads bounds parallel file and object reads
const maxConcurrentReads = 4

// Document is a loaded resume together with where it came from
type Document struct {
	Resume   types.RawResume
	Metadata *Metadata
}

// LoadFile reads and extracts one resume file
func LoadFile(path string) (*Document, error) {
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return newDocument(filepath.Base(path), path, data)
}

func newDocument(name, source string, data []byte) (*Document, error) {
	text, format, err := ExtractText(name, data)
	if err != nil {
		return nil, err
	}
	return &Document{
		Resume:   types.RawResume{Name: name, Content: text},
		Metadata: NewMetadata(text, source, format),
	}, nil
}

// LoadDir loads every supported resume directly inside dir, sorted by file
// name. Files with unsupported extensions are skipped.
func LoadDir(ctx context.Context, dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, err := DetectFormat(entry.Name()); err != nil {
			logger.Debug().Str("file", entry.Name()).Msg("skipping unsupported file")
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	return loadAll(ctx, paths, func(_ context.Context, path string) (*Document, error) {
		return LoadFile(path)
	})
}

// loadAll runs load for every key with bounded concurrency, keeping key order
func loadAll(ctx context.Context, keys []string, load func(context.Context, string) (*Document, error)) ([]*Document, error) {
	docs := make([]*Document, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, key := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := load(gctx, key)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().Int("resumes", len(docs)).Msg("resumes loaded")
	return docs, nil
}

// Resumes returns the RawResume of each document
func Resumes(docs []*Document) []types.RawResume {
	resumes := make([]types.RawResume, 0, len(docs))
	for _, d := range docs {
		resumes = append(resumes, d.Resume)
	}
	return resumes
}

// IsUnsupportedFormat reports whether err is an *UnsupportedFormatError
func IsUnsupportedFormat(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}
