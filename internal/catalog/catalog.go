package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimais77/price-list-analyzer/internal"
	"github.com/dimais77/price-list-analyzer/internal/pipeline"
)

var ErrInvalidPattern = errors.New("invalid search pattern")

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Catalog accumulates normalized records from every recognized price list
// in a directory and answers ranked name searches over them.
type Catalog struct {
	log     *zap.Logger
	norm    *pipeline.Normalizer
	records []internal.Record
}

func New(log *zap.Logger) *Catalog {
	return &Catalog{log: log, norm: pipeline.NewNormalizer(log)}
}

// Load scans dir, non-recursively, and ingests every file whose lowercased
// name ends in ".csv" and contains "price". Repeated calls replace the
// previous content. A file that cannot be read as a table is reported and
// skipped without failing the whole load.
func (c *Catalog) Load(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list price directory: %w", err)
	}

	c.records = nil
	files, rejected := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !isPriceFile(entry.Name()) {
			continue
		}
		files++
		skipped, err := c.loadFile(filepath.Join(dir, entry.Name()), entry.Name())
		rejected += skipped
		if err != nil {
			c.log.Warn("price file failed", zap.String("file", entry.Name()), zap.Error(err))
		}
	}

	c.log.Info("price lists loaded",
		zap.String("run_id", uuid.NewString()),
		zap.String("dir", dir),
		zap.Int("files", files),
		zap.Int("records", len(c.records)),
		zap.Int("rejected_rows", rejected))
	return nil
}

func (c *Catalog) loadFile(path, sourceID string) (int, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	blob = bytes.TrimPrefix(blob, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(blob))
	reader.FieldsPerRecord = -1

	labels, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	rejected := 0
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rejected, nil
		}
		if err != nil {
			// Rows parsed before the failure stay loaded.
			return rejected, fmt.Errorf("read row: %w", err)
		}
		record, err := c.norm.Normalize(sourceID, rowFromCells(labels, cells))
		if err != nil {
			rejected++
			continue
		}
		c.records = append(c.records, record)
	}
}

// Search compiles pattern case-insensitively and returns the matching
// records ordered by unit price, cheapest first. Records with equal unit
// prices keep their load order. An empty pattern matches everything.
func (c *Catalog) Search(pattern string) ([]internal.Record, error) {
	matcher, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	matched := make([]internal.Record, 0, len(c.records))
	for _, record := range c.records {
		if matcher.MatchString(record.Name) {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UnitPrice.LessThan(matched[j].UnitPrice)
	})
	return matched, nil
}

func (c *Catalog) Len() int {
	return len(c.records)
}

func isPriceFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".csv") && strings.Contains(lower, "price")
}

func rowFromCells(labels, cells []string) internal.SourceRow {
	values := make(map[string]string, len(labels))
	for i, label := range labels {
		if i < len(cells) {
			values[label] = cells[i]
		} else {
			values[label] = ""
		}
	}
	return internal.SourceRow{Labels: labels, Values: values}
}
