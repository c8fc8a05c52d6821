package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/dimais77/price-list-analyzer/internal"
	"github.com/dimais77/price-list-analyzer/internal/catalog"
	"github.com/dimais77/price-list-analyzer/internal/config"
	"github.com/dimais77/price-list-analyzer/internal/report"
)

const (
	prompt   = "Введите текст для поиска (или 'exit' для завершения): "
	farewell = "Работа завершена."
)

// Both the Latin word and its Cyrillic-layout twin stop the loop.
var exitTokens = map[string]struct{}{
	"exit": {},
	"учше": {},
}

type Service struct {
	cfg     config.Config
	log     *zap.Logger
	catalog *catalog.Catalog
}

func NewService(cfg config.Config, log *zap.Logger) *Service {
	return &Service{cfg: cfg, log: log, catalog: catalog.New(log)}
}

// Run loads the price lists once, then reads queries from in until an exit
// token or end of input. Each query prints a ranked table to out and saves
// the same results to the configured HTML and XLSX paths.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := s.catalog.Load(s.cfg.PricesDir); err != nil {
		return err
	}
	fmt.Fprintf(out, "Загружено позиций: %d\n", s.catalog.Len())

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			// End of input leaves the prompt line unterminated.
			fmt.Fprintln(out)
			break
		}
		query := scanner.Text()
		if _, done := exitTokens[strings.ToLower(strings.TrimSpace(query))]; done {
			break
		}
		s.runQuery(out, query)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Fprintln(out, farewell)
	return nil
}

func (s *Service) runQuery(out io.Writer, query string) {
	results, err := s.catalog.Search(query)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPattern) {
			fmt.Fprintf(out, "Некорректный шаблон поиска: %v\n", err)
			return
		}
		s.log.Error("search failed", zap.String("query", query), zap.Error(err))
		return
	}

	report.WriteTable(out, results)
	s.export(out, results)
}

func (s *Service) export(out io.Writer, results []internal.Record) {
	if err := report.WriteHTML(s.cfg.HTMLExportPath, results); err != nil {
		s.log.Warn("html export failed", zap.String("path", s.cfg.HTMLExportPath), zap.Error(err))
	} else {
		fmt.Fprintf(out, "Результаты поиска сохранены в файле: %s\n", s.cfg.HTMLExportPath)
	}
	if err := report.WriteXLSX(s.cfg.XLSXExportPath, results); err != nil {
		s.log.Warn("xlsx export failed", zap.String("path", s.cfg.XLSXExportPath), zap.Error(err))
	} else {
		fmt.Fprintf(out, "Результаты поиска сохранены в файле: %s\n", s.cfg.XLSXExportPath)
	}
}
