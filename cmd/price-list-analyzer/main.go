package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dimais77/price-list-analyzer/internal/catalog"
	"github.com/dimais77/price-list-analyzer/internal/config"
	"github.com/dimais77/price-list-analyzer/internal/logger"
	"github.com/dimais77/price-list-analyzer/internal/report"
	"github.com/dimais77/price-list-analyzer/internal/session"
)

func main() {
	cfg, err := config.Load()
	must(err)

	log, err := logger.New(cfg.LogLevel)
	must(err)
	defer func() { _ = log.Sync() }()

	if len(os.Args) < 2 {
		svc := session.NewService(cfg, log)
		must(svc.Run(context.Background(), os.Stdin, os.Stdout))
		return
	}

	cmd := os.Args[1]
	switch cmd {
	case "search":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		query := fs.String("query", "", "case-insensitive substring or regexp over product names")
		dir := fs.String("dir", cfg.PricesDir, "directory with price lists")
		_ = fs.Parse(os.Args[2:])

		cat := catalog.New(log)
		must(cat.Load(*dir))
		results, err := cat.Search(*query)
		must(err)
		report.WriteTable(os.Stdout, results)
		must(report.WriteHTML(cfg.HTMLExportPath, results))
		must(report.WriteXLSX(cfg.XLSXExportPath, results))
		fmt.Printf("Результаты поиска сохранены в файле: %s\n", cfg.HTMLExportPath)
		fmt.Printf("Результаты поиска сохранены в файле: %s\n", cfg.XLSXExportPath)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: price-list-analyzer [command]")
	fmt.Println("commands:")
	fmt.Println("  (none)                           interactive search over the price-list directory")
	fmt.Println("  search --query=... [--dir=...]   one-off search with HTML and XLSX export")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
