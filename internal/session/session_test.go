package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dimais77/price-list-analyzer/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	prices := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(prices, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("price1.csv", "название,цена,вес\nМасло,100,2\n")
	write("price2.csv", "товар,розница,фасовка\nМолоко,60,\"1,5\"\n")

	out := t.TempDir()
	return config.Config{
		PricesDir:      prices,
		HTMLExportPath: filepath.Join(out, "search_results.html"),
		XLSXExportPath: filepath.Join(out, "search_results.xlsx"),
		LogLevel:       "info",
	}
}

func run(t *testing.T, cfg config.Config, input string) string {
	t.Helper()
	svc := NewService(cfg, zap.NewNop())
	var out bytes.Buffer
	if err := svc.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestRunSearchThenExit(t *testing.T) {
	cfg := testConfig(t)
	out := run(t, cfg, "о\nexit\n")

	for _, want := range []string{
		"Загружено позиций: 2",
		"Введите текст для поиска",
		"| Молоко",
		"| 40.00",
		"Результаты поиска сохранены в файле: " + cfg.HTMLExportPath,
		"Результаты поиска сохранены в файле: " + cfg.XLSXExportPath,
		"Работа завершена.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	// Cheapest per kilogram first.
	if strings.Index(out, "Молоко") > strings.Index(out, "Масло") {
		t.Fatalf("wrong ranking:\n%s", out)
	}

	if _, err := os.Stat(cfg.HTMLExportPath); err != nil {
		t.Fatalf("html export: %v", err)
	}
	if _, err := os.Stat(cfg.XLSXExportPath); err != nil {
		t.Fatalf("xlsx export: %v", err)
	}
}

func TestRunExitTokens(t *testing.T) {
	cfg := testConfig(t)
	for _, input := range []string{"exit\n", "EXIT\n", "учше\n", "  exit  \n"} {
		out := run(t, cfg, input)
		if !strings.Contains(out, "Работа завершена.") {
			t.Fatalf("input %q: farewell missing:\n%s", input, out)
		}
		if strings.Contains(out, "| Молоко") {
			t.Fatalf("input %q: exit token was searched:\n%s", input, out)
		}
	}
}

func TestRunStopsOnEndOfInput(t *testing.T) {
	cfg := testConfig(t)
	out := run(t, cfg, "")
	if !strings.Contains(out, "Работа завершена.") {
		t.Fatalf("farewell missing:\n%s", out)
	}
	// The prompt line is closed before the farewell, which gets its own line.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if last := lines[len(lines)-1]; last != "Работа завершена." {
		t.Fatalf("last line = %q:\n%s", last, out)
	}
}

func TestRunSurvivesInvalidPattern(t *testing.T) {
	cfg := testConfig(t)
	out := run(t, cfg, "[масло\nмолоко\nexit\n")

	if !strings.Contains(out, "Некорректный шаблон поиска") {
		t.Fatalf("pattern error missing:\n%s", out)
	}
	// The loop keeps serving queries after a bad pattern.
	if !strings.Contains(out, "| Молоко") {
		t.Fatalf("follow-up query not served:\n%s", out)
	}
}

func TestRunEmptyResultStillExports(t *testing.T) {
	cfg := testConfig(t)
	out := run(t, cfg, "козинаки\nexit\n")

	if !strings.Contains(out, "Результаты поиска сохранены в файле: "+cfg.HTMLExportPath) {
		t.Fatalf("export notice missing:\n%s", out)
	}
	if _, err := os.Stat(cfg.HTMLExportPath); err != nil {
		t.Fatalf("html export: %v", err)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.PricesDir = filepath.Join(t.TempDir(), "absent")

	svc := NewService(cfg, zap.NewNop())
	var out bytes.Buffer
	if err := svc.Run(context.Background(), strings.NewReader("exit\n"), &out); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
