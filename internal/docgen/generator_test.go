package docgen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlainTextFormatterRender(t *testing.T) {
	f := NewPlainTextFormatter()

	var buf bytes.Buffer
	err := f.Render(Content{
		Heading:    "Отчёт по сервисам",
		Paragraphs: []string{"Тип: Ежемесячный", "Период: 2024-01-01 – 2024-01-31"},
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Отчёт по сервисам")
	assert.Contains(t, out, "Тип: Ежемесячный")
	assert.Contains(t, out, "Период: 2024-01-01 – 2024-01-31")
	assert.Equal(t, ".txt", f.Ext())
}

func TestGeneratorPrimaryFormat(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, zap.NewNop())

	ref, err := g.Generate("reports", "report_monthly_2024-01-01_2024-01-31", Content{
		Heading:    "Отчёт по сервисам",
		Paragraphs: []string{"Тип: Ежемесячный"},
	})
	require.NoError(t, err)

	assert.Equal(t, "reports/report_monthly_2024-01-01_2024-01-31.xlsx", ref)
	assert.True(t, g.Exists(ref))

	info, err := os.Stat(filepath.Join(dir, "reports", "report_monthly_2024-01-01_2024-01-31.xlsx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGeneratorFallback(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{
		basePath: dir,
		primary:  nil, // основной форматтер недоступен
		fallback: NewPlainTextFormatter(),
		logger:   zap.NewNop(),
	}

	ref, err := g.Generate("reports", "report_daily_2024-02-01_2024-02-01", Content{
		Heading:    "Отчёт по сервисам",
		Paragraphs: []string{"Период: 2024-02-01 – 2024-02-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, "reports/report_daily_2024-02-01_2024-02-01.txt", ref)

	data, err := os.ReadFile(g.FullPath(ref))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Период: 2024-02-01 – 2024-02-01")
}

func TestGeneratorOverwrite(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, zap.NewNop())

	content := Content{Heading: "Регламент обработки инцидентов"}
	ref1, err := g.Generate("docs", "reglament_incidents", content)
	require.NoError(t, err)
	ref2, err := g.Generate("docs", "reglament_incidents", content)
	require.NoError(t, err)

	// Повторная генерация перезаписывает файл под тем же именем.
	assert.Equal(t, ref1, ref2)
	assert.True(t, g.Exists(ref2))
}

func TestGeneratorExists(t *testing.T) {
	g := NewGenerator(t.TempDir(), zap.NewNop())

	assert.False(t, g.Exists(""))
	assert.False(t, g.Exists("reports/nope.xlsx"))
}
