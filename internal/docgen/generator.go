package docgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Generator пишет документы в медиа-хранилище. Основной форматтер выбирается
// один раз при создании (попытка пробной отрисовки); если он недоступен или
// падает на конкретном документе, тот же смысл записывается резервным
// текстовым форматтером. Для вызывающей стороны контракт одинаков: вернётся
// относительная ссылка на существующий файл, формат не гарантируется.
type Generator struct {
	basePath string
	primary  Formatter
	fallback Formatter
	logger   *zap.Logger
}

func NewGenerator(basePath string, logger *zap.Logger) *Generator {
	g := &Generator{
		basePath: basePath,
		primary:  NewStructuredFormatter(),
		fallback: NewPlainTextFormatter(),
		logger:   logger,
	}

	probe := Content{Heading: "probe"}
	if err := g.primary.Render(probe, io.Discard); err != nil {
		logger.Warn("структурированный форматтер недоступен, включён текстовый резерв", zap.Error(err))
		g.primary = nil
	}
	return g
}

// Generate записывает документ под детерминированным именем baseName в
// подкаталог subdir. Повторная генерация с теми же входными данными молча
// перезаписывает файл.
func (g *Generator) Generate(subdir, baseName string, content Content) (string, error) {
	dir := filepath.Join(g.basePath, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("не удалось создать директорию документов: %w", err)
	}

	if g.primary != nil {
		ref, err := g.write(dir, subdir, baseName, g.primary, content)
		if err == nil {
			return ref, nil
		}
		g.logger.Warn("сбой структурированного форматтера, переключение на текстовый",
			zap.String("base_name", baseName), zap.Error(err))
	}

	return g.write(dir, subdir, baseName, g.fallback, content)
}

func (g *Generator) write(dir, subdir, baseName string, f Formatter, content Content) (string, error) {
	fileName := baseName + f.Ext()
	fullPath := filepath.Join(dir, fileName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("не удалось создать файл документа: %w", err)
	}

	if err := f.Render(content, file); err != nil {
		file.Close()
		// Недописанный файл не должен оставаться на диске.
		os.Remove(fullPath)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(fullPath)
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subdir, fileName)), nil
}

// Exists проверяет наличие файла по относительной ссылке.
func (g *Generator) Exists(ref string) bool {
	if ref == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(g.basePath, filepath.FromSlash(ref)))
	return err == nil
}

// FullPath возвращает абсолютный путь файла по относительной ссылке.
func (g *Generator) FullPath(ref string) string {
	return filepath.Join(g.basePath, filepath.FromSlash(ref))
}
