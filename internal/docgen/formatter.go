package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Content — смысловое содержимое документа: заголовок и абзацы.
// Контракт одинаков для обоих форматтеров: всё содержимое попадает в файл.
type Content struct {
	Heading    string
	Paragraphs []string
}

// Formatter отрисовывает содержимое в конкретный формат файла.
type Formatter interface {
	Render(content Content, w io.Writer) error
	Ext() string
}

// StructuredFormatter — основной путь: структурированный офисный документ.
type StructuredFormatter struct{}

func NewStructuredFormatter() *StructuredFormatter {
	return &StructuredFormatter{}
}

func (f *StructuredFormatter) Ext() string { return ".xlsx" }

func (f *StructuredFormatter) Render(content Content, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Документ"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("ошибка переименования листа: %w", err)
	}

	if err := file.SetCellValue(sheet, "A1", content.Heading); err != nil {
		return err
	}
	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err == nil {
		_ = file.SetCellStyle(sheet, "A1", "A1", style)
	}

	for i, paragraph := range content.Paragraphs {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, paragraph); err != nil {
			return err
		}
	}
	_ = file.SetColWidth(sheet, "A", "A", 80)

	return file.Write(w)
}

// PlainTextFormatter — резервный путь: тот же смысл обычным текстом UTF-8.
type PlainTextFormatter struct{}

func NewPlainTextFormatter() *PlainTextFormatter {
	return &PlainTextFormatter{}
}

func (f *PlainTextFormatter) Ext() string { return ".txt" }

func (f *PlainTextFormatter) Render(content Content, w io.Writer) error {
	var b strings.Builder
	b.WriteString(content.Heading)
	b.WriteString("\n")
	for _, paragraph := range content.Paragraphs {
		b.WriteString(paragraph)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
