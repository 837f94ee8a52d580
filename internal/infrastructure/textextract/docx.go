package textextract

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
)

func fromDOCX(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var b strings.Builder
	for _, para := range doc.Paragraphs() {
		line := strings.Builder{}
		for _, run := range para.Runs() {
			line.WriteString(run.Text())
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
