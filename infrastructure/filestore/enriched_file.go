package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

const (
	fieldSeparator = "|"
	missingValue   = "None"
)

type EnrichedFile struct {
	path string
}

func NewEnrichedFile(path string) *EnrichedFile {
	return &EnrichedFile{path: path}
}

func (f *EnrichedFile) Path() string {
	return f.path
}

// WriteEnriched grava o cabeçalho e uma linha por transação enriquecida, substituindo o arquivo
func (f *EnrichedFile) WriteEnriched(ctx context.Context, enriched []domain.EnrichedTransaction) error {
	var b strings.Builder
	b.WriteString(strings.Join(domain.EnrichedFields, fieldSeparator))
	b.WriteString("\n")

	for _, e := range enriched {
		b.WriteString(strings.Join(enrichedRow(e), fieldSeparator))
		b.WriteString("\n")
	}

	if err := writeFile(f.path, b.String()); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"path":    f.path,
		"records": len(enriched),
	}).Debug("Dados enriquecidos gravados")

	return nil
}

func enrichedRow(e domain.EnrichedTransaction) []string {
	return []string{
		e.TransactionID,
		e.Date,
		e.ProductID,
		e.ProductName,
		strconv.Itoa(e.Quantity),
		e.UnitPrice.String(),
		e.CustomerID,
		e.Region,
		optionalString(e.APICategory),
		optionalString(e.APIBrand),
		optionalFloat(e.APIRating),
		pythonBool(e.APIMatch),
	}
}

func optionalString(v *string) string {
	if v == nil {
		return missingValue
	}
	return *v
}

func optionalFloat(v *float64) string {
	if v == nil {
		return missingValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func pythonBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// writeFile cria o diretório de destino quando necessário
func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "erro ao criar o diretório %s", dir)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", path)
	}

	return nil
}
