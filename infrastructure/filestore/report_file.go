package filestore

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ReportFile struct {
	path string
}

func NewReportFile(path string) *ReportFile {
	return &ReportFile{path: path}
}

func (f *ReportFile) Path() string {
	return f.path
}

func (f *ReportFile) WriteReport(ctx context.Context, content string) error {
	if err := writeFile(f.path, content); err != nil {
		return err
	}

	logrus.WithField("path", f.path).Debug("Relatório gravado")

	return nil
}
