// Package filestore lê e grava os arquivos locais do pipeline de vendas
package filestore

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable indica que nenhuma das codificações configuradas leu o arquivo
var ErrUndecodable = errors.New("arquivo não pôde ser decodificado")

var DefaultEncodings = []string{"utf-8", "latin-1", "cp1252"}

type SalesFile struct {
	path      string
	encodings []string
}

func NewSalesFile(path string, encodings []string) *SalesFile {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	return &SalesFile{
		path:      path,
		encodings: encodings,
	}
}

// ReadLines devolve as linhas de dados sem o cabeçalho, já aparadas e sem linhas em branco.
// Arquivo inexistente resulta em lista vazia.
func (f *SalesFile) ReadLines(ctx context.Context) ([]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", f.path).Warn("Arquivo de vendas não encontrado")
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler %s", f.path)
	}

	text, used, err := decode(raw, f.encodings)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar %s", f.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":     f.path,
		"encoding": used,
	}).Debug("Arquivo de vendas lido")

	return dataLines(text), nil
}

// decode tenta as codificações na ordem configurada
func decode(raw []byte, encodings []string) (string, string, error) {
	for _, name := range encodings {
		name = strings.ToLower(strings.TrimSpace(name))

		if name == "utf-8" || name == "utf8" {
			if utf8.Valid(raw) {
				return strings.TrimPrefix(string(raw), "\ufeff"), name, nil
			}
			continue
		}

		decoder := decoderFor(name)
		if decoder == nil {
			logrus.WithField("encoding", name).Warn("Codificação desconhecida ignorada")
			continue
		}

		out, err := decoder.Bytes(raw)
		if err == nil {
			return string(out), name, nil
		}
	}

	return "", "", ErrUndecodable
}

func decoderFor(name string) *encoding.Decoder {
	switch name {
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder()
	case "cp1252", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	}

	return nil
}

func dataLines(text string) []string {
	all := strings.Split(text, "\n")
	if len(all) > 0 {
		all = all[1:]
	}

	lines := make([]string, 0, len(all))
	for _, line := range all {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
