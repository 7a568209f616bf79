// Package console imprime as mensagens de progresso destinadas ao operador.
// Logs estruturados continuam indo para o logrus.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const bannerWidth = 40

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed)
)

type Printer struct {
	out io.Writer
}

func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Discard retorna um Printer que não imprime nada
func Discard() *Printer {
	return &Printer{out: io.Discard}
}

// Header imprime o título entre linhas de "="
func (p *Printer) Header(text string) {
	line := strings.Repeat("=", bannerWidth)
	green.Fprintln(p.out, line)
	green.Fprintln(p.out, text)
	green.Fprintln(p.out, line)
}

// Success imprime uma etapa concluída
func (p *Printer) Success(format string, args ...interface{}) {
	green.Fprintf(p.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Info imprime uma linha informativa sem destaque
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s\n", fmt.Sprintf(format, args...))
}

// Warning imprime um aviso
func (p *Printer) Warning(format string, args ...interface{}) {
	yellow.Fprintf(p.out, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Error imprime um erro
func (p *Printer) Error(format string, args ...interface{}) {
	red.Fprintf(p.out, "❌ Error: %s\n", fmt.Sprintf(format, args...))
}
