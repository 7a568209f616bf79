package domain

import (
	"errors"
	"fmt"
)

// Erros da taxonomia de registros
var (
	// ErrMalformedRecord indica linha com número de campos errado ou números ilegíveis
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidRecord indica registro legível que viola as regras de negócio
	ErrInvalidRecord = errors.New("invalid record")
)

// Códigos de erro por registro
const (
	CodeFieldCount = "REC_001" // Número de campos diferente de 8
	CodeQuantity   = "REC_002" // Quantidade não numérica
	CodeUnitPrice  = "REC_003" // Preço unitário não numérico

	CodeNonPositiveQuantity = "VAL_001" // Quantidade <= 0
	CodeNonPositivePrice    = "VAL_002" // Preço unitário <= 0
	CodeTransactionPrefix   = "VAL_003" // TransactionID sem prefixo "T"
	CodeProductPrefix       = "VAL_004" // ProductID sem prefixo "P"
	CodeCustomerPrefix      = "VAL_005" // CustomerID sem prefixo "C"
	CodeEmptyRegion         = "VAL_006" // Região vazia
)

// RecordError é um erro com contexto adicional sobre o registro descartado
type RecordError struct {
	Err           error  // ErrMalformedRecord ou ErrInvalidRecord
	Code          string // Código do motivo
	Line          int    // Posição da linha na entrada (1 = primeira linha de dados), 0 se desconhecida
	TransactionID string // ID da transação, quando já conhecido
	Details       string
}

// Error implementa a interface error
func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s [%s]", e.Err.Error(), e.Code)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s line %d", msg, e.Line)
	}
	if e.TransactionID != "" {
		msg = fmt.Sprintf("%s transaction %s", msg, e.TransactionID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}

	return msg
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewMalformedRecordError(code string, line int, details string) *RecordError {
	return &RecordError{
		Err:     ErrMalformedRecord,
		Code:    code,
		Line:    line,
		Details: details,
	}
}

func NewInvalidRecordError(code string, transactionID string, details string) *RecordError {
	return &RecordError{
		Err:           ErrInvalidRecord,
		Code:          code,
		TransactionID: transactionID,
		Details:       details,
	}
}
