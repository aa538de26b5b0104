package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
)

var (
	ErrPermissionDenied = errors.New("permissão negada para consultar relatórios")
	ErrInvalidRequest   = errors.New("parâmetros de relatório inválidos")
	ErrDataSource       = errors.New("falha ao consultar a base de assinaturas")
	ErrSnapshotNotFound = errors.New("snapshot de relatório não encontrado")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo erro de relatório
func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func invalidRequest(format string, args ...any) *ReportError {
	return NewReportError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// dataSourceError embrulha uma falha do repositório preservando a causa original
func dataSourceError(what string, err error) *ReportError {
	return NewReportError(fmt.Errorf("%w: %w", ErrDataSource, err), apiErrors.ErrDatabaseOperation, what)
}

// IsPermissionError verifica se o erro representa uma negação de acesso
func IsPermissionError(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}
