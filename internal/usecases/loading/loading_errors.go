package loading

import (
	"errors"
	"fmt"
)

// Erros específicos para o carregamento do arquivo de vendas
var (
	ErrDataFileNotFound = errors.New("data file not found")
	ErrDataFileRead     = errors.New("error reading data file")
	ErrMalformedDataset = errors.New("malformed dataset")
)

// LoadError é um erro com contexto adicional do carregamento
type LoadError struct {
	Err     error  // Erro base
	Path    string // Caminho do arquivo de dados
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError cria um novo LoadError
func NewLoadError(baseErr error, path string, details string) *LoadError {
	return &LoadError{
		Err:     baseErr,
		Path:    path,
		Details: details,
	}
}
