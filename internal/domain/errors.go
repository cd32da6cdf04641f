package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInventarioInvalido   = errors.New("inventário inexistente ou não está aberto")
	ErrInventarioJaFechado  = errors.New("inventário já está fechado")
	ErrItemDuplicado        = errors.New("código de barras já lido neste inventário")
	ErrQuantidadeInvalida   = errors.New("quantidade ausente ou não positiva na etiqueta")
	ErrCodigoNaoEncontrado  = errors.New("código de barras não encontrado no catálogo")
	ErrSemDados             = errors.New("nenhum dado para exportar")
	ErrUpstream             = errors.New("falha ao consultar o ERP")
	ErrLoginJaExiste        = errors.New("login já cadastrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrUnauthorized         = errors.New("não autorizado")
)
