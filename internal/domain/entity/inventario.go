package entity

import "time"

// Status possíveis de um inventário. Ciclo de vida de mão única:
// nasce Aberto e transita uma única vez para Fechado (sem reabertura).
const (
	StatusAberto  = "Aberto"
	StatusFechado = "Fechado"
)

// Inventario representa uma sessão de contagem física de estoque.
// DataFim é preenchida se e somente se o status é Fechado.
type Inventario struct {
	ID         string
	Nome       string
	Status     string
	DataInicio time.Time
	DataFim    *time.Time
	CreatedAt  time.Time
}

// Aberto informa se o inventário ainda aceita leituras.
func (i *Inventario) Aberto() bool {
	return i.Status == StatusAberto
}
