package entity

// Estoque é uma linha do snapshot de estoque sincronizado do ERP.
// Chave lógica: (CodItem, TmascItemID). O feed não garante unicidade;
// em caso de duplicata vale a última linha, já que a tabela é substituída
// por inteiro a cada sincronização.
type Estoque struct {
	CodEmp      int
	CodItem     string
	Mascara     string
	TmascItemID int64
	Quantidade  int64
	DescTecnica string
}
