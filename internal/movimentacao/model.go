// Package movimentacao cobre os lançamentos a receber e a pagar gerados
// pelos itens de contrato: classificação, baixa, comprovantes e listagem.
package movimentacao

import (
	"time"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TipoMovimentacao separa contas a receber de contas a pagar.
type TipoMovimentacao string

const (
	TipoReceber TipoMovimentacao = "RECEBER"
	TipoPagar   TipoMovimentacao = "PAGAR"
)

func (t TipoMovimentacao) Valido() bool {
	return t == TipoReceber || t == TipoPagar
}

// Movimentacao é um lançamento datado gerado a partir de uma ocorrência de
// item de contrato. Só muda pela baixa; nunca é apagada por este sistema.
type Movimentacao struct {
	ID             uint             `gorm:"primaryKey" json:"movimentacaoId"`
	ItemContratoID uint             `gorm:"not null;index" json:"itemContratoId"`
	ContratoID     uint             `gorm:"not null;index" json:"contratoId"`
	Tipo           TipoMovimentacao `gorm:"size:10;not null;index" json:"tipo"`
	Descricao      string           `gorm:"size:255" json:"descricao"`
	DataVencimento formato.Data     `gorm:"not null;index" json:"dataVencimento"`
	DataPagamento  *formato.Data    `gorm:"index" json:"dataPagamento"`
	Pago           bool             `gorm:"not null;index" json:"pago"`
	Valor          decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"valor"`
	ValorEfetivo   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"valorEfetivo"`
	ValorJuros     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"valorJuros"`
	ValorMulta     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"valorMulta"`
	ComprovanteURL string           `gorm:"size:255" json:"comprovanteUrl"`
	CreatedAt      time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`

	// Calculados na leitura por Derivar.
	DiasAtraso     int             `gorm:"-" json:"diasAtraso"`
	ValorCorrigido decimal.Decimal `gorm:"-" json:"valorCorrigido"`
	Status         string          `gorm:"-" json:"status"`
}

func (Movimentacao) TableName() string { return "movimentacoes" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Movimentacao{})
}
