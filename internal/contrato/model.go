package contrato

import (
	"encoding/json"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
)

// Natureza do tipo de contrato: define se os itens geram receita ou despesa.
type Natureza string

const (
	NaturezaReceita Natureza = "RECEITA"
	NaturezaDespesa Natureza = "DESPESA"
)

// Operacao é o sinal do lançamento gerado por um item.
type Operacao string

const (
	OperacaoCredito Operacao = "CREDITO"
	OperacaoDebito  Operacao = "DEBITO"
)

// OperacaoPara: RECEITA gera crédito, qualquer outra natureza gera débito.
func OperacaoPara(n Natureza) Operacao {
	if n == NaturezaReceita {
		return OperacaoCredito
	}
	return OperacaoDebito
}

// TipoContrato é o catálogo (somente leitura) de tipos de contrato.
type TipoContrato struct {
	ID         uint     `gorm:"primaryKey" json:"tipoContratoId"`
	Descricao  string   `gorm:"size:120;not null" json:"descricao"`
	Natureza   Natureza `gorm:"size:10;not null" json:"natureza"`
	Recorrente bool     `gorm:"not null" json:"recorrente"`
}

func (TipoContrato) TableName() string { return "tipos_contrato" }

// ItemContrato é um termo de cobrança do contrato. Não existe fora dele.
// ID zero indica item ainda não persistido.
type ItemContrato struct {
	ID              uint             `gorm:"primaryKey" json:"itemId,omitempty"`
	ContratoID      uint             `gorm:"not null;index" json:"-"`
	Ordem           int              `gorm:"not null" json:"-"`
	Descricao       string           `gorm:"size:255;not null" json:"descricao" validate:"required,max=255"`
	Valor           decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"valor" validate:"gte=0,lte=9999999.99"`
	DataInicio      formato.Data     `gorm:"not null" json:"dataInicio" validate:"required"`
	DataFim         *formato.Data    `json:"dataFim,omitempty"`
	DiaVencimento   int              `gorm:"not null" json:"diaVencimento" validate:"min=1,max=28"`
	Ativo           bool             `gorm:"not null" json:"ativo"`
	GerarBoleto     bool             `gorm:"not null" json:"gerarBoleto"`
	TaxaJuros       decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"taxaJuros" validate:"gte=0,lte=100"`
	TaxaMulta       decimal.Decimal  `gorm:"type:decimal(5,2);not null" json:"taxaMulta" validate:"gte=0,lte=100"`
	InstrucoesBanco string           `gorm:"size:500" json:"instrucoesBanco,omitempty"`
	ContaBancariaID *uint            `gorm:"index" json:"contaBancariaId,omitempty"`
	Operacao        Operacao         `gorm:"size:10;not null" json:"operacao" validate:"oneof=CREDITO DEBITO"`
	MesVencimento   int              `gorm:"not null" json:"mesVencimento" validate:"min=0,max=12"`
	AnoVencimento   int              `gorm:"not null" json:"anoVencimento" validate:"min=0"`
}

func (ItemContrato) TableName() string { return "itens_contrato" }

// Contrato é a raiz do agregado. Valor é sempre a soma dos itens.
type Contrato struct {
	ID             uint            `gorm:"primaryKey" json:"contratoId,omitempty"`
	NumeroContrato string          `gorm:"size:60" json:"numeroContrato"`
	Parte          ParteFaturada   `gorm:"embedded;embeddedPrefix:parte_" json:"-"`
	TipoContratoID uint            `gorm:"not null;index" json:"tipoContratoId"`
	Descricao      string          `gorm:"size:255;not null" json:"descricao" validate:"required,max=255"`
	Valor          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"valor"`
	Ativo          bool            `gorm:"not null" json:"ativo"`
	ContratoURL    string          `gorm:"size:500" json:"contratoUrl"`
	Itens          []ItemContrato  `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"itens" validate:"min=1,dive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (Contrato) TableName() string { return "contratos" }

// MarshalJSON expõe a parte faturada nas chaves clienteInfoId / parceiroInfoId / socioInfoId.
func (c Contrato) MarshalJSON() ([]byte, error) {
	type alias Contrato
	return json.Marshal(struct {
		alias
		chavesParte
	}{alias(c), chavesDe(c.Parte)})
}

func (c *Contrato) UnmarshalJSON(b []byte) error {
	type alias Contrato
	aux := struct {
		*alias
		chavesParte
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p, err := aux.chavesParte.parte()
	if err != nil {
		return err
	}
	c.Parte = p
	return nil
}
