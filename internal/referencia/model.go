// Package referencia expõe os cadastros usados para preencher os seletores
// do console: pessoas por papel e contas bancárias.
package referencia

import (
	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"gorm.io/gorm"
)

// Pessoa é um cliente, parceiro ou sócio que pode ser parte de um contrato.
type Pessoa struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Nome      string         `gorm:"size:200;not null;index" json:"nome"`
	Documento string         `gorm:"size:20" json:"documento"`
	Papel     contrato.Papel `gorm:"size:20;not null;index" json:"papel"`
}

func (Pessoa) TableName() string { return "pessoas" }

// ContaBancaria é a conta de recebimento/pagamento vinculável a um item.
type ContaBancaria struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Banco     string `gorm:"size:100;not null" json:"banco"`
	Agencia   string `gorm:"size:10" json:"agencia"`
	Conta     string `gorm:"size:20" json:"conta"`
	Descricao string `gorm:"size:120" json:"descricao"`
}

func (ContaBancaria) TableName() string { return "contas_bancarias" }

// Migrate cria as tabelas do pacote.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pessoa{}, &ContaBancaria{})
}
