package referencia

import (
	"strings"

	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"gorm.io/gorm"
)

// LimiteBusca é o máximo de pessoas devolvidas por busca.
const LimiteBusca = 20

type Repository interface {
	BuscarPessoas(db *gorm.DB, papel contrato.Papel, termo string) ([]Pessoa, error)
	BuscarPessoa(db *gorm.DB, id uint) (*Pessoa, error)
	ListarContas(db *gorm.DB) ([]ContaBancaria, error)
	Salvar(db *gorm.DB, v interface{}) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca por papel e trecho do nome ou documento, sem diferenciar maiúsculas.
func (r *repositoryImpl) BuscarPessoas(db *gorm.DB, papel contrato.Papel, termo string) ([]Pessoa, error) {
	q := db.Where("papel = ?", papel)
	if t := strings.TrimSpace(termo); t != "" {
		like := "%" + strings.ToLower(t) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR documento LIKE ?", like, like)
	}
	var pessoas []Pessoa
	err := q.Order("nome ASC").Limit(LimiteBusca).Find(&pessoas).Error
	return pessoas, err
}

func (r *repositoryImpl) BuscarPessoa(db *gorm.DB, id uint) (*Pessoa, error) {
	var p Pessoa
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListarContas(db *gorm.DB) ([]ContaBancaria, error) {
	var contas []ContaBancaria
	err := db.Order("banco ASC, id ASC").Find(&contas).Error
	return contas, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v interface{}) error {
	return db.Save(v).Error
}
