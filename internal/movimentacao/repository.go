package movimentacao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"gorm.io/gorm"
)

var ErrStatusInvalido = errors.New("status inválido: use all, EM ABERTO, EM ATRASO, PAGO ou RECEBIDO")

// Repository encapsula o acesso a dados de movimentações.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ============================== Gravação ============================== */

// CriarEmLote grava movimentações recebidas do gerador (ignora se vazio).
func (r *Repository) CriarEmLote(ctx context.Context, ms []*Movimentacao) error {
	if len(ms) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(ms).Error
}

// BuscarPorID busca uma única movimentação pelo seu ID.
func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Movimentacao, error) {
	var m Movimentacao
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// RegistrarBaixa grava só os campos que a baixa altera.
func (r *Repository) RegistrarBaixa(ctx context.Context, m *Movimentacao) error {
	return r.DB.WithContext(ctx).Model(m).
		Select("pago", "data_pagamento", "valor_efetivo").
		Updates(map[string]interface{}{
			"pago":           m.Pago,
			"data_pagamento": m.DataPagamento,
			"valor_efetivo":  m.ValorEfetivo,
		}).Error
}

// AtualizarComprovante grava a URL do comprovante; gorm.ErrRecordNotFound se
// a movimentação não existe.
func (r *Repository) AtualizarComprovante(ctx context.Context, id uint, url string) error {
	res := r.DB.WithContext(ctx).Model(&Movimentacao{}).
		Where("id = ?", id).
		Update("comprovante_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ============================== Listagem ============================== */

// Listar aplica tipo e filtros, ordena pela política de OrdenacaoPara e
// preenche os campos calculados com a data de hoje informada.
func (r *Repository) Listar(ctx context.Context, tipo TipoMovimentacao, f Filtro, hoje formato.Data) ([]Movimentacao, error) {
	q := r.DB.WithContext(ctx).Model(&Movimentacao{}).Where("tipo = ?", tipo)

	q, err := filtrarStatus(q, f, hoje)
	if err != nil {
		return nil, err
	}
	if f.ContratoID != 0 {
		q = q.Where("contrato_id = ?", f.ContratoID)
	}
	if q, err = filtrarDatas(q, "data_vencimento", f.VencimentoInicio, f.VencimentoFim); err != nil {
		return nil, err
	}
	if q, err = filtrarDatas(q, "data_pagamento", f.PagamentoInicio, f.PagamentoFim); err != nil {
		return nil, err
	}
	if q, err = filtrarLancamento(q, f.LancamentoInicio, f.LancamentoFim); err != nil {
		return nil, err
	}

	var ms []Movimentacao
	err = q.Order(OrdenacaoPara(f).SQL()).Order("id DESC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	for i := range ms {
		ms[i].Derivar(hoje)
	}
	return ms, nil
}

func filtrarStatus(q *gorm.DB, f Filtro, hoje formato.Data) (*gorm.DB, error) {
	if !f.StatusAtivo() {
		return q, nil
	}
	switch strings.ToUpper(strings.TrimSpace(f.Status)) {
	case RotuloEmAberto:
		return q.Where("pago = ? AND data_vencimento >= ?", false, hoje), nil
	case RotuloEmAtraso:
		return q.Where("pago = ? AND data_vencimento < ?", false, hoje), nil
	case RotuloPago, RotuloRecebido:
		return q.Where("pago = ?", true), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrStatusInvalido, f.Status)
	}
}

func filtrarDatas(q *gorm.DB, coluna, inicio, fim string) (*gorm.DB, error) {
	if inicio != "" {
		d, err := formato.ParseData(inicio)
		if err != nil {
			return nil, err
		}
		q = q.Where(coluna+" >= ?", d)
	}
	if fim != "" {
		d, err := formato.ParseData(fim)
		if err != nil {
			return nil, err
		}
		q = q.Where(coluna+" <= ?", d)
	}
	return q, nil
}

// created_at é timestamp: o fim do intervalo vai até o início do dia seguinte.
func filtrarLancamento(q *gorm.DB, inicio, fim string) (*gorm.DB, error) {
	if inicio != "" {
		d, err := formato.ParseData(inicio)
		if err != nil {
			return nil, err
		}
		q = q.Where("created_at >= ?", d.Time())
	}
	if fim != "" {
		d, err := formato.ParseData(fim)
		if err != nil {
			return nil, err
		}
		q = q.Where("created_at < ?", d.AdicionarDias(1).Time())
	}
	return q, nil
}
