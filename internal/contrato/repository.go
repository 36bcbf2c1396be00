package contrato

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsula o acesso a dados de contratos, itens e tipos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Migrate cria as tabelas do pacote.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TipoContrato{}, &Contrato{}, &ItemContrato{})
}

/* ============================== Contratos ============================== */

// BuscarPorID carrega o contrato com os itens na ordem de exibição.
func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Contrato, error) {
	var c Contrato
	err := r.DB.WithContext(ctx).
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC, id ASC") }).
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Salvar grava contrato e itens numa transação e apaga os itens removidos.
func (r *Repository) Salvar(ctx context.Context, c *Contrato, removidos []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.ID != 0 && len(removidos) > 0 {
			if err := tx.Where("contrato_id = ? AND id IN ?", c.ID, removidos).
				Delete(&ItemContrato{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Save(c).Error; err != nil {
			return err
		}
		for i := range c.Itens {
			c.Itens[i].ContratoID = c.ID
			c.Itens[i].Ordem = i
			if err := tx.Save(&c.Itens[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Remover apaga o contrato e seus itens; gorm.ErrRecordNotFound se não existia.
func (r *Repository) Remover(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contrato_id = ?", id).Delete(&ItemContrato{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Contrato{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Listar devolve uma página de contratos filtrados, mais recentes primeiro.
func (r *Repository) Listar(ctx context.Context, f FiltroContratos, page, perPage int) (*PaginaContratos, error) {
	page, perPage = normalizarPaginacao(page, perPage)

	q := r.DB.WithContext(ctx).Model(&Contrato{})
	if busca := strings.TrimSpace(f.Busca); busca != "" {
		termo := "%" + strings.ToLower(busca) + "%"
		q = q.Where("LOWER(descricao) LIKE ? OR LOWER(numero_contrato) LIKE ?", termo, termo)
	}
	if f.TipoContratoID != 0 {
		q = q.Where("tipo_contrato_id = ?", f.TipoContratoID)
	}
	if f.Ativo != nil {
		q = q.Where("ativo = ?", *f.Ativo)
	}
	if f.Papel != "" {
		q = q.Where("parte_papel = ?", f.Papel)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var contratos []Contrato
	err := q.
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC, id ASC") }).
		Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&contratos).Error
	if err != nil {
		return nil, err
	}

	return &PaginaContratos{
		Data:       contratos,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPaginas(total, perPage),
	}, nil
}

/* ============================== Tipos ============================== */

// ListarTipos devolve o catálogo de tipos de contrato.
func (r *Repository) ListarTipos(ctx context.Context) ([]TipoContrato, error) {
	var tipos []TipoContrato
	err := r.DB.WithContext(ctx).Order("descricao ASC").Find(&tipos).Error
	return tipos, err
}

// BuscarTipo busca um tipo de contrato pelo ID.
func (r *Repository) BuscarTipo(ctx context.Context, id uint) (*TipoContrato, error) {
	var t TipoContrato
	if err := r.DB.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CriarTipo cadastra um tipo no catálogo (carga inicial).
func (r *Repository) CriarTipo(ctx context.Context, t *TipoContrato) error {
	return r.DB.WithContext(ctx).Create(t).Error
}
