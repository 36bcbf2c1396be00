package contrato

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/shopspring/decimal"
)

var ErrItemNaoPertence = errors.New("item não pertence ao contrato")

// Submissao é o corpo enviado em POST/PUT /contratos. Campos nil não vão no JSON;
// Itens nil significa "itens não enviados".
type Submissao struct {
	NumeroContrato *string
	Parte          *ParteFaturada
	TipoContratoID *uint
	Descricao      *string
	Valor          *decimal.Decimal
	Ativo          *bool
	ContratoURL    *string
	Itens          []SubmissaoItem
}

// SubmissaoItem é o item já saneado para envio: datas em YYYY-MM-DD,
// opcionais vazios omitidos, mês/ano de vencimento sempre presentes.
type SubmissaoItem struct {
	ItemID          uint            `json:"itemId,omitempty"`
	Descricao       string          `json:"descricao"`
	Valor           decimal.Decimal `json:"valor"`
	DataInicio      string          `json:"dataInicio"`
	DataFim         string          `json:"dataFim,omitempty"`
	DiaVencimento   int             `json:"diaVencimento"`
	Ativo           bool            `json:"ativo"`
	GerarBoleto     bool            `json:"gerarBoleto"`
	TaxaJuros       decimal.Decimal `json:"taxaJuros"`
	TaxaMulta       decimal.Decimal `json:"taxaMulta"`
	InstrucoesBanco string          `json:"instrucoesBanco,omitempty"`
	ContaBancariaID *uint           `json:"contaBancariaId,omitempty"`
	Operacao        Operacao        `json:"operacao"`
	MesVencimento   int             `json:"mesVencimento"`
	AnoVencimento   int             `json:"anoVencimento"`
}

type submissaoJSON struct {
	NumeroContrato *string `json:"numeroContrato,omitempty"`
	chavesParte
	TipoContratoID *uint            `json:"tipoContratoId,omitempty"`
	Descricao      *string          `json:"descricao,omitempty"`
	Valor          *decimal.Decimal `json:"valor,omitempty"`
	Ativo          *bool            `json:"ativo,omitempty"`
	ContratoURL    *string          `json:"contratoUrl,omitempty"`
	Itens          []SubmissaoItem  `json:"itens,omitempty"`
}

func (s Submissao) MarshalJSON() ([]byte, error) {
	aux := submissaoJSON{
		NumeroContrato: s.NumeroContrato,
		TipoContratoID: s.TipoContratoID,
		Descricao:      s.Descricao,
		Valor:          s.Valor,
		Ativo:          s.Ativo,
		ContratoURL:    s.ContratoURL,
		Itens:          s.Itens,
	}
	if s.Parte != nil {
		aux.chavesParte = chavesDe(*s.Parte)
	}
	return json.Marshal(aux)
}

func (s *Submissao) UnmarshalJSON(b []byte) error {
	var aux submissaoJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = Submissao{
		NumeroContrato: aux.NumeroContrato,
		TipoContratoID: aux.TipoContratoID,
		Descricao:      aux.Descricao,
		Valor:          aux.Valor,
		Ativo:          aux.Ativo,
		ContratoURL:    aux.ContratoURL,
		Itens:          aux.Itens,
	}
	if aux.chavesParte.presente() {
		p, err := aux.chavesParte.parte()
		if err != nil {
			return err
		}
		s.Parte = &p
	}
	return nil
}

// SubmissaoCompleta envia o estado inteiro do formulário (contrato novo).
func SubmissaoCompleta(c Contrato, tipo *TipoContrato) Submissao {
	numero, descricao, url := c.NumeroContrato, c.Descricao, c.ContratoURL
	parte, tipoID, valor, ativo := c.Parte, c.TipoContratoID, c.Valor, c.Ativo
	return Submissao{
		NumeroContrato: &numero,
		Parte:          &parte,
		TipoContratoID: &tipoID,
		Descricao:      &descricao,
		Valor:          &valor,
		Ativo:          &ativo,
		ContratoURL:    &url,
		Itens:          sanearItens(c.Itens, tipo),
	}
}

// MontarSubmissao decide entre envio completo (original nil ou não salvo) e
// envio parcial, só com os campos alterados.
//
// No envio parcial os itens vão sempre que o contrato atual tiver algum item,
// mesmo que nenhum tenha mudado: o ramo "itens inalterados" só vale para
// contratos sem itens. O servidor recalcula o valor a partir dos itens a
// cada gravação.
func MontarSubmissao(original *Contrato, atual Contrato, tipo *TipoContrato) Submissao {
	if original == nil || original.ID == 0 {
		return SubmissaoCompleta(atual, tipo)
	}
	alt := CalcularAlteracoes(*original, atual)
	var s Submissao
	if alt.NumeroContrato {
		v := atual.NumeroContrato
		s.NumeroContrato = &v
	}
	if alt.Parte {
		v := atual.Parte
		s.Parte = &v
	}
	if alt.TipoContratoID {
		v := atual.TipoContratoID
		s.TipoContratoID = &v
	}
	if alt.Descricao {
		v := atual.Descricao
		s.Descricao = &v
	}
	if alt.Valor {
		v := atual.Valor
		s.Valor = &v
	}
	if alt.Ativo {
		v := atual.Ativo
		s.Ativo = &v
	}
	if alt.ContratoURL {
		v := atual.ContratoURL
		s.ContratoURL = &v
	}
	if alt.Itens || len(atual.Itens) > 0 {
		s.Itens = sanearItens(atual.Itens, tipo)
	}
	return s
}

func sanearItens(itens []ItemContrato, tipo *TipoContrato) []SubmissaoItem {
	out := make([]SubmissaoItem, len(itens))
	for i, it := range itens {
		out[i] = sanearItem(it, tipo)
	}
	return out
}

func sanearItem(it ItemContrato, tipo *TipoContrato) SubmissaoItem {
	s := SubmissaoItem{
		ItemID:          it.ID,
		Descricao:       it.Descricao,
		Valor:           it.Valor,
		DataInicio:      it.DataInicio.String(),
		DiaVencimento:   it.DiaVencimento,
		Ativo:           it.Ativo,
		GerarBoleto:     it.GerarBoleto,
		TaxaJuros:       it.TaxaJuros,
		TaxaMulta:       it.TaxaMulta,
		InstrucoesBanco: it.InstrucoesBanco,
		ContaBancariaID: it.ContaBancariaID,
		Operacao:        it.Operacao,
		MesVencimento:   it.MesVencimento,
		AnoVencimento:   it.AnoVencimento,
	}
	if it.DataFim != nil {
		s.DataFim = it.DataFim.String()
	}
	if tipo != nil {
		s.Operacao = OperacaoPara(tipo.Natureza)
		if !tipo.Recorrente {
			s.MesVencimento, s.AnoVencimento = 0, 0
		}
	}
	return s
}

// paraItem converte o item recebido, normalizando as datas.
func (s SubmissaoItem) paraItem() (ItemContrato, error) {
	inicio, err := formato.ParseData(s.DataInicio)
	if err != nil {
		return ItemContrato{}, fmt.Errorf("dataInicio: %w", err)
	}
	it := ItemContrato{
		ID:              s.ItemID,
		Descricao:       s.Descricao,
		Valor:           s.Valor,
		DataInicio:      inicio,
		DiaVencimento:   s.DiaVencimento,
		Ativo:           s.Ativo,
		GerarBoleto:     s.GerarBoleto,
		TaxaJuros:       s.TaxaJuros,
		TaxaMulta:       s.TaxaMulta,
		InstrucoesBanco: s.InstrucoesBanco,
		ContaBancariaID: s.ContaBancariaID,
		Operacao:        s.Operacao,
		MesVencimento:   s.MesVencimento,
		AnoVencimento:   s.AnoVencimento,
	}
	if s.DataFim != "" {
		fim, err := formato.ParseData(s.DataFim)
		if err != nil {
			return ItemContrato{}, fmt.Errorf("dataFim: %w", err)
		}
		it.DataFim = &fim
	}
	return it, nil
}

// Aplicar grava a submissão sobre o contrato: campos presentes sobrescrevem,
// a lista de itens presente substitui a atual (casando por itemId). Devolve os
// IDs dos itens que deixaram de existir. O valor é sempre recalculado.
func (c *Contrato) Aplicar(s Submissao, tipo TipoContrato) ([]uint, error) {
	if s.NumeroContrato != nil {
		c.NumeroContrato = *s.NumeroContrato
	}
	if s.Parte != nil {
		c.Parte = *s.Parte
	}
	if s.Descricao != nil {
		c.Descricao = *s.Descricao
	}
	if s.Ativo != nil {
		c.Ativo = *s.Ativo
	}
	if s.ContratoURL != nil {
		c.ContratoURL = *s.ContratoURL
	}

	var removidos []uint
	if s.Itens != nil {
		existentes := make(map[uint]ItemContrato, len(c.Itens))
		for _, it := range c.Itens {
			existentes[it.ID] = it
		}
		novos := make([]ItemContrato, 0, len(s.Itens))
		for i, si := range s.Itens {
			it, err := si.paraItem()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			if it.ID != 0 {
				if _, ok := existentes[it.ID]; !ok {
					return nil, fmt.Errorf("%w: itemId %d", ErrItemNaoPertence, it.ID)
				}
				delete(existentes, it.ID)
			}
			it.ContratoID = c.ID
			it.Ordem = i
			novos = append(novos, it)
		}
		for id := range existentes {
			removidos = append(removidos, id)
		}
		c.Itens = novos
	}

	c.AplicarTipo(tipo)
	c.RecalcularValor()
	return removidos, nil
}
