package contrato

import "github.com/KromaEnergia/api-contratos/internal/formato"

// Alteracoes marca o que mudou entre o contrato original e o editado.
//
// Os itens são tratados como uma unidade: Itens é verdadeiro se a quantidade
// mudou ou se qualquer campo de qualquer item mudou, e nesse caso a lista
// inteira é reenviada, nunca só os itens alterados. Não há diff por item.
type Alteracoes struct {
	NumeroContrato bool
	Parte          bool
	TipoContratoID bool
	Descricao      bool
	Valor          bool
	Ativo          bool
	ContratoURL    bool
	Itens          bool
}

// Nenhuma indica ausência total de mudanças.
func (a Alteracoes) Nenhuma() bool {
	return a == Alteracoes{}
}

// CalcularAlteracoes compara campo a campo o original com o estado atual.
func CalcularAlteracoes(original, atual Contrato) Alteracoes {
	return Alteracoes{
		NumeroContrato: original.NumeroContrato != atual.NumeroContrato,
		Parte:          original.Parte != atual.Parte,
		TipoContratoID: original.TipoContratoID != atual.TipoContratoID,
		Descricao:      original.Descricao != atual.Descricao,
		Valor:          !original.Valor.Equal(atual.Valor),
		Ativo:          original.Ativo != atual.Ativo,
		ContratoURL:    original.ContratoURL != atual.ContratoURL,
		Itens:          itensAlterados(original.Itens, atual.Itens),
	}
}

func itensAlterados(original, atual []ItemContrato) bool {
	if len(original) != len(atual) {
		return true
	}
	for i := range atual {
		if itemAlterado(original[i], atual[i]) {
			return true
		}
	}
	return false
}

func itemAlterado(a, b ItemContrato) bool {
	return a.Descricao != b.Descricao ||
		!a.Valor.Equal(b.Valor) ||
		!a.DataInicio.Equal(b.DataInicio) ||
		!mesmaData(a.DataFim, b.DataFim) ||
		a.DiaVencimento != b.DiaVencimento ||
		a.Ativo != b.Ativo ||
		a.GerarBoleto != b.GerarBoleto ||
		!a.TaxaJuros.Equal(b.TaxaJuros) ||
		!a.TaxaMulta.Equal(b.TaxaMulta) ||
		a.InstrucoesBanco != b.InstrucoesBanco ||
		!mesmoID(a.ContaBancariaID, b.ContaBancariaID) ||
		a.MesVencimento != b.MesVencimento ||
		a.AnoVencimento != b.AnoVencimento
}

func mesmaData(a, b *formato.Data) bool {
	if a == nil || a.IsZero() {
		return b == nil || b.IsZero()
	}
	return b != nil && a.Equal(*b)
}

func mesmoID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
