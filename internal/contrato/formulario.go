package contrato

import (
	"errors"
	"time"

	"github.com/KromaEnergia/api-contratos/internal/formato"
)

var ErrPapelNaoSelecionado = errors.New("selecione o tipo de vínculo antes da pessoa")

// Formulario é o estado em edição de um contrato no console.
// Guarda, por linha, o texto ainda em digitação do campo de valor.
type Formulario struct {
	Contrato Contrato
	Tipo     *TipoContrato
	Papel    Papel

	textoValor map[int]string
	agora      func() time.Time
}

// NovoFormulario abre o editor para um contrato ainda não salvo.
func NovoFormulario(agora func() time.Time) *Formulario {
	if agora == nil {
		agora = time.Now
	}
	return &Formulario{
		Contrato:   Contrato{Ativo: true},
		textoValor: map[int]string{},
		agora:      agora,
	}
}

// EditarFormulario abre o editor sobre uma cópia de um contrato existente.
func EditarFormulario(c Contrato, tipo *TipoContrato, agora func() time.Time) *Formulario {
	f := NovoFormulario(agora)
	f.Contrato = c.Clonar()
	f.Tipo = tipo
	f.Papel = c.Parte.Papel
	return f
}

func (f *Formulario) hoje() formato.Data {
	return formato.Hoje(f.agora())
}

// SelecionarPapel troca a aba de vínculo; a pessoa anterior é descartada
// até uma nova seleção.
func (f *Formulario) SelecionarPapel(p Papel) error {
	if !p.Valido() {
		return ErrPapelInvalido
	}
	f.Papel = p
	f.Contrato.Parte = ParteFaturada{}
	return nil
}

// SelecionarPessoa define a pessoa do papel atual.
func (f *Formulario) SelecionarPessoa(id uint) error {
	if f.Papel == "" {
		return ErrPapelNaoSelecionado
	}
	p, err := NovaParte(f.Papel, id)
	if err != nil {
		return err
	}
	f.Contrato.Parte = p
	return nil
}

// DefinirTipoContrato aplica o tipo ao contrato e a todos os itens.
// Em tipos recorrentes, itens sem mês/ano de vencimento recebem o mês
// corrente; nos demais tipos esses campos são zerados.
func (f *Formulario) DefinirTipoContrato(t TipoContrato) {
	f.Tipo = &t
	f.Contrato.AplicarTipo(t)
	hoje := f.hoje()
	for i := range f.Contrato.Itens {
		it := &f.Contrato.Itens[i]
		if !t.Recorrente {
			it.MesVencimento, it.AnoVencimento = 0, 0
			continue
		}
		if it.MesVencimento < 1 || it.MesVencimento > 12 {
			it.MesVencimento = int(hoje.Mes())
		}
		if it.AnoVencimento <= 0 {
			it.AnoVencimento = hoje.Ano()
		}
	}
}

// AdicionarItem insere um item no topo; os textos por linha descem uma posição.
func (f *Formulario) AdicionarItem() {
	f.Contrato.AdicionarItem(f.Tipo, f.hoje())
	deslocado := make(map[int]string, len(f.textoValor))
	for k, v := range f.textoValor {
		deslocado[k+1] = v
	}
	f.textoValor = deslocado
}

// RemoverItem apaga a linha i e reindexa os textos por linha.
func (f *Formulario) RemoverItem(i int) error {
	if err := f.Contrato.RemoverItem(i); err != nil {
		return err
	}
	f.textoValor = Reindexar(f.textoValor, i)
	return nil
}

// Reindexar remove a chave k: chaves menores ficam, a própria some
// e as maiores descem uma posição.
func Reindexar[V any](m map[int]V, k int) map[int]V {
	out := make(map[int]V, len(m))
	for i, v := range m {
		switch {
		case i < k:
			out[i] = v
		case i > k:
			out[i-1] = v
		}
	}
	return out
}

// AtualizarItem troca o item da linha i preservando o valor digitado.
func (f *Formulario) AtualizarItem(i int, item ItemContrato) error {
	return f.Contrato.AtualizarItem(i, item)
}

// DigitarValor trata cada tecla do campo de valor da linha i.
func (f *Formulario) DigitarValor(i int, bruto string) error {
	if i < 0 || i >= len(f.Contrato.Itens) {
		return ErrItemInexistente
	}
	item := f.Contrato.Itens[i]
	item.Valor = formato.ValorDigitado(bruto)
	f.textoValor[i] = bruto
	return f.Contrato.AtualizarItem(i, item)
}

// ConfirmarValor corresponde à saída do campo: o texto passa ao formato canônico.
func (f *Formulario) ConfirmarValor(i int) error {
	if i < 0 || i >= len(f.Contrato.Itens) {
		return ErrItemInexistente
	}
	f.textoValor[i] = formato.FormatarMoeda(f.Contrato.Itens[i].Valor)
	return nil
}

// TextoValor devolve o que o campo de valor da linha i exibe.
func (f *Formulario) TextoValor(i int) string {
	if s, ok := f.textoValor[i]; ok {
		return s
	}
	if i < 0 || i >= len(f.Contrato.Itens) {
		return ""
	}
	return formato.FormatarMoeda(f.Contrato.Itens[i].Valor)
}

// Submissao monta o corpo do envio comparando com o contrato original
// (nil para contrato novo).
func (f *Formulario) Submissao(original *Contrato) Submissao {
	return MontarSubmissao(original, f.Contrato, f.Tipo)
}
