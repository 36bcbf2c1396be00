package contrato

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var ErrValidacao = errors.New("contrato inválido")

// ValidacaoErro descreve a primeira regra violada.
type ValidacaoErro struct {
	Campo    string
	Mensagem string
}

func (e *ValidacaoErro) Error() string { return e.Mensagem }

func (e *ValidacaoErro) Is(alvo error) bool { return alvo == ErrValidacao }

func falha(campo, msg string) error {
	return &ValidacaoErro{Campo: campo, Mensagem: msg}
}

// Validar aplica as regras do editor na ordem em que o usuário as enxerga;
// a primeira falha é devolvida.
func (f *Formulario) Validar() error {
	c := f.Contrato
	if !f.Papel.Valido() || !c.Parte.Definida() {
		return falha("parte", "Selecione o cliente, parceiro ou sócio do contrato")
	}
	if f.Tipo == nil || c.TipoContratoID == 0 {
		return falha("tipoContratoId", "Selecione o tipo de contrato")
	}
	if strings.TrimSpace(c.Descricao) == "" {
		return falha("descricao", "Informe a descrição do contrato")
	}
	if len(c.Itens) == 0 {
		return falha("itens", "Adicione ao menos um item ao contrato")
	}
	for i, it := range c.Itens {
		linha := i + 1
		if strings.TrimSpace(it.Descricao) == "" {
			return falha(fmt.Sprintf("itens[%d].descricao", i), fmt.Sprintf("Informe a descrição do item %d", linha))
		}
		if !it.Valor.GreaterThan(decimal.Zero) {
			return falha(fmt.Sprintf("itens[%d].valor", i), fmt.Sprintf("O valor do item %d deve ser maior que zero", linha))
		}
		if it.DataInicio.IsZero() {
			return falha(fmt.Sprintf("itens[%d].dataInicio", i), fmt.Sprintf("Informe a data de início do item %d", linha))
		}
	}
	return nil
}

var validate = novoValidador()

func novoValidador() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		n, _ := d.Float64()
		return n
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(formato.Data)
		if !ok {
			return nil
		}
		return d.String()
	}, formato.Data{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		nome := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if nome == "-" {
			return ""
		}
		return nome
	})
	return v
}

// ValidarEstrutura confere os limites de cada campo antes de persistir.
// Itens ativos precisam de valor positivo e, em tipos recorrentes, de
// mês e ano de vencimento.
func ValidarEstrutura(c Contrato, tipo TipoContrato) error {
	if !c.Parte.Definida() {
		return falha("parte", "Informe exatamente um entre cliente, parceiro e sócio")
	}
	if c.TipoContratoID == 0 {
		return falha("tipoContratoId", "Informe o tipo de contrato")
	}
	if err := validate.Struct(c); err != nil {
		var erros validator.ValidationErrors
		if errors.As(err, &erros) && len(erros) > 0 {
			e := erros[0]
			return falha(e.Namespace(), fmt.Sprintf("campo %s inválido (%s)", e.Namespace(), e.Tag()))
		}
		return err
	}
	for i, it := range c.Itens {
		linha := i + 1
		if it.Ativo && !it.Valor.GreaterThan(decimal.Zero) {
			return falha(fmt.Sprintf("itens[%d].valor", i), fmt.Sprintf("O valor do item %d deve ser maior que zero", linha))
		}
		if !tipo.Recorrente {
			continue
		}
		if it.MesVencimento < 1 || it.MesVencimento > 12 {
			return falha(fmt.Sprintf("itens[%d].mesVencimento", i), fmt.Sprintf("Informe o mês de vencimento do item %d", linha))
		}
		if it.AnoVencimento <= 0 {
			return falha(fmt.Sprintf("itens[%d].anoVencimento", i), fmt.Sprintf("Informe o ano de vencimento do item %d", linha))
		}
	}
	return nil
}
