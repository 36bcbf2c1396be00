package contrato

import (
	"errors"
	"fmt"
)

// Papel é o tipo de vínculo da pessoa contra a qual o contrato é emitido.
type Papel string

const (
	PapelCliente  Papel = "cliente"
	PapelParceiro Papel = "parceiro"
	PapelSocio    Papel = "socio"
)

var (
	ErrPapelInvalido = errors.New("papel inválido")
	ErrParteAmbigua  = errors.New("informe apenas um entre clienteInfoId, parceiroInfoId e socioInfoId")
)

func (p Papel) Valido() bool {
	return p == PapelCliente || p == PapelParceiro || p == PapelSocio
}

// ParsePapel valida o texto vindo de query string ou formulário.
func ParsePapel(s string) (Papel, error) {
	p := Papel(s)
	if !p.Valido() {
		return "", fmt.Errorf("%w: %q", ErrPapelInvalido, s)
	}
	return p, nil
}

// ParteFaturada é a união Cliente(id) | Parceiro(id) | Socio(id).
// O valor zero significa "nenhuma parte escolhida".
type ParteFaturada struct {
	Papel    Papel `gorm:"size:20"`
	PessoaID uint  `gorm:"index"`
}

func Cliente(id uint) ParteFaturada  { return ParteFaturada{Papel: PapelCliente, PessoaID: id} }
func Parceiro(id uint) ParteFaturada { return ParteFaturada{Papel: PapelParceiro, PessoaID: id} }
func Socio(id uint) ParteFaturada    { return ParteFaturada{Papel: PapelSocio, PessoaID: id} }

// NovaParte monta a parte para um papel arbitrário.
func NovaParte(p Papel, id uint) (ParteFaturada, error) {
	if !p.Valido() {
		return ParteFaturada{}, fmt.Errorf("%w: %q", ErrPapelInvalido, p)
	}
	return ParteFaturada{Papel: p, PessoaID: id}, nil
}

// Definida indica papel válido com pessoa escolhida.
func (p ParteFaturada) Definida() bool {
	return p.Papel.Valido() && p.PessoaID != 0
}

func (p ParteFaturada) idPara(papel Papel) *uint {
	if p.Papel != papel || p.PessoaID == 0 {
		return nil
	}
	id := p.PessoaID
	return &id
}

func (p ParteFaturada) ClienteInfoID() *uint  { return p.idPara(PapelCliente) }
func (p ParteFaturada) ParceiroInfoID() *uint { return p.idPara(PapelParceiro) }
func (p ParteFaturada) SocioInfoID() *uint    { return p.idPara(PapelSocio) }

// chavesParte é a representação da parte no JSON trocado com o console.
type chavesParte struct {
	ClienteInfoID  *uint `json:"clienteInfoId,omitempty"`
	ParceiroInfoID *uint `json:"parceiroInfoId,omitempty"`
	SocioInfoID    *uint `json:"socioInfoId,omitempty"`
}

func chavesDe(p ParteFaturada) chavesParte {
	return chavesParte{
		ClienteInfoID:  p.ClienteInfoID(),
		ParceiroInfoID: p.ParceiroInfoID(),
		SocioInfoID:    p.SocioInfoID(),
	}
}

func (c chavesParte) presente() bool {
	return c.ClienteInfoID != nil || c.ParceiroInfoID != nil || c.SocioInfoID != nil
}

func (c chavesParte) parte() (ParteFaturada, error) {
	var (
		p     ParteFaturada
		total int
	)
	if c.ClienteInfoID != nil {
		p, total = Cliente(*c.ClienteInfoID), total+1
	}
	if c.ParceiroInfoID != nil {
		p, total = Parceiro(*c.ParceiroInfoID), total+1
	}
	if c.SocioInfoID != nil {
		p, total = Socio(*c.SocioInfoID), total+1
	}
	if total > 1 {
		return ParteFaturada{}, ErrParteAmbigua
	}
	return p, nil
}
