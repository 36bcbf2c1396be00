package formato

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const layoutISO = "2006-01-02"

var (
	ErrDataInvalida = errors.New("data inválida")

	padraoISO = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Data é uma data de calendário, sem fuso. Internamente sempre meia-noite UTC.
type Data datatypes.Date

// NovaData monta uma Data a partir de ano, mês e dia.
func NovaData(ano int, mes time.Month, dia int) Data {
	return Data(time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC))
}

// DataDe extrai o dia de calendário de t, no fuso do próprio t.
func DataDe(t time.Time) Data {
	a, m, d := t.Date()
	return NovaData(a, m, d)
}

// Hoje é um atalho para DataDe(agora).
func Hoje(agora time.Time) Data {
	return DataDe(agora)
}

// ParseData interpreta qualquer formato aceito por NormalizarData.
func ParseData(s string) (Data, error) {
	iso, err := NormalizarData(s)
	if err != nil {
		return Data{}, err
	}
	t, err := time.Parse(layoutISO, iso)
	if err != nil {
		return Data{}, fmt.Errorf("%w: %q", ErrDataInvalida, s)
	}
	return DataDe(t), nil
}

// NormalizarData devolve a data no formato YYYY-MM-DD.
// Valores já nesse formato voltam sem alteração (nenhum reparse com fuso).
// Também aceita timestamps RFC3339, dos quais usa a parte de data como escrita,
// e o formato brasileiro dd/mm/aaaa.
func NormalizarData(s string) (string, error) {
	s = strings.TrimSpace(s)
	if padraoISO.MatchString(s) && dataExiste(s) {
		return s, nil
	}
	if len(s) > 10 && s[10] == 'T' && padraoISO.MatchString(s[:10]) && dataExiste(s[:10]) {
		return s[:10], nil
	}
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t.Format(layoutISO), nil
	}
	return "", fmt.Errorf("%w: %q", ErrDataInvalida, s)
}

// dataExiste recusa dias fora do calendário, como 2024-02-30.
func dataExiste(iso string) bool {
	_, err := time.Parse(layoutISO, iso)
	return err == nil
}

func (d Data) Time() time.Time { return time.Time(d) }

func (d Data) IsZero() bool { return time.Time(d).IsZero() }

func (d Data) Before(o Data) bool { return d.Time().Before(o.Time()) }

func (d Data) After(o Data) bool { return d.Time().After(o.Time()) }

func (d Data) Equal(o Data) bool { return d.Time().Equal(o.Time()) }

func (d Data) Mes() time.Month { return d.Time().Month() }

func (d Data) Ano() int { return d.Time().Year() }

// AdicionarDias soma n dias de calendário.
func (d Data) AdicionarDias(n int) Data {
	return Data(d.Time().AddDate(0, 0, n))
}

// String devolve YYYY-MM-DD, ou "" para a data zero.
func (d Data) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(layoutISO)
}

// DiasEntre conta os dias inteiros de a até b (negativo se b vem antes).
func DiasEntre(a, b Data) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}

// FormatarData exibe a data como dd/mm/aaaa.
func FormatarData(d Data) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("02/01/2006")
}

func (d Data) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Data) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Data{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrDataInvalida, b)
	}
	if s == "" {
		*d = Data{}
		return nil
	}
	v, err := ParseData(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Data) Value() (driver.Value, error) {
	return datatypes.Date(d).Value()
}

func (d *Data) Scan(v interface{}) error {
	var dt datatypes.Date
	if err := dt.Scan(v); err != nil {
		return err
	}
	t := time.Time(dt)
	if t.IsZero() {
		*d = Data{}
		return nil
	}
	*d = DataDe(t)
	return nil
}

func (Data) GormDataType() string { return "date" }
