// Comando console opera a API de contratos pela linha de comando:
// emite tokens, consulta movimentações e registra baixas.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/KromaEnergia/api-contratos/internal/auth"
	"github.com/KromaEnergia/api-contratos/internal/busca"
	"github.com/KromaEnergia/api-contratos/internal/cliente"
	"github.com/KromaEnergia/api-contratos/internal/config"
	"github.com/KromaEnergia/api-contratos/internal/console"
	"github.com/KromaEnergia/api-contratos/internal/contrato"
	"github.com/KromaEnergia/api-contratos/internal/formato"
	"github.com/KromaEnergia/api-contratos/internal/movimentacao"
	"github.com/KromaEnergia/api-contratos/internal/notificacao"
	"github.com/KromaEnergia/api-contratos/internal/sessao"
	"github.com/KromaEnergia/api-contratos/internal/utils/logger"
	"go.uber.org/zap"
)

const uso = `uso: console <comando> [opções]

comandos:
  token    -usuario N [-admin]                emite um token de acesso
  receber  [-status S] [-contrato N] ...      lista contas a receber
  pagar    [-status S] [-contrato N] ...      lista contas a pagar
  baixar   -id N [-data D] [-valor V] [-comprovante arquivo]
  pessoas  -papel cliente|parceiro|socio [-busca termo]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, uso)
		os.Exit(2)
	}
	cfg, err := config.Carregar()
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro ao carregar configuração:", err)
		os.Exit(1)
	}
	zl, err := logger.NovoLogger(cfg.Modo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro ao iniciar logger:", err)
		os.Exit(1)
	}
	defer zl.Sync()

	if err := executar(context.Background(), cfg, zl, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		zl.Error("comando falhou", zap.String("comando", os.Args[1]), zap.Error(err))
		os.Exit(1)
	}
}

func executar(ctx context.Context, cfg *config.Config, zl *zap.Logger, comando string, args []string, out io.Writer) error {
	if comando == "token" {
		return emitirToken(cfg, args, out)
	}

	s := sessao.Nova(cfg.APIToken)
	s.AoNaoAutorizado(func() {
		fmt.Fprintln(out, "Sessão expirada. Gere um novo token com: console token")
	})
	cli := cliente.Novo(cfg.APIURL, s)
	n := notificador(cfg, zl)

	switch comando {
	case "receber":
		return listar(ctx, console.NovoPainel(movimentacao.TipoReceber, cli, n, zl), args, out)
	case "pagar":
		return listar(ctx, console.NovoPainel(movimentacao.TipoPagar, cli, n, zl), args, out)
	case "baixar":
		return baixar(ctx, console.NovoPainel(movimentacao.TipoReceber, cli, n, zl), args, out)
	case "pessoas":
		return pessoas(ctx, cli, args, out)
	default:
		return fmt.Errorf("comando desconhecido %q", comando)
	}
}

func notificador(cfg *config.Config, zl *zap.Logger) notificacao.Notificador {
	n := notificacao.Varios{notificacao.Log{L: zl}}
	if cfg.WebhookURL != "" {
		n = append(n, notificacao.NovoWebhook(cfg.WebhookURL, zl))
	}
	return n
}

func emitirToken(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	usuario := fs.Uint("usuario", 0, "ID do usuário")
	admin := fs.Bool("admin", false, "token de administrador")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *usuario == 0 {
		return errors.New("informe -usuario")
	}
	e, err := auth.NovoEmissor(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return err
	}
	tok, err := e.GerarToken(*usuario, *admin)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, tok)
	return nil
}

func listar(ctx context.Context, p *console.PainelMovimentacoes, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(string(p.Tipo), flag.ContinueOnError)
	var f movimentacao.Filtro
	fs.StringVar(&f.Status, "status", "", "EM ABERTO, EM ATRASO, PAGO, RECEBIDO ou all")
	fs.UintVar(&f.ContratoID, "contrato", 0, "ID do contrato")
	fs.StringVar(&f.VencimentoInicio, "vencimento-inicio", "", "AAAA-MM-DD")
	fs.StringVar(&f.VencimentoFim, "vencimento-fim", "", "AAAA-MM-DD")
	fs.StringVar(&f.PagamentoInicio, "pagamento-inicio", "", "AAAA-MM-DD")
	fs.StringVar(&f.PagamentoFim, "pagamento-fim", "", "AAAA-MM-DD")
	fs.StringVar(&f.LancamentoInicio, "lancamento-inicio", "", "AAAA-MM-DD")
	fs.StringVar(&f.LancamentoFim, "lancamento-fim", "", "AAAA-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p.Filtro = f

	l, err := p.Listar(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVENCIMENTO\tDESCRIÇÃO\tVALOR\tCORRIGIDO\tATRASO\tSTATUS")
	for _, m := range l.Data {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			m.ID, formato.FormatarData(m.DataVencimento), m.Descricao,
			formato.FormatarMoeda(m.Valor), formato.FormatarMoeda(m.ValorCorrigido), m.DiasAtraso, m.Status)
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\t%s\t\t\n", formato.FormatarMoeda(l.Totais.ValorTotal), formato.FormatarMoeda(l.Totais.TotalCorrigido))
	fmt.Fprintf(tw, "\t\tEM ABERTO\t%s\t\t\t\n", formato.FormatarMoeda(l.Totais.ValorEmAberto))
	fmt.Fprintf(tw, "\t\tQUITADO\t%s\t\t\t\n", formato.FormatarMoeda(l.Totais.ValorQuitado))
	return tw.Flush()
}

func baixar(ctx context.Context, p *console.PainelMovimentacoes, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("baixar", flag.ContinueOnError)
	id := fs.Uint("id", 0, "ID da movimentação")
	data := fs.String("data", "", "data do pagamento (padrão: hoje)")
	valor := fs.String("valor", "", "valor efetivo, ex.: 1.234,56 (padrão: valor corrigido)")
	caminho := fs.String("comprovante", "", "arquivo pdf, jpg ou png")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return errors.New("informe -id")
	}

	b := movimentacao.BaixaMovimentacao{Pago: true}
	if *data != "" {
		d, err := formato.ParseData(*data)
		if err != nil {
			return fmt.Errorf("data inválida: %w", err)
		}
		b.DataPagamento = &d
	}
	if *valor != "" {
		v, err := formato.ParseMoeda(*valor)
		if err != nil {
			return fmt.Errorf("valor inválido: %w", err)
		}
		b.ValorEfetivo = &v
	}
	var arquivo *console.Arquivo
	if *caminho != "" {
		conteudo, err := os.ReadFile(*caminho)
		if err != nil {
			return fmt.Errorf("ler comprovante: %w", err)
		}
		arquivo = &console.Arquivo{Nome: filepath.Base(*caminho), Conteudo: conteudo}
	}

	res, err := p.Baixar(ctx, *id, b, arquivo)
	if err != nil {
		return err
	}
	m := res.Movimentacao
	fmt.Fprintf(out, "Movimentação %d: %s em %s, valor %s\n", m.ID, m.Status,
		formato.FormatarData(*m.DataPagamento), formato.FormatarMoedaComSimbolo(*m.ValorEfetivo))
	if res.ComprovanteURL != "" {
		fmt.Fprintln(out, "Comprovante:", res.ComprovanteURL)
	}
	return nil
}

func pessoas(ctx context.Context, cli *cliente.Cliente, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pessoas", flag.ContinueOnError)
	papel := fs.String("papel", "", "cliente, parceiro ou socio")
	termo := fs.String("busca", "", "parte do nome ou documento")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := contrato.ParsePapel(*papel)
	if err != nil {
		return err
	}
	b := busca.Novo(func(ctx context.Context, termo string) ([]string, error) {
		ps, err := cli.BuscarPessoas(ctx, p, termo)
		if err != nil {
			return nil, err
		}
		linhas := make([]string, 0, len(ps))
		for _, x := range ps {
			linhas = append(linhas, fmt.Sprintf("%d\t%s\t%s", x.ID, x.Nome, x.Documento))
		}
		return linhas, nil
	}, nil)
	linhas, err := b.Agora(ctx, *termo)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tDOCUMENTO")
	for _, l := range linhas {
		fmt.Fprintln(tw, l)
	}
	return tw.Flush()
}
