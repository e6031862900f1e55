package submissions

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const insertColumns = `criado_em, empresa_razao_social, empresa_nome_fantasia, cnpj, ramo_atividade,
	faturamento_mensal, qntd_funcionarios, contato_nome, contato_email, contato_telefone,
	contato_cpf, limite_pretendido, qtde_cartoes, vencimento_fatura, adesao_pontos,
	participa_credenciamento, aceitar_termos, status, dados_json`

const summaryQuery = `SELECT id, criado_em, empresa_razao_social, cnpj, contato_nome, contato_email,
	limite_pretendido, status
FROM solicitacoes
ORDER BY id DESC`

const selectColumns = `id, ` + insertColumns

// placeholders returns n bind markers; numbered renders $1..$n instead of ?.
func placeholders(n int, numbered bool) string {
	marks := make([]string, n)
	for i := range marks {
		if numbered {
			marks[i] = fmt.Sprintf("$%d", i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}

func insertArgs(sub Submission) []any {
	return []any{
		sub.CreatedAt.Format(TimestampLayout),
		sub.RazaoSocial,
		sub.NomeFantasia,
		sub.CNPJ,
		sub.Ramo,
		nullFloat(sub.FaturamentoMensal),
		nullInt(sub.QtdFuncionarios),
		sub.ContatoNome,
		sub.ContatoEmail,
		sub.ContatoTelefone,
		sub.ContatoCPF,
		nullFloat(sub.LimitePretendido),
		nullInt(sub.QtdeCartoes),
		sub.VencimentoFatura,
		boolToInt(sub.AdesaoPontos),
		boolToInt(sub.ParticipaCredenciamento),
		boolToInt(sub.AceitarTermos),
		sub.Status,
		string(sub.DadosJSON),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (Summary, error) {
	var (
		s        Summary
		criadoEm string
		razao    sql.NullString
		cnpj     sql.NullString
		nome     sql.NullString
		email    sql.NullString
		limite   sql.NullFloat64
		status   sql.NullString
	)
	if err := row.Scan(&s.Protocolo, &criadoEm, &razao, &cnpj, &nome, &email, &limite, &status); err != nil {
		return Summary{}, err
	}
	s.CriadoEm = displayTimestamp(criadoEm)
	s.RazaoSocial = razao.String
	s.CNPJ = cnpj.String
	s.Contato = nome.String
	s.Email = email.String
	s.LimitePretendido = floatPtr(limite)
	s.Status = status.String
	return s, nil
}

func scanSubmission(row rowScanner) (Submission, error) {
	var (
		sub                        Submission
		criadoEm                   string
		razao, fantasia, cnpj      sql.NullString
		ramo, nome, email, fone    sql.NullString
		cpf, status, dados         sql.NullString
		faturamento, limite        sql.NullFloat64
		funcionarios, cartoes, dia sql.NullInt64
		pontos, cred, termos       sql.NullInt64
	)
	err := row.Scan(&sub.ID, &criadoEm, &razao, &fantasia, &cnpj, &ramo,
		&faturamento, &funcionarios, &nome, &email, &fone,
		&cpf, &limite, &cartoes, &dia, &pontos,
		&cred, &termos, &status, &dados)
	if err != nil {
		return Submission{}, err
	}
	created, err := time.ParseInLocation(TimestampLayout, criadoEm, time.Local)
	if err != nil {
		return Submission{}, fmt.Errorf("parse criado_em %q: %w", criadoEm, err)
	}
	sub.CreatedAt = created
	sub.RazaoSocial = razao.String
	sub.NomeFantasia = fantasia.String
	sub.CNPJ = cnpj.String
	sub.Ramo = ramo.String
	sub.FaturamentoMensal = floatPtr(faturamento)
	sub.QtdFuncionarios = intPtr(funcionarios)
	sub.ContatoNome = nome.String
	sub.ContatoEmail = email.String
	sub.ContatoTelefone = fone.String
	sub.ContatoCPF = cpf.String
	sub.LimitePretendido = floatPtr(limite)
	sub.QtdeCartoes = intPtr(cartoes)
	sub.VencimentoFatura = dia.Int64
	sub.AdesaoPontos = pontos.Int64 != 0
	sub.ParticipaCredenciamento = cred.Int64 != 0
	sub.AceitarTermos = termos.Int64 != 0
	sub.Status = status.String
	if dados.Valid {
		sub.DadosJSON = []byte(dados.String)
	}
	return sub, nil
}

// displayTimestamp renders a stored criado_em as "YYYY-MM-DD HH:MM:SS", or returns it unchanged.
func displayTimestamp(raw string) string {
	t, err := time.ParseInLocation(TimestampLayout, raw, time.Local)
	if err != nil {
		return raw
	}
	return t.Format(time.DateTime)
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
