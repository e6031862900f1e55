package submissions

import (
	"cardrequest-backend/internal/validation"
)

// Validate returns every field violation of p. An empty result means p can be submitted.
func Validate(p Payload) validation.Violations {
	v := validation.Violations{}

	validation.Required("empresa.razao_social", p.Empresa.RazaoSocial, v)
	validation.CNPJ("empresa.cnpj", p.Empresa.CNPJ, v)
	validation.Required("empresa.ramo", p.Empresa.Ramo, v)
	if !p.Empresa.FaturamentoMensal.Set {
		v.Add("empresa.faturamento_mensal", validation.CodeRequired)
	} else {
		validation.NonNegative("empresa.faturamento_mensal", p.Empresa.FaturamentoMensal.Value, v)
	}
	if p.Empresa.QtdFuncionarios.Set {
		validation.NonNegative("empresa.qtd_func", float64(p.Empresa.QtdFuncionarios.Value), v)
	}

	validation.Required("responsavel.nome", p.Responsavel.Nome, v)
	validation.Required("responsavel.email", p.Responsavel.Email, v)
	validation.Email("responsavel.email", p.Responsavel.Email, v)
	validation.Required("responsavel.telefone", p.Responsavel.Telefone, v)
	validation.Phone("responsavel.telefone", p.Responsavel.Telefone, v)
	validation.CPF("responsavel.cpf", p.Responsavel.CPF, v)
	validation.Required("responsavel.cargo", p.Responsavel.Cargo, v)

	if !p.Solicitacao.Limite.Set {
		v.Add("solicitacao.limite", validation.CodeRequired)
	} else {
		validation.NonNegative("solicitacao.limite", p.Solicitacao.Limite.Value, v)
	}
	if !p.Solicitacao.QtdeCartoes.Set {
		v.Add("solicitacao.qtde_cartoes", validation.CodeRequired)
	} else {
		validation.PositiveFloat("solicitacao.qtde_cartoes", float64(p.Solicitacao.QtdeCartoes.Value), v)
	}
	if !p.Solicitacao.Vencimento.Set {
		v.Add("solicitacao.vencimento", validation.CodeRequired)
	} else {
		validation.OneOf("solicitacao.vencimento", int(p.Solicitacao.Vencimento.Value), DueDays, v)
	}

	validation.Accepted("consentimento.aceite", p.Consentimento.Aceite, v)
	return v
}
