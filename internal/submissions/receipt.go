package submissions

import (
	"encoding/json"

	"cardrequest-backend/internal/money"
	"cardrequest-backend/internal/receipt"
	"cardrequest-backend/internal/validation"
)

// ReceiptEntries is the fixed label set printed on a submission receipt.
func ReceiptEntries(sub Submission, protocol string) []receipt.Entry {
	return []receipt.Entry{
		{Label: "Protocolo", Value: protocol},
		{Label: "Data/Hora", Value: sub.CreatedAt.Format("02/01/2006 15:04:05")},
		{Label: "Razão Social", Value: sub.RazaoSocial},
		{Label: "CNPJ", Value: validation.FormatCNPJ(sub.CNPJ)},
		{Label: "Responsável", Value: sub.ContatoNome},
		{Label: "E-mail", Value: sub.ContatoEmail},
		{Label: "Telefone", Value: sub.ContatoTelefone},
		{Label: "Limite Pretendido", Value: receiptLimit(sub)},
		{Label: "Qtd Cartões", Value: optionalInt(sub.QtdeCartoes)},
		{Label: "Vencimento", Value: sub.VencimentoFatura},
		{Label: "Adesão Pontos", Value: yesNo(sub.AdesaoPontos)},
		{Label: "Participa Credenciamento", Value: yesNo(sub.ParticipaCredenciamento)},
	}
}

// RenderReceipt renders the receipt document and its download name.
func RenderReceipt(sub Submission) (fileName string, body []byte) {
	protocol := Protocol(sub.CreatedAt, sub.ID)
	return receipt.FileName(protocol), receipt.Render(ReceiptEntries(sub, protocol))
}

// receiptLimit prints the requested limit. A limit entered as 0 is stored as NULL,
// so the audit payload decides between "R$ 0,00" and blank.
func receiptLimit(sub Submission) string {
	if sub.LimitePretendido != nil {
		return money.FormatAmount(*sub.LimitePretendido)
	}
	var doc struct {
		Solicitacao struct {
			Limite OptionalFloat `json:"limite"`
		} `json:"solicitacao"`
	}
	if len(sub.DadosJSON) == 0 || json.Unmarshal(sub.DadosJSON, &doc) != nil || !doc.Solicitacao.Limite.Set {
		return ""
	}
	return money.FormatAmount(doc.Solicitacao.Limite.Value)
}

func optionalInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
