package submissions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cardrequest-backend/internal/validation"
)

// NewSubmission builds the row for a validated payload created at now.
// Tax ids keep digits only. Revenue, limit and card count are NULL when absent or zero,
// the employee count only when absent.
func NewSubmission(p Payload, now time.Time) (Submission, error) {
	doc, err := encodePayload(p)
	if err != nil {
		return Submission{}, err
	}
	status := strings.TrimSpace(p.Status)
	if status == "" {
		status = StatusReceived
	}
	return Submission{
		CreatedAt:               now,
		RazaoSocial:             strings.TrimSpace(p.Empresa.RazaoSocial),
		NomeFantasia:            strings.TrimSpace(p.Empresa.NomeFantasia),
		CNPJ:                    validation.DigitsOnly(p.Empresa.CNPJ),
		Ramo:                    strings.TrimSpace(p.Empresa.Ramo),
		FaturamentoMensal:       nonZeroFloat(p.Empresa.FaturamentoMensal),
		QtdFuncionarios:         setInt(p.Empresa.QtdFuncionarios),
		ContatoNome:             strings.TrimSpace(p.Responsavel.Nome),
		ContatoEmail:            strings.TrimSpace(p.Responsavel.Email),
		ContatoTelefone:         strings.TrimSpace(p.Responsavel.Telefone),
		ContatoCPF:              validation.DigitsOnly(p.Responsavel.CPF),
		LimitePretendido:        nonZeroFloat(p.Solicitacao.Limite),
		QtdeCartoes:             nonZeroInt(p.Solicitacao.QtdeCartoes),
		VencimentoFatura:        p.Solicitacao.Vencimento.Value,
		AdesaoPontos:            p.Solicitacao.AdesaoPontos,
		ParticipaCredenciamento: p.Solicitacao.ParticipaCredenciamento,
		AceitarTermos:           p.Consentimento.Aceite,
		Status:                  status,
		DadosJSON:               doc,
	}, nil
}

// encodePayload serializes p without HTML escaping so accents and symbols stay readable.
func encodePayload(p Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func nonZeroFloat(o OptionalFloat) *float64 {
	if !o.Set || o.Value == 0 {
		return nil
	}
	v := o.Value
	return &v
}

func nonZeroInt(o OptionalInt) *int64 {
	if !o.Set || o.Value == 0 {
		return nil
	}
	v := o.Value
	return &v
}

func setInt(o OptionalInt) *int64 {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}
