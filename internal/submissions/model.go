package submissions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// StatusReceived is the status every submission starts with.
const StatusReceived = "Recebida"

// TimestampLayout is how criado_em and aceito_em are written: local time, seconds precision.
const TimestampLayout = "2006-01-02T15:04:05"

// DueDays are the invoice due days a request may pick.
var DueDays = []int{1, 5, 10, 15, 20, 25}

// OptionalFloat is a form number that may be absent. It accepts a JSON number,
// a numeric string, an empty string or null.
type OptionalFloat struct {
	Value float64
	Set   bool
}

// Float returns a set OptionalFloat.
func Float(v float64) OptionalFloat { return OptionalFloat{Value: v, Set: true} }

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil {
		return err
	}
	*o = OptionalFloat{Value: v, Set: ok}
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// OptionalInt is the integer counterpart of OptionalFloat. Fractional values are rejected.
type OptionalInt struct {
	Value int64
	Set   bool
}

// Int returns a set OptionalInt.
func Int(v int64) OptionalInt { return OptionalInt{Value: v, Set: true} }

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil {
		return err
	}
	if ok && (v != math.Trunc(v) || math.Abs(v) > 1<<53) {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*o = OptionalInt{Value: int64(v), Set: ok}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func parseNumber(data []byte) (float64, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}
	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return 0, false, nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("invalid number %s", data)
	}
	return v, true, nil
}

// Company holds the "empresa" section of the form.
type Company struct {
	RazaoSocial       string        `json:"razao_social"`
	NomeFantasia      string        `json:"nome_fantasia"`
	CNPJ              string        `json:"cnpj"`
	Ramo              string        `json:"ramo"`
	FaturamentoMensal OptionalFloat `json:"faturamento_mensal"`
	QtdFuncionarios   OptionalInt   `json:"qtd_func"`
	Site              string        `json:"site"`
}

// Responsible holds the "responsavel" section.
type Responsible struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	CPF      string `json:"cpf"`
	Cargo    string `json:"cargo"`
}

// CardRequest holds the "solicitacao" section.
type CardRequest struct {
	Limite                  OptionalFloat `json:"limite"`
	QtdeCartoes             OptionalInt   `json:"qtde_cartoes"`
	Vencimento              OptionalInt   `json:"vencimento"`
	AdesaoPontos            bool          `json:"adesao_pontos"`
	ParticipaCredenciamento bool          `json:"participa_credenciamento"`
}

// Documents holds the stored path of each uploaded document, nil when none was sent.
type Documents struct {
	ContratoSocial      *string `json:"contrato_social"`
	CartaoCNPJ          *string `json:"cartao_cnpj"`
	ComprovanteEndereco *string `json:"comprovante_endereco"`
	FaturamentoUltimos  *string `json:"faturamento_ultimos"`
}

// Consent holds the terms acceptance.
type Consent struct {
	Aceite   bool   `json:"aceite"`
	AceitoEm string `json:"aceito_em"`
}

// Meta describes who produced the payload.
type Meta struct {
	GeradoPor string `json:"gerado_por"`
	Versao    string `json:"versao"`
}

// Payload is the structured form submission. It is also the audit document stored in dados_json.
type Payload struct {
	ProtocoloPreview *string     `json:"protocolo_preview"`
	Empresa          Company     `json:"empresa"`
	Responsavel      Responsible `json:"responsavel"`
	Solicitacao      CardRequest `json:"solicitacao"`
	Documentos       Documents   `json:"documentos"`
	Consentimento    Consent     `json:"consentimento"`
	Status           string      `json:"status"`
	Meta             Meta        `json:"meta"`
}

// Submission is one persisted row of solicitacoes.
type Submission struct {
	ID                      int64
	CreatedAt               time.Time
	RazaoSocial             string
	NomeFantasia            string
	CNPJ                    string
	Ramo                    string
	FaturamentoMensal       *float64
	QtdFuncionarios         *int64
	ContatoNome             string
	ContatoEmail            string
	ContatoTelefone         string
	ContatoCPF              string
	LimitePretendido        *float64
	QtdeCartoes             *int64
	VencimentoFatura        int64
	AdesaoPontos            bool
	ParticipaCredenciamento bool
	AceitarTermos           bool
	Status                  string
	DadosJSON               []byte
}

// Summary is the admin listing projection of a submission.
type Summary struct {
	Protocolo        int64    `json:"Protocolo"`
	CriadoEm         string   `json:"CriadoEm"`
	RazaoSocial      string   `json:"RazaoSocial"`
	CNPJ             string   `json:"CNPJ"`
	Contato          string   `json:"Contato"`
	Email            string   `json:"Email"`
	LimitePretendido *float64 `json:"LimitePretendido"`
	Status           string   `json:"Status"`
}
