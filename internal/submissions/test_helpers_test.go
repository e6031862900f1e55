package submissions

import (
	"context"
	"errors"
	"time"

	"cardrequest-backend/internal/queue"
)

const (
	validCNPJ = "11.222.333/0001-81"
	validCPF  = "529.982.247-25"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 17, 14, 30, 2, 0, time.Local)
}

func validPayload() Payload {
	return Payload{
		Empresa: Company{
			RazaoSocial:       "Padaria Pão & Cia Ltda",
			NomeFantasia:      "Pão & Cia",
			CNPJ:              validCNPJ,
			Ramo:              "Comércio varejista de pães",
			FaturamentoMensal: Float(100000),
			QtdFuncionarios:   Int(12),
			Site:              "https://paoecia.example",
		},
		Responsavel: Responsible{
			Nome:     "Maria Souza",
			Email:    "maria@paoecia.example",
			Telefone: "(11) 98765-4321",
			CPF:      validCPF,
			Cargo:    "Sócia",
		},
		Solicitacao: CardRequest{
			Limite:       Float(20000),
			QtdeCartoes:  Int(3),
			Vencimento:   Int(10),
			AdesaoPontos: true,
		},
		Consentimento: Consent{Aceite: true},
	}
}

type failingRepo struct {
	err error
}

func (f failingRepo) Create(ctx context.Context, sub Submission) (int64, error) { return 0, f.err }
func (f failingRepo) List(ctx context.Context) ([]Summary, error)                 { return nil, f.err }
func (f failingRepo) GetByID(ctx context.Context, id int64) (Submission, error) {
	return Submission{}, f.err
}

type failingQueue struct{}

func (failingQueue) Send(ctx context.Context, msg queue.Message) error {
	return errors.New("queue unavailable")
}
