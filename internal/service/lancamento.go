package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"moneyapi/internal/model"
	"moneyapi/internal/report"
	"moneyapi/internal/repository"
	"moneyapi/internal/storage"
)

var (
	// ErrInvalidArgument is returned when an update targets an entry that does not exist.
	ErrInvalidArgument = errors.New("lancamento does not exist")
	// ErrPessoaInexistenteOuInativa is returned when an entry points at an unknown or inactive person.
	ErrPessoaInexistenteOuInativa = errors.New("pessoa inexistente ou inativa")
)

// LancamentoService holds the business rules for financial entries.
type LancamentoService interface {
	// Buscar returns the entry with a download URL for its attachment, if any.
	Buscar(ctx context.Context, codigo int64) (*model.Lancamento, error)

	// Salvar validates the owner, inserts the entry and then confirms its attachment.
	Salvar(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error)

	// Atualizar replaces every field of the entry identified by codigo.
	Atualizar(ctx context.Context, codigo int64, l *model.Lancamento) (*model.Lancamento, error)

	// UploadAnexo stores a temporary attachment and returns its name and download URL.
	UploadAnexo(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Anexo, error)

	// RelatorioPorPessoa renders the per-person totals of [inicio, fim] as a PDF.
	RelatorioPorPessoa(ctx context.Context, inicio, fim model.Date) ([]byte, error)
}

type lancamentoService struct {
	lancamentos repository.LancamentoRepository
	pessoas     repository.PessoaRepository
	anexos      *storage.Attachments
	relatorios  report.Generator
}

// NewLancamentoService constructs a new LancamentoService.
func NewLancamentoService(
	lancamentos repository.LancamentoRepository,
	pessoas repository.PessoaRepository,
	anexos *storage.Attachments,
	relatorios report.Generator,
) LancamentoService {
	return &lancamentoService{
		lancamentos: lancamentos,
		pessoas:     pessoas,
		anexos:      anexos,
		relatorios:  relatorios,
	}
}

func (s *lancamentoService) Buscar(ctx context.Context, codigo int64) (*model.Lancamento, error) {
	l, err := s.lancamentos.FindByID(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if l.Anexo != "" {
		u, err := s.anexos.URL(ctx, l.Anexo)
		if err != nil {
			return nil, fmt.Errorf("presign anexo: %w", err)
		}
		l.URLAnexo = u
	}
	return l, nil
}

func (s *lancamentoService) Salvar(ctx context.Context, l *model.Lancamento) (*model.Lancamento, error) {
	if err := s.validarPessoa(ctx, l.Pessoa.Codigo); err != nil {
		return nil, err
	}
	out, err := s.lancamentos.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	if l.Anexo != "" {
		if err := s.anexos.Confirm(ctx, l.Anexo); err != nil {
			// Rollback: the entry must not reference an object that is about to expire
			if delErr := s.lancamentos.Delete(ctx, out.Codigo); delErr != nil {
				return nil, fmt.Errorf("%v; rollback delete failed: %v", err, delErr)
			}
			return nil, err
		}
	}
	return out, nil
}

func (s *lancamentoService) Atualizar(ctx context.Context, codigo int64, l *model.Lancamento) (*model.Lancamento, error) {
	salvo, err := s.lancamentos.FindByID(ctx, codigo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidArgument
		}
		return nil, err
	}

	if l.Pessoa.Codigo != salvo.Pessoa.Codigo {
		if err := s.validarPessoa(ctx, l.Pessoa.Codigo); err != nil {
			return nil, err
		}
	}

	l.Codigo = codigo
	var out *model.Lancamento
	err = s.anexos.Replace(ctx, salvo.Anexo, l.Anexo, func() error {
		var err error
		out, err = s.lancamentos.Update(ctx, l)
		return err
	})
	if err != nil {
		// deleted between the read and the write
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidArgument
		}
		return nil, err
	}
	return out, nil
}

func (s *lancamentoService) UploadAnexo(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Anexo, error) {
	nome, err := s.anexos.SaveTemporary(ctx, r, originalFilename, contentType, size)
	if err != nil {
		return nil, err
	}

	u, err := s.anexos.URL(ctx, nome)
	if err != nil {
		// Rollback: nothing can reference an attachment the client cannot see
		if delErr := s.anexos.Remove(ctx, nome); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}
	return &model.Anexo{Nome: nome, URL: u}, nil
}

func (s *lancamentoService) RelatorioPorPessoa(ctx context.Context, inicio, fim model.Date) ([]byte, error) {
	dados, err := s.lancamentos.StatsByPessoa(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	return s.relatorios.PorPessoa(ctx, dados, inicio, fim)
}

func (s *lancamentoService) validarPessoa(ctx context.Context, codigo int64) error {
	p, err := s.pessoas.FindByID(ctx, codigo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPessoaInexistenteOuInativa
		}
		return err
	}
	if p.Inativa() {
		return ErrPessoaInexistenteOuInativa
	}
	return nil
}
