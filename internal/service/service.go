package service

import (
	"github.com/carson-networks/operacoes-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Operacao *OperacaoService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Operacao: NewOperacaoService(store),
	}
}
