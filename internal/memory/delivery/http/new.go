package http

import (
	"personal-ai-partner/internal/memory"
	"personal-ai-partner/pkg/log"
)

// Handler is the public interface for the memory HTTP delivery layer.
type Handler interface {
	ListKnowledge(c interface{})
	AddKnowledge(c interface{})
	ListPurchases(c interface{})
	AddPurchase(c interface{})
}

type handler struct {
	l  log.Logger
	uc memory.UseCase
}

// New creates a new HTTP handler for the memory domain.
func New(l log.Logger, uc memory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
