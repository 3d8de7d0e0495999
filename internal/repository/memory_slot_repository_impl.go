package repository

import (
	"context"
	"sync"

	domainRepo "github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"
)

type memorySlotRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotRepository returns a process-local slot store. Nothing survives a restart.
func NewMemorySlotRepository() domainRepo.SlotRepository {
	return &memorySlotRepository{slots: make(map[string][]byte)}
}

func (r *memorySlotRepository) Read(ctx context.Context, slot string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.slots[slot]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (r *memorySlotRepository) Write(ctx context.Context, slot string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[slot] = append([]byte(nil), data...)
	return nil
}
