package repository

import "context"

// SlotRepository persists whole serialized documents under named slots.
// Read returns nil data and a nil error when the slot has never been written.
type SlotRepository interface {
	Read(ctx context.Context, slot string) ([]byte, error)
	Write(ctx context.Context, slot string, data []byte) error
}
