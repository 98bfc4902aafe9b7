package cards

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// Repository delivers the raw card dataset.
type Repository interface {
	GetAll(ctx context.Context) ([]Record, error)
	GetEnums(ctx context.Context) (map[string]map[string]int, error)
}
