package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// ApplicationRepository defines persistence for rental applications.
type ApplicationRepository interface {
	// List returns applications by submission time, newest first.
	List(ctx context.Context, filter ApplicationFilter) ([]*domain.Application, error)
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
}
