package performance

import "context"

type Repository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	List(ctx context.Context, filter *ListReviewsFilter) ([]Review, int, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error
}
