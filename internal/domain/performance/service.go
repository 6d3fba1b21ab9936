package performance

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateReviewRequest) (*ReviewResponse, error)
	Get(ctx context.Context, id string) (*ReviewResponse, error)
	List(ctx context.Context, filter *ListReviewsFilter) ([]ReviewResponse, int, error)
	Update(ctx context.Context, id string, req *UpdateReviewRequest) (*ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}
