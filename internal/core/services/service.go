package services

import "context"

// Service is one use case of the application.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
