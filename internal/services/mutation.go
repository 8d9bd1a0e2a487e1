package services

import (
	"context"

	"blogly/internal/repositories"
	"blogly/internal/validation"
)

// runner is the create/update/delete shape shared by every entity service:
// look up what the request refers to, validate the submission, then apply
// the change, all inside one transaction.
type runner struct {
	uow      repositories.UnitOfWork
	validate *validation.Validator
}

// mutate runs lookup, validation of req and apply in one transaction. lookup
// may be nil; req may be nil for operations without a submission.
func (r runner) mutate(ctx context.Context, req any, lookup, apply func(repos repositories.Repositories) error) error {
	if lookup == nil && req != nil {
		// Nothing to look up: fail fast before opening a transaction.
		if err := r.validate.Struct(req); err != nil {
			return err
		}
		req = nil
	}
	return r.uow.Do(ctx, func(repos repositories.Repositories) error {
		if lookup != nil {
			if err := lookup(repos); err != nil {
				return err
			}
		}
		if req != nil {
			if err := r.validate.Struct(req); err != nil {
				return err
			}
		}
		return apply(repos)
	})
}

// read runs fn in a transaction and returns its value.
func read[T any](ctx context.Context, uow repositories.UnitOfWork, fn func(repos repositories.Repositories) (T, error)) (T, error) {
	var out T
	err := uow.Do(ctx, func(repos repositories.Repositories) error {
		var err error
		out, err = fn(repos)
		return err
	})
	return out, err
}
