package service

import (
	"context"
	"fmt"

	"wayfinder/internal/domain"
)

// ownerFunc is one resolution function of the ownership resolver.
type ownerFunc func(ctx context.Context, id int64) (int64, error)

// authorize enforces the access contract shared by every protected
// operation: resolve the owner first (a missing entity surfaces as
// domain.ErrNotFound before ownership is even considered), then require the
// caller to be that owner. The ordering keeps existence leakage consistent
// across create/read/update/delete paths.
func authorize(ctx context.Context, resolve ownerFunc, id, callerID int64) error {
	ownerID, err := resolve(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != callerID {
		return domain.ErrForbidden
	}
	return nil
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, domain.ErrNotFound)
}

func forbidden(entity string) error {
	return fmt.Errorf("%w to %s", domain.ErrForbidden, entity)
}
