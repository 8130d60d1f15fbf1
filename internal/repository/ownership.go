package repository

import "context"

// Ownership resolves, for an entity id, the user who transitively owns it:
// task -> user directly, record/tag -> task -> user, task_tag -> task -> user.
// Each lookup returns domain.ErrNotFound when the entity does not exist;
// there is no default owner. Results are computed per call, never cached.
type Ownership interface {
	OwnerOfTask(ctx context.Context, id int64) (int64, error)
	OwnerOfRecord(ctx context.Context, id int64) (int64, error)
	OwnerOfTag(ctx context.Context, id int64) (int64, error)
	OwnerOfTaskTag(ctx context.Context, id int64) (int64, error)
}
