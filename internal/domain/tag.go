package domain

// Tag categorizes a task. A tag belongs to exactly one task; the ownership
// chain runs tag -> task -> user.
type Tag struct {
	ID     int64
	Name   string
	TaskID int64
}

// TaskTag links a task and a tag many-to-many. Both sides must resolve to
// the same owning user.
type TaskTag struct {
	ID     int64
	TaskID int64
	TagID  int64
}
