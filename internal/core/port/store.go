package port

// Store groups the persistence ports backed by the same storage.
type Store interface {
	TaskStore
	UserStore
}
