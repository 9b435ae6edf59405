package repositories

// RepositoryProvider holds the persistence dependencies needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork UnitOfWork
}
