package repository

import "context"

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	Dispatches() DispatchRepository
	Notifications() NotificationRepository
	Accounts() AccountRepository
}

// TransactionManager runs a function inside a database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
