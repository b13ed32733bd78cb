package domain

import "context"

// TxRepositories are repositories bound to a single transaction. Row locks
// acquired through them are held until the transaction resolves.
type TxRepositories struct {
	Users         UserRepository
	Lectures      LectureRepository
	Registrations RegistrationRepository
}

// Transactor runs fn within one atomic transaction. If fn returns an
// error the transaction rolls back and no partial state is visible; the
// error is returned unmodified. Commit failures are mapped to the domain
// error taxonomy (ErrDuplicateRegistration, ErrTxConflict,
// ErrStoreUnavailable) by the implementation.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(TxRepositories) error) error
}
