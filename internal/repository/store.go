package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	defaultTxAttempts = 3
	defaultTxBackoff  = 50 * time.Millisecond
)

// Repositories bundles every repository over one connection or transaction
type Repositories struct {
	Requests    AssignmentRequestRepositoryInterface
	Approvals   ApprovalRecordRepositoryInterface
	States      WorkflowStateRepositoryInterface
	Allocations CapacityAllocationRepositoryInterface
	History     AssignmentHistoryRepositoryInterface
}

// NewRepositories builds the repository set over db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Requests:    NewAssignmentRequestRepository(db),
		Approvals:   NewApprovalRecordRepository(db),
		States:      NewWorkflowStateRepository(db),
		Allocations: NewCapacityAllocationRepository(db),
		History:     NewAssignmentHistoryRepository(db),
	}
}

// Store runs units of work against Postgres
type Store struct {
	db          *gorm.DB
	maxAttempts int
	baseBackoff time.Duration
}

var _ StoreInterface = (*Store)(nil)

// NewStore creates a store; maxAttempts <= 0 uses the default
func NewStore(db *gorm.DB, maxAttempts int) *Store {
	if maxAttempts <= 0 {
		maxAttempts = defaultTxAttempts
	}
	return &Store{db: db, maxAttempts: maxAttempts, baseBackoff: defaultTxBackoff}
}

// Repositories returns non-transactional repositories bound to ctx
func (s *Store) Repositories(ctx context.Context) *Repositories {
	return NewRepositories(s.db.WithContext(ctx))
}

// Transaction runs fn in a single database transaction. Serialization failures
// and deadlocks are retried with exponential backoff; any other error rolls back
// and is returned unchanged.
func (s *Store) Transaction(ctx context.Context, fn func(repos *Repositories) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.baseBackoff
	policy.MaxElapsedTime = 0

	operation := func() error {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewRepositories(tx))
		})
		if err != nil && !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(s.maxAttempts-1)), ctx))
}

// IsRetryable reports whether err is a transient Postgres conflict
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
	}
	return false
}
