package memory

import (
	"context"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/repository"
)

type paymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{store: store}
}

func (r *paymentRepository) Add(ctx context.Context, payment *domain.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Не проверяется ни существование записи, ни ее неоплаченность
	r.store.payments = append(r.store.payments, *payment)
	return nil
}

func (r *paymentRepository) GetByNumber(ctx context.Context, number string) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.payments {
		if r.store.payments[i].PaymentNumber == number {
			payment := r.store.payments[i]
			return &payment, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *paymentRepository) GetByRecordNumber(ctx context.Context, recordNumber string) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.payments {
		if r.store.payments[i].RecordNumber == recordNumber {
			payment := r.store.payments[i]
			return &payment, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *paymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := make([]*domain.Payment, 0, len(r.store.payments))
	for i := range r.store.payments {
		payment := r.store.payments[i]
		payments = append(payments, &payment)
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.payments), nil
}
