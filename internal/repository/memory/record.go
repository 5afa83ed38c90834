package memory

import (
	"context"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/repository"
)

type recordRepository struct {
	store *Store
}

func NewRecordRepository(store *Store) repository.RecordRepository {
	return &recordRepository{store: store}
}

func (r *recordRepository) Add(ctx context.Context, record *domain.ServiceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Внешние ссылки на Car/Service не проверяются -
	// соединения разрешают отсутствующую сущность как "не найдено"
	r.store.records = append(r.store.records, *record)
	return nil
}

func (r *recordRepository) GetByNumber(ctx context.Context, number string) (*domain.ServiceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.records {
		if r.store.records[i].RecordNumber == number {
			record := r.store.records[i]
			return &record, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *recordRepository) Update(ctx context.Context, number string, record *domain.ServiceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Заменяем первую совпавшую запись на месте, позиция сохраняется
	// Отсутствующий ключ - молчаливый no-op
	for i := range r.store.records {
		if r.store.records[i].RecordNumber == number {
			r.store.records[i] = *record
			return nil
		}
	}
	return nil
}

func (r *recordRepository) Delete(ctx context.Context, number string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Удаляем все совпадения (ожидаемая кратность 0 или 1)
	kept := r.store.records[:0]
	for _, record := range r.store.records {
		if record.RecordNumber != number {
			kept = append(kept, record)
		}
	}
	r.store.records = kept
	return nil
}

func (r *recordRepository) List(ctx context.Context) ([]*domain.ServiceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]*domain.ServiceRecord, 0, len(r.store.records))
	for i := range r.store.records {
		record := r.store.records[i]
		records = append(records, &record)
	}
	return records, nil
}

func (r *recordRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.records), nil
}
