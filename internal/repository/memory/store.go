package memory

import (
	"sync"

	"github.com/smartpark/garage/internal/domain"
)

// Store - единственный источник истины: четыре упорядоченные коллекции
// одного сеанса работы гаража. Создается один раз при старте процесса
// и передается по ссылке всем репозиториям; состояние живет до
// перезапуска. Порядок вставки сохраняется и значим для отображения.
//
// Один мьютекс на все коллекции: каждая мутация атомарна,
// что воспроизводит однопоточную модель исходной системы
// под конкурентным net/http.
type Store struct {
	mu       sync.RWMutex
	services []domain.Service
	cars     []domain.Car
	records  []domain.ServiceRecord
	payments []domain.Payment
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{}
}
