package verification

import (
	"sync"

	"github.com/frontandrew/drivesure/internal/domain"
)

// State - состояние сканера инспектора
type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"
	StateSuccess  State = "success"
	StateError    State = "error"
)

// Scanner - конечный автомат проверки QR-кода
// idle -> scanning -> success | error, Reset возвращает в idle из любого состояния
type Scanner struct {
	mu     sync.Mutex
	state  State
	result *domain.QRPayload
	err    error
}

// NewScanner создает сканер в состоянии idle
func NewScanner() *Scanner {
	return &Scanner{state: StateIdle}
}

// Start переводит сканер в scanning, предыдущий результат сбрасывается
func (s *Scanner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateScanning
	s.result = nil
	s.err = nil
}

// Complete обрабатывает расшифрованный текст QR-кода
func (s *Scanner) Complete(text string) (*domain.QRPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateScanning {
		return nil, domain.ErrScannerNotScanning
	}

	payload, err := domain.ParseQRPayload(text)
	if err != nil {
		s.state = StateError
		s.err = err
		return nil, err
	}

	s.state = StateSuccess
	s.result = payload
	return payload, nil
}

// Reset возвращает сканер в idle и очищает результат
func (s *Scanner) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.result = nil
	s.err = nil
}

// State возвращает текущее состояние
func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result возвращает результат последнего сканирования (nil, если его нет)
func (s *Scanner) Result() (*domain.QRPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}
