package session

import (
	"sync"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// Store процессное хранилище черновиков бронирований
//
// Один черновик на сессию (заголовок X-Session-ID). Черновик живет до явного
// Reset и не переживает перезапуск процесса - это осознанное решение: каждый
// шаг заново проверяет свои предусловия и при потере данных возвращает
// пользователя на начало потока.
//
// Update атомарен относительно собственного read-merge-write: слияние
// выполняется под мьютексом, поэтому два почти одновременных вызова не
// теряют поля друг друга.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

type sessionState struct {
	draft         domain.BookingDraft
	termsAccepted bool
}

// NewStore создает пустое хранилище сессий
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*sessionState),
	}
}

// Get возвращает снапшот черновика и флаг принятия условий
// Для неизвестной сессии возвращается пустой черновик
func (s *Store) Get(sessionID string) (domain.BookingDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return domain.BookingDraft{}, false
	}
	return state.draft, state.termsAccepted
}

// Update сливает частичное обновление в черновик сессии и возвращает
// получившийся снапшот. Поля, не указанные в patch, не затрагиваются.
func (s *Store) Update(sessionID string, patch domain.DraftPatch) domain.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ensure(sessionID)
	patch.Apply(&state.draft)
	return state.draft
}

// SetTermsAccepted выставляет флаг принятия условий независимо от Update
func (s *Store) SetTermsAccepted(sessionID string, accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(sessionID).termsAccepted = accepted
}

// Reset возвращает черновик сессии к начальным значениям
// и сбрасывает флаг принятия условий
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	state.draft = domain.BookingDraft{}
	state.termsAccepted = false
}

// ensure вызывается только под заблокированным s.mu
func (s *Store) ensure(sessionID string) *sessionState {
	state, ok := s.sessions[sessionID]
	if !ok {
		state = &sessionState{}
		s.sessions[sessionID] = state
	}
	return state
}
