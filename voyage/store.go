package voyage

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Store holds the voyages of a file and swaps them on Reload.
type Store struct {
	file string

	lock    sync.RWMutex
	voyages Voyages
}

func NewStore(file string) (*Store, error) {
	vs, err := Load(file)
	if err != nil {
		return nil, err
	}
	return &Store{file: file, voyages: vs}, nil
}

// Reload reads the file again. On error the loaded voyages are kept.
func (s *Store) Reload() error {
	vs, err := Load(s.file)
	if err != nil {
		log.WithError(err).WithField("file", s.file).Warn("Voyages not reloaded")
		return err
	}

	s.lock.Lock()
	s.voyages = vs
	s.lock.Unlock()
	return nil
}

func (s *Store) Names() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.voyages.Names()
}

func (s *Store) Get(name string) (Voyage, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.voyages.Get(name)
}
