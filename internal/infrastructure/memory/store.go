// Package memory implementa los puertos de persistencia en memoria del proceso.
// Sirve para STORAGE_DRIVER=memory y para las pruebas de casos de uso.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

type productRecord struct {
	product entity.Product
	seq     int64
}

type movementRecord struct {
	movement entity.Movement
	seq      int64
}

// Store guarda las tres colecciones (products, movements, app_users) con un único candado.
type Store struct {
	mu        sync.RWMutex
	products  map[string]*productRecord
	movements map[string]*movementRecord
	users     map[string]*entity.User
	seq       int64
	now       func() time.Time
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]*productRecord),
		movements: make(map[string]*movementRecord),
		users:     make(map[string]*entity.User),
		now:       time.Now,
	}
}

// SetClock reemplaza el reloj que asigna fechas a los movimientos.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// snapshot copia el estado para poder restaurarlo si una transacción falla.
// save y restore asumen que el llamador tiene s.mu en escritura.
type snapshot struct {
	products  map[string]productRecord
	movements map[string]movementRecord
	seq       int64
}

func (s *Store) save() snapshot {
	snap := snapshot{
		products:  make(map[string]productRecord, len(s.products)),
		movements: make(map[string]movementRecord, len(s.movements)),
		seq:       s.seq,
	}
	for id, r := range s.products {
		snap.products[id] = *r
	}
	for id, r := range s.movements {
		snap.movements[id] = *r
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = make(map[string]*productRecord, len(snap.products))
	for id, r := range snap.products {
		r := r
		s.products[id] = &r
	}
	s.movements = make(map[string]*movementRecord, len(snap.movements))
	for id, r := range snap.movements {
		r := r
		s.movements[id] = &r
	}
	s.seq = snap.seq
}
