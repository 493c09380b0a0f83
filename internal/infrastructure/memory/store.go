// Package memory implementa los puertos de persistencia en memoria.
// Sirve para DB_DRIVER=memory (demos locales sin PostgreSQL) y como doble en los tests.
// Las transacciones se serializan y se revierten restaurando una copia del estado;
// el resto de operaciones espera a que termine la transacción en curso.
package memory

import (
	"maps"
	"sync"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu   sync.Mutex // protege los datos
	txMu sync.Mutex // serializa las transacciones

	licenses   map[string]entity.License
	licenseIDs []string // orden de inserción
	devices    map[string][]string

	products   map[string]entity.Product
	productIDs []string

	orders   map[string]entity.Order
	orderIDs []string

	sales      []entity.SalesRecord
	botLogs    []entity.BotLog
	therraLogs []entity.TherraLog
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		licenses: map[string]entity.License{},
		devices:  map[string][]string{},
		products: map[string]entity.Product{},
		orders:   map[string]entity.Order{},
	}
}

// snapshot copia el estado mutable para poder revertir una transacción.
func (s *Store) snapshot() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	devices := make(map[string][]string, len(s.devices))
	for k, v := range s.devices {
		devices[k] = append([]string(nil), v...)
	}
	return &Store{
		licenses:   maps.Clone(s.licenses),
		licenseIDs: append([]string(nil), s.licenseIDs...),
		devices:    devices,
		products:   maps.Clone(s.products),
		productIDs: append([]string(nil), s.productIDs...),
		orders:     maps.Clone(s.orders),
		orderIDs:   append([]string(nil), s.orderIDs...),
		sales:      append([]entity.SalesRecord(nil), s.sales...),
		botLogs:    append([]entity.BotLog(nil), s.botLogs...),
		therraLogs: append([]entity.TherraLog(nil), s.therraLogs...),
	}
}

func (s *Store) restore(snap *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.licenses, s.licenseIDs, s.devices = snap.licenses, snap.licenseIDs, snap.devices
	s.products, s.productIDs = snap.products, snap.productIDs
	s.orders, s.orderIDs = snap.orders, snap.orderIDs
	s.sales, s.botLogs, s.therraLogs = snap.sales, snap.botLogs, snap.therraLogs
}

// lock toma el mutex de datos. Fuera de una transacción toma antes txMu, así
// ninguna escritura cae entre la copia y la restauración de un rollback.
func (s *Store) lock(inTx bool) func() {
	if !inTx {
		s.txMu.Lock()
	}
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		if !inTx {
			s.txMu.Unlock()
		}
	}
}

// run ejecuta fn en exclusión mutua con otras transacciones y revierte si falla.
func (s *Store) run(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
