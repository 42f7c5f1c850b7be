// Package localstore persiste el contexto y la bandeja como blobs JSON en disco,
// uno por clave, con la misma forma que guardaba el navegador.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/repository"
)

// Claves de los blobs persistidos.
const (
	KeyContext = "kardex_context_v1"
	KeyQueue   = "kardex_queue_v1"
)

var (
	_ repository.ContextRepository = (*Store)(nil)
	_ repository.QueueRepository   = (*Store)(nil)
)

// Store implementación de los puertos de persistencia sobre archivos JSON.
type Store struct {
	dir string
	log zerolog.Logger
	mu  sync.Mutex
}

// New construye el store sobre dir, creándolo si no existe.
func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// LoadContext lee el contexto; si no existe o está corrupto devuelve initial.
func (s *Store) LoadContext(_ context.Context, initial entity.ContextState) (entity.ContextState, error) {
	state := initial
	ok, err := s.read(KeyContext, &state)
	if err != nil {
		return initial, err
	}
	if !ok {
		return initial, nil
	}
	return state, nil
}

// SaveContext persiste el contexto.
func (s *Store) SaveContext(_ context.Context, state entity.ContextState) error {
	return s.write(KeyContext, state)
}

// LoadQueue lee la bandeja; si no existe o está corrupta devuelve una bandeja vacía.
func (s *Store) LoadQueue(_ context.Context) ([]*entity.Movement, error) {
	var queue []*entity.Movement
	ok, err := s.read(KeyQueue, &queue)
	if err != nil {
		return []*entity.Movement{}, err
	}
	if !ok || queue == nil {
		return []*entity.Movement{}, nil
	}
	out := queue[:0]
	for _, m := range queue {
		if m != nil {
			out = append(out, m)
		}
	}
	return out, nil
}

// SaveQueue persiste la bandeja completa.
func (s *Store) SaveQueue(_ context.Context, queue []*entity.Movement) error {
	if queue == nil {
		queue = []*entity.Movement{}
	}
	return s.write(KeyQueue, queue)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// read decodifica el blob en v. Devuelve false si no existe o no es JSON válido.
func (s *Store) read(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("leer %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("blob corrupto, se usa valor inicial")
		return false, nil
	}
	return true, nil
}

// write reemplaza el blob de forma atómica (archivo temporal + rename).
func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal %s: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("reemplazar %s: %w", key, err)
	}
	return nil
}
