package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/yomorun/yomo-lambdas/pkg/yerr"
	"gopkg.in/yaml.v3"
)

var (
	_ BlobStore      = (*MemoryStore)(nil)
	_ ParameterStore = (*MemoryStore)(nil)
)

// FixtureObject is an object of a fixture file.
type FixtureObject struct {
	ContentType string `yaml:"content_type"`
	Body        string `yaml:"body"`
}

// FixtureParameter is a parameter of a fixture file.
type FixtureParameter struct {
	Value  string `yaml:"value"`
	Secure bool   `yaml:"secure,omitempty"`
}

// Fixture is the yaml representation of a MemoryStore.
type Fixture struct {
	// Objects maps bucket to key to object.
	Objects    map[string]map[string]FixtureObject `yaml:"objects,omitempty"`
	Parameters map[string]FixtureParameter         `yaml:"parameters,omitempty"`
}

// MemoryStore is an in-process BlobStore and ParameterStore.
// It backs local invocations and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	objects    map[string]map[string]Object
	parameters map[string]FixtureParameter
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects:    make(map[string]map[string]Object),
		parameters: make(map[string]FixtureParameter),
	}
}

// NewMemoryStoreFromFixture returns a MemoryStore holding everything in f.
func NewMemoryStoreFromFixture(f Fixture) *MemoryStore {
	s := NewMemoryStore()
	for bucket, objects := range f.Objects {
		for key, o := range objects {
			s.SetObject(bucket, key, Object{Body: []byte(o.Body), ContentType: o.ContentType})
		}
	}
	for name, p := range f.Parameters {
		s.parameters[name] = p
	}
	return s
}

// LoadFixture reads a yaml fixture file into a new MemoryStore.
func LoadFixture(path string) (*MemoryStore, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f Fixture
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("store: parse fixture %s: %w", path, err)
	}

	return NewMemoryStoreFromFixture(f), nil
}

// Fixture returns a snapshot of s.
func (s *MemoryStore) Fixture() Fixture {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := Fixture{
		Objects:    make(map[string]map[string]FixtureObject, len(s.objects)),
		Parameters: make(map[string]FixtureParameter, len(s.parameters)),
	}
	for bucket, objects := range s.objects {
		f.Objects[bucket] = make(map[string]FixtureObject, len(objects))
		for key, o := range objects {
			f.Objects[bucket][key] = FixtureObject{ContentType: o.ContentType, Body: string(o.Body)}
		}
	}
	for name, p := range s.parameters {
		f.Parameters[name] = p
	}
	return f
}

// SaveFixture writes s to path as yaml.
func (s *MemoryStore) SaveFixture(path string) error {
	buf, err := yaml.Marshal(s.Fixture())
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// SetObject stores o under key in bucket.
func (s *MemoryStore) SetObject(bucket, key string, o Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.objects[bucket] == nil {
		s.objects[bucket] = make(map[string]Object)
	}
	s.objects[bucket][key] = o
}

func (s *MemoryStore) GetObject(_ context.Context, bucket, key string) (Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, ok := s.objects[bucket]
	if !ok {
		return Object{}, yerr.Errorf(yerr.CodeBackend, "memory.GetObject", "bucket %s does not exist", bucket)
	}
	o, ok := objects[key]
	if !ok {
		return Object{}, yerr.Errorf(yerr.CodeNotFound, "memory.GetObject", "key %s does not exist", key)
	}
	return o, nil
}

// Parameter returns the raw stored parameter.
func (s *MemoryStore) Parameter(name string) (FixtureParameter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.parameters[name]
	return p, ok
}

func (s *MemoryStore) GetParameter(_ context.Context, name string, _ bool) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.parameters[name]
	if !ok {
		return "", yerr.Errorf(yerr.CodeNotFound, "memory.GetParameter", "parameter %s does not exist", name)
	}
	return p.Value, nil
}

func (s *MemoryStore) PutParameter(_ context.Context, p Parameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parameters[p.Name]; ok && !p.Overwrite {
		return yerr.Errorf(yerr.CodeBackend, "memory.PutParameter", "parameter %s already exists", p.Name)
	}
	s.parameters[p.Name] = FixtureParameter{Value: p.Value, Secure: p.Secure}
	return nil
}
