package application

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"smartz/internal/domain"
	"smartz/internal/domain/entities"
)

// ContractRegistry builds each named contract once and shares it read-only
// with every resolve call.
type ContractRegistry struct {
	mu        sync.RWMutex
	contracts map[string]registered
}

type registered struct {
	def      entities.ContractDefinition
	contract *entities.Contract
}

func NewContractRegistry() *ContractRegistry {
	return &ContractRegistry{contracts: make(map[string]registered)}
}

// Register validates def and stores the contract under def.Name.
// Registering an identical definition again returns the existing contract;
// a different definition under the same name is rejected.
func (r *ContractRegistry) Register(def entities.ContractDefinition) (*entities.Contract, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, domain.ErrUnnamedContract
	}

	r.mu.RLock()
	existing, ok := r.contracts[def.Name]
	r.mu.RUnlock()
	if ok {
		return existing.check(def)
	}

	c, err := entities.NewContract(def)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.contracts[def.Name]; ok {
		return existing.check(def)
	}
	r.contracts[def.Name] = registered{def: cloneDefinition(def), contract: c}
	return c, nil
}

// MustRegister is Register for startup code: an invalid contract panics.
func (r *ContractRegistry) MustRegister(def entities.ContractDefinition) *entities.Contract {
	c, err := r.Register(def)
	if err != nil {
		panic(fmt.Sprintf("register contract %q: %v", def.Name, err))
	}
	return c
}

// Get returns the contract registered under name.
func (r *ContractRegistry) Get(name string) (*entities.Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.contracts[name]
	return reg.contract, ok
}

// Names returns the registered contract names, sorted.
func (r *ContractRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.contracts))
	for name := range r.contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contracts returns the registered contracts sorted by name.
func (r *ContractRegistry) Contracts() []*entities.Contract {
	names := r.Names()
	out := make([]*entities.Contract, 0, len(names))
	for _, name := range names {
		if c, ok := r.Get(name); ok {
			out = append(out, c)
		}
	}
	return out
}

func (reg registered) check(def entities.ContractDefinition) (*entities.Contract, error) {
	if !reflect.DeepEqual(reg.def, def) {
		return nil, fmt.Errorf("contract %q: %w", def.Name, domain.ErrConflictingContract)
	}
	return reg.contract, nil
}

func cloneDefinition(def entities.ContractDefinition) entities.ContractDefinition {
	def.Fields = append([]entities.FieldDefinition(nil), def.Fields...)
	return def
}
