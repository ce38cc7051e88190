package application_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"smartz/internal/application"
	"smartz/internal/domain"
	"smartz/internal/domain/entities"
)

func TestContractRegistryRegister(t *testing.T) {
	r := application.NewContractRegistry()

	c, err := r.Register(testMessage)
	require.NoError(t, err)
	require.Equal(t, "TestMessage", c.Name())

	again, err := r.Register(testMessage)
	require.NoError(t, err)
	require.Same(t, c, again)

	got, ok := r.Get("TestMessage")
	require.True(t, ok)
	require.Same(t, c, got)

	_, ok = r.Get("Other")
	require.False(t, ok)
}

func TestContractRegistryRejects(t *testing.T) {
	r := application.NewContractRegistry()
	r.MustRegister(testMessage)

	testCases := []struct {
		name string
		def  entities.ContractDefinition
		err  error
	}{
		{
			name: "blank name",
			def:  entities.ContractDefinition{Name: " ", Bundle: "TestMessages", Fields: testMessage.Fields},
			err:  domain.ErrUnnamedContract,
		},
		{
			name: "different definition under a taken name",
			def: entities.ContractDefinition{
				Name:   "TestMessage",
				Bundle: "TestMessages",
				Fields: []entities.FieldDefinition{{Name: "getCode"}},
			},
			err: domain.ErrConflictingContract,
		},
		{
			name: "invalid contract",
			def:  entities.ContractDefinition{Name: "Empty", Bundle: "TestMessages"},
			err:  domain.ErrEmptyContract,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Register(tc.def)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, domain.ErrContractInvalid)
		})
	}

	require.Equal(t, []string{"TestMessage"}, r.Names())
}

func TestContractRegistryMustRegisterPanics(t *testing.T) {
	r := application.NewContractRegistry()
	require.Panics(t, func() {
		r.MustRegister(entities.ContractDefinition{Name: "Broken", Bundle: "TestMessages"})
	})
}

func TestContractRegistryDefinitionIsCopied(t *testing.T) {
	r := application.NewContractRegistry()
	def := entities.ContractDefinition{
		Name:   "Copied",
		Bundle: "TestMessages",
		Fields: []entities.FieldDefinition{{Name: "getCode"}},
	}
	c := r.MustRegister(def)

	def.Fields[0].Name = "getDescription"
	_, err := r.Register(def)
	require.ErrorIs(t, err, domain.ErrConflictingContract)
	require.Equal(t, "getCode", c.Fields()[0].Name)
}

func TestContractRegistryConcurrentRegister(t *testing.T) {
	r := application.NewContractRegistry()

	var wg sync.WaitGroup
	results := make([]*entities.Contract, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.MustRegister(locationMessage)
		}(i)
	}
	wg.Wait()

	for _, c := range results {
		require.Same(t, results[0], c)
	}
	require.Len(t, r.Contracts(), 1)
}
