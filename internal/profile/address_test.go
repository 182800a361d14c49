// AngelaMos | 2026
// address_test.go

package profile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cambiatus/gateway/internal/decode"
	"github.com/cambiatus/gateway/internal/graph"
)

func parseObject(t *testing.T, raw string) decode.Object {
	t.Helper()
	var obj decode.Object
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

const fullAddress = `{
	"country": {"name": "Costa Rica"},
	"state": {"name": "San José"},
	"city": {"name": "Escazú"},
	"neighborhood": {"name": "San Rafael"},
	"street": "Avenida Central",
	"number": "42",
	"zip": "10203"
}`

func TestDecodeAddress(t *testing.T) {
	addr, err := DecodeAddress(parseObject(t, fullAddress))
	require.NoError(t, err)

	assert.Equal(t, "Costa Rica", addr.Country.Name)
	assert.Equal(t, "San José", addr.State.Name)
	assert.Equal(t, "Escazú", addr.City.Name)
	assert.Equal(t, "San Rafael", addr.Neighborhood.Name)
	assert.Equal(t, "Avenida Central", addr.Street)
	require.NotNil(t, addr.Number)
	assert.Equal(t, "42", *addr.Number)
	assert.Equal(t, "10203", addr.Zip)
}

func TestDecodeAddressWithoutNumber(t *testing.T) {
	obj := parseObject(t, fullAddress)
	delete(obj, "number")

	addr, err := DecodeAddress(obj)
	require.NoError(t, err)
	assert.Nil(t, addr.Number)
}

func TestDecodeAddressNullNumber(t *testing.T) {
	obj := parseObject(t, fullAddress)
	obj["number"] = nil

	addr, err := DecodeAddress(obj)
	require.NoError(t, err)
	assert.Nil(t, addr.Number)
}

func TestDecodeAddressMissingRequiredKey(t *testing.T) {
	obj := parseObject(t, fullAddress)
	delete(obj, "zip")

	_, err := DecodeAddress(obj)
	require.Error(t, err)

	decodeErr, ok := decode.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "zip", decodeErr.Path)
}

func TestDecodeAddressEntityAsString(t *testing.T) {
	obj := parseObject(t, fullAddress)
	obj["country"] = "Costa Rica"

	addr, err := DecodeAddress(obj)
	require.Error(t, err)
	assert.Zero(t, addr, "no partial record on failure")

	decodeErr, ok := decode.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "country", decodeErr.Path)
}

func TestDecodeAddressEntityMissingName(t *testing.T) {
	obj := parseObject(t, fullAddress)
	obj["state"] = map[string]any{"label": "San José"}

	_, err := DecodeAddress(obj)
	require.Error(t, err)

	decodeErr, ok := decode.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "state.name", decodeErr.Path)
}

func TestAddressSelectionMirrorsDecodeContract(t *testing.T) {
	selection := AddressSelection()

	assert.Equal(
		t,
		"country { name } state { name } city { name } neighborhood { name } street number zip",
		selection,
	)

	// every decoded field appears in the request shape
	for _, f := range addressFields {
		assert.Contains(t, selection, f.name)
	}
}

func TestLoadAddress(t *testing.T) {
	client := graph.NewMemoryClient()
	client.PushResult(graph.Result{
		"profile": map[string]any{
			"address": map[string]any{
				"country":      map[string]any{"name": "Costa Rica"},
				"state":        map[string]any{"name": "San José"},
				"city":         map[string]any{"name": "Escazú"},
				"neighborhood": map[string]any{"name": "San Rafael"},
				"street":       "Avenida Central",
				"zip":          "10203",
			},
		},
	})

	svc := NewService(client)
	addr, err := svc.LoadAddress(context.Background(), "lucca")
	require.NoError(t, err)
	assert.Equal(t, "Costa Rica", addr.Country.Name)
	assert.Nil(t, addr.Number)

	queries := client.Queries()
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0].Query, AddressSelection())
	assert.Equal(t, "lucca", queries[0].Variables["account"])
}

func TestLoadAddressProfileMissing(t *testing.T) {
	client := graph.NewMemoryClient()
	client.PushResult(graph.Result{"profile": nil})

	svc := NewService(client)
	_, err := svc.LoadAddress(context.Background(), "ghost")
	require.Error(t, err)
}
