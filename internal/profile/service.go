// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"fmt"

	"github.com/cambiatus/gateway/internal/core"
	"github.com/cambiatus/gateway/internal/decode"
	"github.com/cambiatus/gateway/internal/graph"
)

type Service struct {
	graph graph.Client
}

func NewService(client graph.Client) *Service {
	return &Service{graph: client}
}

// LoadAddress fetches and strictly decodes a profile's address. A
// profile without an address reports core.ErrNotFound; a structural
// mismatch surfaces as a *decode.Error.
func (s *Service) LoadAddress(
	ctx context.Context,
	account string,
) (Address, error) {
	query := fmt.Sprintf(
		"query($account: String!) { profile(account: $account) { address { %s } } }",
		AddressSelection(),
	)

	result, err := s.graph.Query(ctx, query, map[string]any{"account": account})
	if err != nil {
		return Address{}, fmt.Errorf("load address: %w", err)
	}

	profileRaw, ok := result["profile"]
	if !ok || profileRaw == nil {
		return Address{}, fmt.Errorf("load address: %w", core.ErrNotFound)
	}

	profileObj, err := decode.Obj(profileRaw)
	if err != nil {
		return Address{}, fmt.Errorf("load address: %w", err)
	}

	addressRaw, ok := profileObj["address"]
	if !ok || addressRaw == nil {
		return Address{}, fmt.Errorf("load address: %w", core.ErrNotFound)
	}

	addressObj, err := decode.Obj(addressRaw)
	if err != nil {
		return Address{}, fmt.Errorf("load address: %w", err)
	}

	addr, err := DecodeAddress(addressObj)
	if err != nil {
		return Address{}, fmt.Errorf("load address: %w", err)
	}

	return addr, nil
}
