// AngelaMos | 2026
// address.go

package profile

import (
	"strings"

	"github.com/cambiatus/gateway/internal/decode"
)

// NamedEntity is a geographic record that carries nothing but a name.
type NamedEntity struct {
	Name string `json:"name"`
}

// Address is a profile's postal address as stored upstream. Number is
// the only field a profile may leave out.
type Address struct {
	Country      NamedEntity `json:"country"`
	State        NamedEntity `json:"state"`
	City         NamedEntity `json:"city"`
	Neighborhood NamedEntity `json:"neighborhood"`
	Street       string      `json:"street"`
	Number       *string     `json:"number,omitempty"`
	Zip          string      `json:"zip"`
}

type fieldKind int

const (
	kindEntity fieldKind = iota
	kindScalar
	kindOptionalScalar
)

type addressField struct {
	name string
	kind fieldKind
	dst  func(*Address) any
}

// addressFields is the single source of truth for the address shape.
// Both the GraphQL selection set and the decode contract are derived
// from it, so a field added here is automatically requested upstream
// and required (or defaulted) on decode.
var addressFields = []addressField{
	{"country", kindEntity, func(a *Address) any { return &a.Country }},
	{"state", kindEntity, func(a *Address) any { return &a.State }},
	{"city", kindEntity, func(a *Address) any { return &a.City }},
	{"neighborhood", kindEntity, func(a *Address) any { return &a.Neighborhood }},
	{"street", kindScalar, func(a *Address) any { return &a.Street }},
	{"number", kindOptionalScalar, func(a *Address) any { return &a.Number }},
	{"zip", kindScalar, func(a *Address) any { return &a.Zip }},
}

// AddressSelection renders the GraphQL selection set matching
// DecodeAddress.
func AddressSelection() string {
	var b strings.Builder
	for i, f := range addressFields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.name)
		if f.kind == kindEntity {
			b.WriteString(" { name }")
		}
	}
	return b.String()
}

// DecodeAddress validates a raw address object against the field list.
// The decode is atomic: any violation fails the whole record.
func DecodeAddress(obj decode.Object) (Address, error) {
	var addr Address
	for _, f := range addressFields {
		if err := f.decodeInto(obj, &addr); err != nil {
			return Address{}, err
		}
	}
	return addr, nil
}

func (f addressField) decodeInto(obj decode.Object, addr *Address) error {
	switch f.kind {
	case kindEntity:
		dst, _ := f.dst(addr).(*NamedEntity)
		return decode.Nested(obj, f.name, decodeNamedEntity, dst)
	case kindScalar:
		dst, _ := f.dst(addr).(*string)
		return decode.Field(obj, f.name, decode.String, dst)
	case kindOptionalScalar:
		dst, _ := f.dst(addr).(**string)
		return decode.OptionalField(obj, f.name, decode.String, dst)
	}
	return nil
}

func decodeNamedEntity(obj decode.Object) (NamedEntity, error) {
	var entity NamedEntity
	if err := decode.Field(obj, "name", decode.String, &entity.Name); err != nil {
		return NamedEntity{}, err
	}
	return entity, nil
}
