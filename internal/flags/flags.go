// AngelaMos | 2026
// flags.go

// Package flags decodes the boot-time configuration payload the web
// client hands over when a session starts.
package flags

import (
	"time"

	"github.com/cambiatus/gateway/internal/decode"
)

// Endpoints are the backend services a booted client talks to.
type Endpoints struct {
	Eosio   string `json:"eosio"`
	API     string `json:"api"`
	GraphQL string `json:"graphql"`
}

// Flags is a boot-time configuration snapshot. Every field is required
// in the payload; AccountName, AuthToken and SelectedCommunity may be
// explicitly null but their keys must still be present.
type Flags struct {
	Language               string    `json:"language"`
	AccountName            *string   `json:"accountName"`
	Endpoints              Endpoints `json:"endpoints"`
	Logo                   string    `json:"logo"`
	LogoMobile             string    `json:"logoMobile"`
	Now                    time.Time `json:"now"`
	AllowCommunityCreation bool      `json:"allowCommunityCreation"`
	TokenContract          string    `json:"tokenContract"`
	CommunityContract      string    `json:"communityContract"`
	GraphqlSecret          string    `json:"graphqlSecret"`
	AuthToken              *string   `json:"authToken"`
	HasUsedPKAuth          bool      `json:"hasUsedPKAuth"`
	CanReadClipboard       bool      `json:"canReadClipboard"`
	UseSubdomain           bool      `json:"useSubdomain"`
	SelectedCommunity      *string   `json:"selectedCommunity"`
	PinVisibility          bool      `json:"pinVisibility"`
	HasSeenSponsorModal    bool      `json:"hasSeenSponsorModal"`
}

// Decode validates a raw boot payload. Atomic: a single missing key or
// mistyped value fails the whole record.
func Decode(obj decode.Object) (Flags, error) {
	var f Flags

	if err := decode.Field(obj, "language", decode.String, &f.Language); err != nil {
		return Flags{}, err
	}
	if err := decode.NullableField(obj, "accountName", decode.String, &f.AccountName); err != nil {
		return Flags{}, err
	}
	if err := decode.Nested(obj, "endpoints", decodeEndpoints, &f.Endpoints); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "logo", decode.String, &f.Logo); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "logoMobile", decode.String, &f.LogoMobile); err != nil {
		return Flags{}, err
	}

	var nowMillis int64
	if err := decode.Field(obj, "now", decode.Int64, &nowMillis); err != nil {
		return Flags{}, err
	}
	f.Now = time.UnixMilli(nowMillis).UTC()

	if err := decode.Field(obj, "allowCommunityCreation", decode.Bool, &f.AllowCommunityCreation); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "tokenContract", decode.String, &f.TokenContract); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "communityContract", decode.String, &f.CommunityContract); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "graphqlSecret", decode.String, &f.GraphqlSecret); err != nil {
		return Flags{}, err
	}
	if err := decode.NullableField(obj, "authToken", decode.String, &f.AuthToken); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "hasUsedPKAuth", decode.Bool, &f.HasUsedPKAuth); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "canReadClipboard", decode.Bool, &f.CanReadClipboard); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "useSubdomain", decode.Bool, &f.UseSubdomain); err != nil {
		return Flags{}, err
	}
	if err := decode.NullableField(obj, "selectedCommunity", decode.String, &f.SelectedCommunity); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "pinVisibility", decode.Bool, &f.PinVisibility); err != nil {
		return Flags{}, err
	}
	if err := decode.Field(obj, "hasSeenSponsorModal", decode.Bool, &f.HasSeenSponsorModal); err != nil {
		return Flags{}, err
	}

	return f, nil
}

func decodeEndpoints(obj decode.Object) (Endpoints, error) {
	var e Endpoints

	if err := decode.Field(obj, "eosio", decode.String, &e.Eosio); err != nil {
		return Endpoints{}, err
	}
	if err := decode.Field(obj, "api", decode.String, &e.API); err != nil {
		return Endpoints{}, err
	}
	if err := decode.Field(obj, "graphql", decode.String, &e.GraphQL); err != nil {
		return Endpoints{}, err
	}

	return e, nil
}
