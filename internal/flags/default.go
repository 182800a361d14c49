// AngelaMos | 2026
// default.go

package flags

import (
	"time"

	"github.com/cambiatus/gateway/internal/locale"
)

// Default is the hardcoded fallback record for contexts that boot with
// no payload at all. It is never merged field-by-field into a decoded
// record: decoding either succeeds completely or fails completely.
func Default() Flags {
	return Flags{
		Language: locale.Default.Code(),
		Endpoints: Endpoints{
			Eosio:   "https://staging.cambiatus.io",
			API:     "https://api.staging.cambiatus.io",
			GraphQL: "https://api.staging.cambiatus.io/graph",
		},
		Logo:                   "/images/logo-cambiatus.png",
		LogoMobile:             "/images/logo-cambiatus-mobile.svg",
		Now:                    time.UnixMilli(0).UTC(),
		AllowCommunityCreation: true,
		TokenContract:          "bes.token",
		CommunityContract:      "bes.cmm",
		UseSubdomain:           true,
	}
}
