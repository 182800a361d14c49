// AngelaMos | 2026
// store.go

// Package translations serves the per-language translation bundles and
// answers locale-formatting lookups against them.
package translations

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/redis/go-redis/v9"

	"github.com/cambiatus/gateway/internal/config"
	"github.com/cambiatus/gateway/internal/core"
	"github.com/cambiatus/gateway/internal/locale"
)

const (
	decimalSeparatorKey   = "decimal_separator"
	thousandsSeparatorKey = "thousands_separator"
)

// Separators is the number-formatting pair derived from the active
// translation table. Recomputed per use, never persisted.
type Separators struct {
	Decimal   string `json:"decimal_separator"`
	Thousands string `json:"thousands_separator"`
}

// Store loads every supported translation bundle at startup and serves
// both the raw assets and key lookups against them. The redis cache is
// optional; without it every asset read goes to disk.
type Store struct {
	cfg        config.TranslationsConfig
	cache      *redis.Client
	localizers map[locale.Language]*i18n.Localizer
}

func NewStore(
	cfg config.TranslationsConfig,
	cache *redis.Client,
) (*Store, error) {
	bundle := i18n.NewBundle(locale.Default.Tag())
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	localizers := make(map[locale.Language]*i18n.Localizer, len(locale.All))
	for _, lang := range locale.All {
		path := filepath.Join(cfg.Dir, lang.File())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read translation bundle: %w", err)
		}

		// The asset filename casing does not parse as a BCP-47 tag,
		// so the bundle is fed under the language's canonical tag
		// instead of the on-disk name.
		tagged := lang.Tag().String() + ".json"
		if _, err := bundle.ParseMessageFileBytes(data, tagged); err != nil {
			return nil, fmt.Errorf("parse translation bundle %s: %w", path, err)
		}

		localizers[lang] = i18n.NewLocalizer(bundle, lang.Tag().String())
	}

	return &Store{
		cfg:        cfg,
		cache:      cache,
		localizers: localizers,
	}, nil
}

// Asset returns the raw bundle bytes for a known translation filename.
// Unknown filenames report core.ErrNotFound; filenames never touch the
// filesystem unless they appear in the per-language table.
func (s *Store) Asset(
	ctx context.Context,
	file, version string,
) ([]byte, error) {
	if _, ok := locale.FromFile(file); !ok {
		return nil, fmt.Errorf("translation asset %q: %w", file, core.ErrNotFound)
	}

	if version == "" {
		version = s.cfg.Version
	}

	cacheKey := fmt.Sprintf("translations:asset:%s:%s", file, version)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			slog.Warn("translation cache read failed", "error", err, "key", cacheKey)
		}
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.Dir, file))
	if err != nil {
		return nil, fmt.Errorf("read translation asset: %w", err)
	}

	if s.cache != nil {
		ttl := s.cfg.CacheTTL
		if ttl <= 0 {
			ttl = time.Hour
		}
		if err := s.cache.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
			slog.Warn("translation cache write failed", "error", err, "key", cacheKey)
		}
	}

	return data, nil
}

// Separators looks the formatting pair up in a language's translation
// table. Missing keys fall back to "." and "," rather than failing;
// number formatting has to work even with an incomplete table.
func (s *Store) Separators(lang locale.Language) Separators {
	out := Separators{Decimal: ".", Thousands: ","}

	if v := s.lookup(lang, decimalSeparatorKey); v != "" {
		out.Decimal = v
	}
	if v := s.lookup(lang, thousandsSeparatorKey); v != "" {
		out.Thousands = v
	}

	return out
}

func (s *Store) lookup(lang locale.Language, messageID string) string {
	localizer, ok := s.localizers[lang]
	if !ok {
		return ""
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return ""
	}
	return msg
}

// Languages describes the closed language set for UI enumeration.
func (s *Store) Languages() []LanguageInfo {
	out := make([]LanguageInfo, 0, len(locale.All))
	for _, lang := range locale.All {
		out = append(out, LanguageInfo{
			Code:    lang.Code(),
			Locale:  lang.Locale(),
			File:    lang.File(),
			Asset:   locale.AssetPath(lang, s.cfg.Version),
			Default: lang == locale.Default,
		})
	}
	return out
}

type LanguageInfo struct {
	Code    string `json:"code"`
	Locale  string `json:"locale"`
	File    string `json:"file"`
	Asset   string `json:"asset"`
	Default bool   `json:"default"`
}
