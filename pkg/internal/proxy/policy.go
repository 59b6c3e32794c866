// Package proxy decides whether an outbound URL may be fetched through the
// media proxy. The decision is a pure function of the input string and the
// current whitelist snapshot.
package proxy

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/grovesocial/grove/pkg/internal/cache"
	"github.com/grovesocial/grove/pkg/internal/models"
	"golang.org/x/net/publicsuffix"
	"gorm.io/gorm"
	"mvdan.cc/xurls/v2"
)

var (
	ErrNoValidURL     = errors.New("no valid url given")
	ErrNotWhitelisted = errors.New("url domain is not whitelisted")
)

var extractor = xurls.Relaxed()

type Policy struct {
	db *gorm.DB
}

func NewPolicy(db *gorm.DB) *Policy {
	return &Policy{db: db}
}

// CheckURLCanBeProxied extracts URLs from a free-form string and requires the
// first extracted URL to carry an http(s) scheme and a whitelisted domain.
func (p *Policy) CheckURLCanBeProxied(raw string) error {
	candidates := extractor.FindAllString(raw, -1)
	if len(candidates) == 0 {
		return ErrNoValidURL
	}

	for _, candidate := range candidates {
		if !strings.Contains(candidate, "://") {
			candidate = "https://" + candidate
		}
		parsed, err := url.Parse(candidate)
		if err != nil {
			continue
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return ErrNotWhitelisted
		}

		host := strings.ToLower(parsed.Hostname())
		if p.isWhitelisted(host) {
			return nil
		}
		if registrable, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil && p.isWhitelisted(registrable) {
			return nil
		}
		return ErrNotWhitelisted
	}

	return ErrNoValidURL
}

func (p *Policy) isWhitelisted(domain string) bool {
	ctx := context.Background()

	// The whitelist table is read-heavy and written only by the import
	// command, so hits are cached for a short window.
	var manager *cache.Cache[bool]
	cacheKey := "proxy-whitelist#" + domain
	if localCache.S != nil {
		manager = cache.New[bool](localCache.S)
		if hit, err := manager.Get(ctx, cacheKey); err == nil && hit {
			return true
		}
	}

	var count int64
	if err := p.db.Model(&models.ProxyWhitelistDomain{}).
		Where("domain = ?", domain).
		Count(&count).Error; err != nil {
		return false
	}

	if manager != nil && count > 0 {
		_ = manager.Set(ctx, cacheKey, true,
			store.WithExpiration(5*time.Minute),
			store.WithTags([]string{"proxy-whitelist"}),
		)
	}

	return count > 0
}
