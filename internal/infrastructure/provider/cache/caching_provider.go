package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"pr-dashboard/internal/domain/models"
	ports "pr-dashboard/internal/domain/ports/output"
	provider_port "pr-dashboard/internal/domain/ports/output/provider"
	"sync"
	"time"
)

const membersKey = "ListMembers"

// CachingProvider wraps a PRProvider with TTL caches. A zero TTL disables
// caching for that call. Errors are never cached.
type CachingProvider struct {
	next       provider_port.PRProvider
	membersTTL time.Duration
	prTTL      time.Duration
	log        ports.Logger
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	value     any
	expiresAt time.Time
}

var _ provider_port.PRProvider = (*CachingProvider)(nil)

func NewCachingProvider(next provider_port.PRProvider, membersTTL, prTTL time.Duration, log ports.Logger) *CachingProvider {
	return &CachingProvider{
		next:       next,
		membersTTL: membersTTL,
		prTTL:      prTTL,
		log:        log,
		now:        time.Now,
		entries:    make(map[string]entry),
	}
}

func (c *CachingProvider) ListMembers(ctx context.Context) ([]models.Member, error) {
	if cached, ok := c.get(membersKey); ok {
		members := cached.([]models.Member)
		c.log.Debug("cache hit", "key", membersKey, "members", len(members))
		return append([]models.Member(nil), members...), nil
	}

	members, err := c.next.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	c.set(membersKey, append([]models.Member(nil), members...), c.membersTTL)
	return members, nil
}

func (c *CachingProvider) ListPullRequests(ctx context.Context, filter models.PRFilter) ([]models.PullRequest, error) {
	key := filterKey(filter)
	if cached, ok := c.get(key); ok {
		prs := cached.([]models.PullRequest)
		c.log.Debug("cache hit", "repo", filter.Repository, "prs", len(prs))
		return append([]models.PullRequest(nil), prs...), nil
	}

	prs, err := c.next.ListPullRequests(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.set(key, append([]models.PullRequest(nil), prs...), c.prTTL)
	return prs, nil
}

func (c *CachingProvider) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *CachingProvider) set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

func filterKey(f models.PRFilter) string {
	raw, _ := json.Marshal(f)
	sum := sha256.Sum256(raw)
	return "ListPullRequests:" + hex.EncodeToString(sum[:])
}
