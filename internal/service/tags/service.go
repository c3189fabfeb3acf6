package tags

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	tokenRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/token"
	"github.com/m04kA/SMC-DeliveryService/pkg/cache"
)

// DefaultTTL время жизни закэшированных тегов корзины.
// Короткое намеренно: гасит частые повторные опросы витрины при изменении
// корзины, не задерживая публикацию новых тегов надолго.
const DefaultTTL = 8 * time.Second

// Service resolves the set of product tags present in a cart.
//
// The lookup is fail-open by design: a missing token, an unreachable catalog
// or a decode failure resolves to an empty tag set, never an error. Policy
// resolution must stay usable when the catalog is down.
type Service struct {
	tokenRepo TokenRepository
	catalog   CatalogClient
	cache     cache.CacheService
	ttl       time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса тегов
func NewService(
	tokenRepo TokenRepository,
	catalog CatalogClient,
	tagCache cache.CacheService,
	ttl time.Duration,
	logger Logger,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		tokenRepo: tokenRepo,
		catalog:   catalog,
		cache:     tagCache,
		ttl:       ttl,
		logger:    logger,
	}
}

// CartProductTags returns the union of tags across the cart's products.
// Results are cached per (shop, sorted distinct product IDs).
func (s *Service) CartProductTags(ctx context.Context, shop string, productIDs []int64) map[string]struct{} {
	ids := normalizeIDs(productIDs)
	if len(ids) == 0 {
		return map[string]struct{}{}
	}

	key := cacheKey(shop, ids)
	if cached, ok := s.cache.Get(key); ok {
		if tags, ok := cached.([]string); ok {
			return toSet(tags)
		}
	}

	token, err := s.tokenRepo.GetOfflineToken(ctx, shop)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			s.logger.Warn("CartProductTags: no offline token for shop=%s, resolving without tag policy", shop)
		} else {
			s.logger.Error("CartProductTags: token lookup failed for shop=%s: %v", shop, err)
		}
		return map[string]struct{}{}
	}

	tagSet, err := s.catalog.FetchProductTagsWithGracefulDegradation(ctx, shop, token, ids)
	if err != nil {
		// деградация уже залогирована клиентом
		return map[string]struct{}{}
	}

	s.cache.Set(key, toSlice(tagSet), s.ttl)
	return tagSet
}

// normalizeIDs drops non-positive IDs, deduplicates and sorts ascending so
// the cache key is stable across item order in the cart.
func normalizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cacheKey(shop string, sortedIDs []int64) string {
	parts := make([]string, len(sortedIDs))
	for i, id := range sortedIDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return shop + "::" + strings.Join(parts, ",")
}

func toSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

func toSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
