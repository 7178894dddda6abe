package services

import (
	"context"
	"time"

	"invoicing-dashboard/internal/cache"
	"invoicing-dashboard/internal/config"
	"invoicing-dashboard/internal/dto"
)

// Dashboard paths used as view cache keys. Mutations invalidate the paths
// whose rendered data they change.
const (
	PathDashboard = "/dashboard"
	PathInvoices  = "/dashboard/invoices"
	PathCustomers = "/dashboard/customers"
)

// DashboardViewCache holds the cached dashboard views, one typed cache per
// view. It satisfies ViewInvalidator so mutation services can drop stale
// entries without knowing which views exist.
type DashboardViewCache struct {
	revenue *cache.ViewCache[*dto.RevenueResponse]
	cards   *cache.ViewCache[*dto.CardsResponse]
	latest  *cache.ViewCache[*dto.LatestInvoicesResponse]
}

// NewDashboardViewCache creates the dashboard view caches from configuration
func NewDashboardViewCache(cacheConfig *config.CacheConfig) *DashboardViewCache {
	return &DashboardViewCache{
		revenue: cache.NewViewCache[*dto.RevenueResponse](cacheConfig.ViewMaxEntries, cacheConfig.ViewTTL),
		cards:   cache.NewViewCache[*dto.CardsResponse](cacheConfig.ViewMaxEntries, cacheConfig.ViewTTL),
		latest:  cache.NewViewCache[*dto.LatestInvoicesResponse](cacheConfig.ViewMaxEntries, cacheConfig.ViewTTL),
	}
}

// Invalidate drops every cached view under the given path across all view
// types and returns the number of dropped entries
func (c *DashboardViewCache) Invalidate(path string) int {
	dropped := c.revenue.Invalidate(path)
	dropped += c.cards.Invalidate(path)
	dropped += c.latest.Invalidate(path)
	return dropped
}

// StartJanitor periodically evicts expired entries until the context is
// cancelled
func (c *DashboardViewCache) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.revenue.CleanExpired()
				c.cards.CleanExpired()
				c.latest.CleanExpired()
			}
		}
	}()
}
