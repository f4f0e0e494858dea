package service

// ContactCache keeps the contact singleton and social links in memory and
// refreshes them on a fixed interval, so the public contact endpoint never
// hits the database on the request path.  Admin contact writes pause the
// ticker, apply their change and resume with an immediate refresh, which
// keeps the cache from clobbering a just-written value with a stale read.

import (
    "context"
    "sync"
    "time"

    "go.uber.org/zap"

    "github.com/luxedrive/rental-api/internal/model"
    "github.com/luxedrive/rental-api/internal/repository"
)

type ContactCache struct {
    repo     *repository.ContactRepo
    log      *zap.SugaredLogger
    interval time.Duration

    mu     sync.RWMutex
    info   model.ContactInfo
    social []model.SocialLink
    paused bool
}

func NewContactCache(repo *repository.ContactRepo, log *zap.SugaredLogger, interval time.Duration) *ContactCache {
    if interval <= 0 {
        interval = 5 * time.Second
    }
    return &ContactCache{repo: repo, log: log, interval: interval, social: []model.SocialLink{}}
}

// Start performs an initial refresh and then polls until ctx is cancelled.
// A failed initial refresh is logged, not fatal; the cache serves zero
// values until the next successful tick.
func (cc *ContactCache) Start(ctx context.Context) {
    if err := cc.Refresh(ctx); err != nil {
        cc.log.Warnw("initial contact refresh failed", "err", err)
    }
    go func() {
        t := time.NewTicker(cc.interval)
        defer t.Stop()
        for {
            select {
            case <-ctx.Done():
                return
            case <-t.C:
                cc.mu.RLock()
                paused := cc.paused
                cc.mu.RUnlock()
                if paused {
                    continue
                }
                if err := cc.Refresh(ctx); err != nil {
                    cc.log.Warnw("contact refresh failed", "err", err)
                }
            }
        }
    }()
}

// Refresh reloads both the contact singleton and the social links.  The
// cache is only replaced when both reads succeed.
func (cc *ContactCache) Refresh(ctx context.Context) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()

    info, err := cc.repo.GetInfo(ctx)
    if err != nil {
        return err
    }
    social, err := cc.repo.ListSocial(ctx)
    if err != nil {
        return err
    }

    cc.mu.Lock()
    cc.info = *info
    cc.social = social
    cc.mu.Unlock()
    return nil
}

// Pause stops background refreshes until Resume is called.
func (cc *ContactCache) Pause() {
    cc.mu.Lock()
    cc.paused = true
    cc.mu.Unlock()
}

// Resume re-enables polling and refreshes immediately so the cache picks
// up whatever was written while paused.
func (cc *ContactCache) Resume(ctx context.Context) {
    cc.mu.Lock()
    cc.paused = false
    cc.mu.Unlock()
    if err := cc.Refresh(ctx); err != nil {
        cc.log.Warnw("contact refresh on resume failed", "err", err)
    }
}

// Snapshot returns the cached contact info and social links.  The slice is
// copied so callers can filter it without racing the refresher.
func (cc *ContactCache) Snapshot() (model.ContactInfo, []model.SocialLink) {
    cc.mu.RLock()
    defer cc.mu.RUnlock()
    social := make([]model.SocialLink, len(cc.social))
    copy(social, cc.social)
    return cc.info, social
}
