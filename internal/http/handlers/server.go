package handlers

import (
	"time"

	"github.com/grocery-tracker/grocery-tracker/internal/auth"
	"github.com/grocery-tracker/grocery-tracker/internal/redissvc"
	repo "github.com/grocery-tracker/grocery-tracker/internal/repo"
)

var (
	productRepo repo.ProductRepository
	saleRepo    repo.SaleRepository
	userRepo    repo.UserRepository
	statsRepo   repo.StatsRepository

	guard    *auth.Guard
	redisSvc *redissvc.RedisService

	loginMaxFailures = 5
	loginLockout     = 15 * time.Minute
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

func SetGuard(g *auth.Guard) {
	guard = g
}

// SetRedisService wires the optional Redis client used for login lockout.
// Leaving it unset disables lockout tracking.
func SetRedisService(rs *redissvc.RedisService) {
	redisSvc = rs
}

func SetLoginPolicy(maxFailures int, lockout time.Duration) {
	loginMaxFailures = maxFailures
	loginLockout = lockout
}
