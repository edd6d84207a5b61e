// Package app wires configuration, storage backends and services into the
// console.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/insurance-system/internal/cli"
	"github.com/99minutos/insurance-system/internal/core/domain"
	"github.com/99minutos/insurance-system/internal/core/ports"
	"github.com/99minutos/insurance-system/internal/core/service"
	"github.com/99minutos/insurance-system/internal/infrastructure/config"
	"github.com/99minutos/insurance-system/internal/infrastructure/db/memory"
	mongostore "github.com/99minutos/insurance-system/internal/infrastructure/db/mongo"
	redisstore "github.com/99minutos/insurance-system/internal/infrastructure/db/redis"
	opshttp "github.com/99minutos/insurance-system/internal/infrastructure/http"
	"github.com/99minutos/insurance-system/internal/infrastructure/http/handlers"
	"github.com/99minutos/insurance-system/internal/infrastructure/storage/jsonfile"
)

// repositories is the storage a backend provides.
type repositories struct {
	users     ports.AuthRepository
	customers ports.CustomerRepository
	admins    ports.AdminRepository
	claims    ports.ClaimRepository
	audit     ports.AuditLog
}

// Container holds the wired services and everything that must be closed.
type Container struct {
	Services cli.Services
	Ops      *opshttp.Server

	closers []func(context.Context) error
	log     zerolog.Logger
}

// Build connects the configured backends and wires the services. In-memory
// stores are used for anything not configured.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Container, error) {
	c := &Container{log: log}
	checks := []handlers.Check{handlers.SnapshotDirCheck(cfg.DataFile)}

	repos := repositories{
		users:     memory.NewUserRepository(),
		customers: memory.NewCustomerRepository(),
		admins:    memory.NewAdminRepository(),
		claims:    memory.NewClaimRepository(),
		audit:     memory.NewAuditLog(),
	}
	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, client.Disconnect)

		store, err := mongostore.NewStore(ctx, db)
		if err != nil {
			c.Close(ctx)
			return nil, err
		}
		repos = repositories{
			users:     store.Users,
			customers: store.Customers,
			admins:    store.Admins,
			claims:    store.Claims,
			audit:     store.Audit,
		}
		checks = append(checks, handlers.MongoCheck(db))
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb repositories")
	}

	var sessions ports.SessionStore = memory.NewSessionStore()
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			c.Close(ctx)
			return nil, err
		}
		c.closers = append(c.closers, func(context.Context) error { return rdb.Close() })
		sessions = redisstore.NewSessionStore(rdb, cfg.SessionTTL)
		checks = append(checks, handlers.RedisCheck(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
	}

	auth := service.NewAuthService(repos.users, sessions, repos.audit, cfg.JWTSecret, cfg.SessionTTL,
		log.With().Str("component", "auth").Logger())
	c.Services = cli.Services{
		Auth: auth,
		Customers: service.NewCustomerService(repos.customers, repos.claims, jsonfile.NewSnapshotStore(cfg.DataFile), repos.audit,
			log.With().Str("component", "customer").Logger()),
		Admin: service.NewAdminService(auth, repos.users, repos.admins, repos.customers, repos.claims, repos.audit,
			log.With().Str("component", "admin").Logger()),
		Staff: service.NewStaffService(repos.users, repos.customers, repos.claims, repos.audit,
			log.With().Str("component", "staff").Logger()),
	}

	if err := seedAdmin(ctx, cfg.Seed, auth, repos.admins, log); err != nil {
		c.Close(ctx)
		return nil, err
	}

	if cfg.OpsAddr != "" {
		c.Ops = opshttp.NewServer(cfg.OpsAddr, log.With().Str("component", "ops").Logger(), checks...)
	}
	return c, nil
}

// seedAdmin creates the bootstrap admin account. An existing account is left
// as it is.
func seedAdmin(ctx context.Context, seed config.SeedConfig, auth ports.AuthService, admins ports.AdminRepository, log zerolog.Logger) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	user, err := auth.Register(ctx, seed.AdminEmail, seed.AdminPassword, domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		log.Debug().Str("email", seed.AdminEmail).Msg("seed admin already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	admin := &domain.Admin{
		UserID:      user.ID,
		Name:        domain.NewCustomer(user.Email).Name,
		Email:       user.Email,
		AccessLevel: domain.DefaultAccessLevel,
		CreatedAt:   time.Now().UTC(),
	}
	if err := admins.Save(ctx, admin); err != nil {
		return fmt.Errorf("seed admin profile: %w", err)
	}
	log.Info().Str("email", user.Email).Msg("seed admin created")
	return nil
}

// Close releases backend connections in reverse order of creation.
func (c *Container) Close(ctx context.Context) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			c.log.Warn().Err(err).Msg("close backend")
		}
	}
	c.closers = nil
}
