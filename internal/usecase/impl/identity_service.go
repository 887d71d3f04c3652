package impl

import (
	"context"
	"log/slog"
	"sync"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	"makan/internal/domain/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultIdentityParallelism = 8

type identityService struct {
	accountRepo repository.AccountRepository
	parallelism int
	logger      *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIdentityService creates a stateless identity resolver.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	parallelism := defaultIdentityParallelism
	if params.Config != nil && params.Config.Identity != nil && params.Config.Identity.Parallelism > 0 {
		parallelism = params.Config.Identity.Parallelism
	}

	return &identityService{
		accountRepo: params.AccountRepo,
		parallelism: parallelism,
		logger:      params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks the identifier up as a personal account, then as a business account,
// and falls back to the anonymous identity.
func (srv *identityService) Resolve(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	cache := deliverycontext.GetIdentityCache(ctx)
	if cache != nil {
		if identity, ok := cache.Get(id); ok {
			return identity, nil
		}
	}

	identity, err := srv.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		cache.Put(identity)
	}

	return identity, nil
}

func (srv *identityService) lookup(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	account, err := srv.accountRepo.FindPersonalByID(ctx, id)
	if err == nil {
		return entity.IdentityOf(account), nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to look up personal account")
	}

	account, err = srv.accountRepo.FindBusinessByID(ctx, id)
	if err == nil {
		return entity.IdentityOf(account), nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to look up business account")
	}

	srv.log(ctx).Debug("Identifier matches no account, using anonymous identity", slog.Any("accountID", id))

	return entity.AnonymousIdentity(id), nil
}

// ResolveMany resolves every distinct identifier once with bounded concurrency.
func (srv *identityService) ResolveMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Identity, error) {
	result := make(map[uuid.UUID]*entity.Identity, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(srv.parallelism)

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		group.Go(func() error {
			identity, err := srv.Resolve(groupCtx, id)
			if err != nil {
				return err
			}

			mu.Lock()
			result[id] = identity
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to resolve identities", slog.Int("count", len(seen)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve identities")
	}

	return result, nil
}
