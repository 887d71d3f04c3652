package main

import (
	"context"
	"log/slog"
	"os"

	"makan/config"
	"makan/internal/delivery"
	"makan/internal/delivery/api"
	apimiddleware "makan/internal/delivery/api/middleware"
	"makan/internal/delivery/api/router/handler"
	"makan/internal/delivery/middleware"
	"makan/internal/domain/repository"
	"makan/internal/infra/auth"
	logs "makan/internal/infra/log"
	"makan/internal/infra/mail"
	"makan/internal/infra/persistence/docstore"
	"makan/internal/infra/persistence/postgres"
	"makan/internal/infra/pubsub"
	"makan/internal/infra/qrcode"
	"makan/internal/infra/storage"
	"makan/internal/infra/textgen"
	"makan/internal/infra/vision"
	"makan/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAccountRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewDeviceRepository,
			newContentRepositories,
		),
	)
}

// contentRepositories are the stores that can live in either Postgres or Firestore.
type contentRepositories struct {
	fx.Out

	RecipeRepo  repository.RecipeRepository
	ReviewRepo  repository.ReviewRepository
	CommentRepo repository.CommentRepository
	ChatRepo    repository.ChatRepository
	SavedRepo   repository.SavedItemRepository
}

func newContentRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, db *gorm.DB) (contentRepositories, error) {
	switch cfg.Store.Content {
	case config.ContentStorePostgres:
		return contentRepositories{
			RecipeRepo:  postgres.NewRecipeRepository(db),
			ReviewRepo:  postgres.NewReviewRepository(db),
			CommentRepo: postgres.NewCommentRepository(db),
			ChatRepo:    postgres.NewChatRepository(db),
			SavedRepo:   postgres.NewSavedItemRepository(db),
		}, nil
	case config.ContentStoreFirestore:
		client, err := docstore.NewClient(docstore.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return contentRepositories{}, err
		}

		return contentRepositories{
			RecipeRepo:  docstore.NewRecipeRepository(client),
			ReviewRepo:  docstore.NewReviewRepository(client),
			CommentRepo: docstore.NewCommentRepository(client),
			ChatRepo:    docstore.NewChatRepository(client),
			SavedRepo:   docstore.NewSavedItemRepository(client),
		}, nil
	default:
		return contentRepositories{}, errors.Errorf("unsupported content store: %s", cfg.Store.Content)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.New,
			vision.NewVisionService,
			textgen.NewTextGenerator,
			mail.NewMailer,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewProfileService,
			impl.NewRecipeService,
			impl.NewReviewService,
			impl.NewCommentService,
			impl.NewSearchService,
			impl.NewSavedService,
			impl.NewChatService,
			impl.NewScannerService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewIdentityCacheMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewRecipeHandler,
			handler.NewReviewHandler,
			handler.NewCommentHandler,
			handler.NewSearchHandler,
			handler.NewSavedHandler,
			handler.NewChatHandler,
			handler.NewScannerHandler,
			handler.NewDeviceHandler,
			handler.NewImageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
