// Package docstore keeps recipes, reviews, comments, saved items and chats in Cloud Firestore.
// It is selected with store.content = "firestore".
package docstore

import (
	"context"
	"log/slog"

	"makan/config"
	"makan/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names.
const (
	recipesCollection    = "recipes"
	reviewsCollection    = "reviews"
	commentsCollection   = "comments"
	savedItemsCollection = "saved_items"
	chatsCollection      = "chats"
	messagesCollection   = "messages"
)

// searchScanLimit bounds how many recent documents a substring search inspects.
// Firestore has no substring operator, so matching happens in process.
const searchScanLimit = 500

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient opens a Firestore client and closes it when the app stops.
func NewClient(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore.projectId is required when store.content is firestore")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(context.Background(), cfg.ProjectID, databaseID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.Close(client, "firestore client")
		},
	})

	params.Logger.Info("Firestore client initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("database_id", databaseID),
	)

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
