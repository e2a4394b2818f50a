package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config selects the Firebase project and which clients to create.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // Path to service account JSON (optional)
	EnableAuth                   bool
	EnableFirestore              bool
}

// Clients holds initialized Firebase clients. Disabled clients are nil.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// InitializeClients sets up a Firebase app and the clients enabled in cfg.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	clients := &Clients{}
	if cfg.EnableAuth {
		if clients.Auth, err = fbApp.Auth(ctx); err != nil {
			return nil, fmt.Errorf("firebase auth: %w", err)
		}
	}
	if cfg.EnableFirestore {
		if clients.Firestore, err = fbApp.Firestore(ctx); err != nil {
			return nil, fmt.Errorf("firestore: %w", err)
		}
	}
	return clients, nil
}

func clientOptions(cfg Config) ([]option.ClientOption, error) {
	if cfg.GoogleApplicationCredentials == "" {
		return nil, nil
	}
	creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return []option.ClientOption{option.WithCredentialsJSON(creds)}, nil
}

// Close closes the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
