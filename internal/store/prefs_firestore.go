package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
)

type firestorePrefStore struct {
	collection *firestore.CollectionRef
}

// NewFirestorePrefStore backs the preference side-table with one document per
// key, for deployments where preferences should outlive the process.
func NewFirestorePrefStore(client *firestore.Client) *firestorePrefStore {
	return &firestorePrefStore{
		collection: client.Collection("preferences"),
	}
}

func (s *firestorePrefStore) Get(ctx context.Context, key string) (string, bool, error) {
	snap, err := s.collection.Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.NewStorageError("prefs.get", err.Error())
	}
	value, _ := snap.Data()["value"].(string)
	return value, true, nil
}

func (s *firestorePrefStore) Set(ctx context.Context, key, value string) error {
	_, err := s.collection.Doc(key).Set(ctx, map[string]interface{}{
		"value": value,
	})
	if err != nil {
		return errs.NewStorageError("prefs.set", err.Error())
	}
	return nil
}

func (s *firestorePrefStore) Delete(ctx context.Context, key string) error {
	_, err := s.collection.Doc(key).Delete(ctx)
	if err != nil {
		return errs.NewStorageError("prefs.delete", err.Error())
	}
	return nil
}
