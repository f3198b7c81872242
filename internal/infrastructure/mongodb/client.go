package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/empleados-api/pkg/config"
)

// Nombres de colecciones.
const (
	usersCollection     = "users"
	employeesCollection = "employees"
)

// Connect crea el cliente de MongoDB, verifica la conexión con ping y
// devuelve el handle de base de datos. El cliente vive del arranque al
// apagado del proceso.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices únicos que cierran la carrera
// check-then-insert de los pre-checks de duplicado:
//   - users.email único
//   - employees.(email, createdBy) único compuesto
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("índice users.email: %w", err)
	}
	_, err = db.Collection(employeesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "createdBy", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email_created_by"),
	})
	if err != nil {
		return fmt.Errorf("índice employees.(email, createdBy): %w", err)
	}
	return nil
}
