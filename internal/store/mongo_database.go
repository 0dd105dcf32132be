package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/models"
)

var (
	usersCollection = models.User{}.TableName()
	blogsCollection = models.Blog{}.TableName()
)

// MongoDB is the document-store backend: users and blogs collections in
// one database. Users reference their blogs by ObjectID and blogs
// reference their owner the same way.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to the deployment at cfg.DSN, pings the primary
// and selects the cfg.Name database.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongodb")
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongodb (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to mongodb successfully")

	m := newMongoDB(client.Database(cfg.Name), log)
	m.client = client

	return m, nil
}

func newMongoDB(db *mongo.Database, log *logger.Logger) *MongoDB {
	return &MongoDB{db: db, logger: log}
}

// EnsureIndexes creates the unique username index. It is idempotent.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Msg("error creating username index")
		return fmt.Errorf("error creating username index: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// objectIDFormat is the [IDFormat] of the document store.
type objectIDFormat struct{}

func (objectIDFormat) NewID() string {
	return primitive.NewObjectID().Hex()
}

func (objectIDFormat) Valid(id string) bool {
	return primitive.IsValidObjectID(id)
}

type userDocument struct {
	ID           primitive.ObjectID   `bson:"_id"`
	Username     string               `bson:"username"`
	Name         string               `bson:"name"`
	PasswordHash string               `bson:"passwordHash"`
	Blogs        []primitive.ObjectID `bson:"blogs"`
	CreatedAt    time.Time            `bson:"createdAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Blogs:        []models.BlogRef{},
		CreatedAt:    d.CreatedAt,
	}
}

type blogDocument struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Title     string              `bson:"title"`
	Author    string              `bson:"author"`
	URL       string              `bson:"url"`
	Likes     int64               `bson:"likes"`
	User      *primitive.ObjectID `bson:"user,omitempty"`
	CreatedAt time.Time           `bson:"createdAt"`
}

func (d blogDocument) toModel() models.Blog {
	blog := models.Blog{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		URL:       d.URL,
		Likes:     d.Likes,
		CreatedAt: d.CreatedAt,
	}
	if d.User != nil {
		blog.UserID = d.User.Hex()
		blog.User = &models.UserSummary{ID: blog.UserID}
	}

	return blog
}
