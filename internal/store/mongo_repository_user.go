package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/models"
)

// mongoUserRepository is the document-store implementation of
// [UserRepository]. Username uniqueness relies on the index created by
// [MongoDB.EnsureIndexes].
type mongoUserRepository struct {
	users *mongo.Collection
	blogs *mongo.Collection
}

// NewMongoUserRepository constructs a [UserRepository] over m.
func NewMongoUserRepository(m *MongoDB) UserRepository {
	m.logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		users: m.db.Collection(usersCollection),
		blogs: m.db.Collection(blogsCollection),
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Blogs:        []primitive.ObjectID{},
		CreatedAt:    now(),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug().Str("func", "*mongoUserRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return r.findUser(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, bson.M{"username": username})
}

func (r *mongoUserRepository) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc userDocument
	err := r.users.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.findUser").Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user := doc.toModel()
	for _, blogID := range doc.Blogs {
		user.Blogs = append(user.Blogs, models.BlogRef{ID: blogID.Hex()})
	}

	return user, nil
}

// ListUsers returns all users with their Blogs populated from the blogs
// collection. References to blogs that no longer exist are skipped.
func (r *mongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.ListUsers").Msg("failed to decode users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	blogIDs := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		blogIDs = append(blogIDs, doc.Blogs...)
	}

	refs, err := r.blogRefs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		user := doc.toModel()
		for _, blogID := range doc.Blogs {
			if ref, ok := refs[blogID]; ok {
				user.Blogs = append(user.Blogs, ref)
			}
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *mongoUserRepository) blogRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.BlogRef, error) {
	log := logger.FromContext(ctx)

	refs := make(map[primitive.ObjectID]models.BlogRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	cursor, err := r.blogs.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.blogRefs").Msg("failed to query blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []blogDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.blogRefs").Msg("failed to decode blogs")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for _, doc := range docs {
		refs[doc.ID] = doc.toModel().Ref()
	}

	return refs, nil
}
