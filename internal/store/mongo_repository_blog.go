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

// mongoBlogRepository is the document-store implementation of
// [BlogRepository].
//
// The blog document and the owner's blogs array are written by two
// separate operations without a transaction, so a failure between them
// leaves the blog without its reverse index entry. The failure is logged
// and returned to the caller.
type mongoBlogRepository struct {
	users *mongo.Collection
	blogs *mongo.Collection
}

// NewMongoBlogRepository constructs a [BlogRepository] over m.
func NewMongoBlogRepository(m *MongoDB) BlogRepository {
	m.logger.Debug().Msg("creating mongo blog repository")
	return &mongoBlogRepository{
		users: m.db.Collection(usersCollection),
		blogs: m.db.Collection(blogsCollection),
	}
}

func (r *mongoBlogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	doc := blogDocument{
		ID:        primitive.NewObjectID(),
		Title:     blog.Title,
		Author:    blog.Author,
		URL:       blog.URL,
		Likes:     blog.Likes,
		CreatedAt: now(),
	}

	var owner primitive.ObjectID
	if blog.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(blog.UserID)
		if err != nil {
			return models.Blog{}, ErrInvalidID
		}
		owner = oid
		doc.User = &owner
	}

	if _, err := r.blogs.InsertOne(ctx, doc); err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.CreateBlog").Msg("failed to insert blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if doc.User != nil {
		_, err := r.users.UpdateByID(ctx, owner, bson.M{"$push": bson.M{"blogs": doc.ID}})
		if err != nil {
			log.Err(err).
				Str("func", "*mongoBlogRepository.CreateBlog").
				Str("blog_id", doc.ID.Hex()).
				Str("user_id", blog.UserID).
				Msg("blog saved but not appended to user")
			return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	created := doc.toModel()
	created.User = nil

	return created, nil
}

func (r *mongoBlogRepository) FindBlogByID(ctx context.Context, id string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Blog{}, ErrInvalidID
	}

	var doc blogDocument
	err = r.blogs.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.FindBlogByID").Str("blog_id", id).Msg("failed to find blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	blogs, err := r.withOwners(ctx, []blogDocument{doc})
	if err != nil {
		return models.Blog{}, err
	}

	return blogs[0], nil
}

func (r *mongoBlogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.blogs.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.ListBlogs").Msg("failed to query blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []blogDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.ListBlogs").Msg("failed to decode blogs")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return r.withOwners(ctx, docs)
}

// withOwners converts docs and fills the owner summaries with one query
// against the users collection.
func (r *mongoBlogRepository) withOwners(ctx context.Context, docs []blogDocument) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	blogs := make([]models.Blog, 0, len(docs))
	ownerIDs := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		blogs = append(blogs, doc.toModel())
		if doc.User != nil {
			ownerIDs = append(ownerIDs, *doc.User)
		}
	}

	if len(ownerIDs) == 0 {
		return blogs, nil
	}

	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ownerIDs}})
	if err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.withOwners").Msg("failed to query owners")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var owners []userDocument
	if err = cursor.All(ctx, &owners); err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.withOwners").Msg("failed to decode owners")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	summaries := make(map[string]*models.UserSummary, len(owners))
	for _, owner := range owners {
		summaries[owner.ID.Hex()] = owner.toModel().Summary()
	}

	for i := range blogs {
		if summary, ok := summaries[blogs[i].UserID]; ok {
			blogs[i].User = summary
		}
	}

	return blogs, nil
}

func (r *mongoBlogRepository) UpdateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(blog.ID)
	if err != nil {
		return models.Blog{}, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"title":  blog.Title,
		"author": blog.Author,
		"url":    blog.URL,
		"likes":  blog.Likes,
	}}

	result, err := r.blogs.UpdateByID(ctx, oid, update)
	if err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.UpdateBlog").Str("blog_id", blog.ID).Msg("failed to update blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return models.Blog{}, ErrBlogNotFound
	}

	return r.FindBlogByID(ctx, blog.ID)
}

func (r *mongoBlogRepository) DeleteBlog(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return ErrBlogNotFound
	}

	result, err := r.blogs.DeleteOne(ctx, bson.M{"_id": oid, "user": owner})
	if err != nil {
		log.Err(err).Str("func", "*mongoBlogRepository.DeleteBlog").Str("blog_id", id).Msg("failed to delete blog")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.DeletedCount == 0 {
		return ErrBlogNotFound
	}

	if _, err = r.users.UpdateByID(ctx, owner, bson.M{"$pull": bson.M{"blogs": oid}}); err != nil {
		log.Err(err).
			Str("func", "*mongoBlogRepository.DeleteBlog").
			Str("blog_id", id).
			Str("user_id", ownerID).
			Msg("blog deleted but still referenced by user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
