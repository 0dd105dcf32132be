package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bloglist/models"
)

var (
	usersTable = models.User{}.TableName()
	blogsTable = models.Blog{}.TableName()
)

const userBlogsTable = "user_blogs"

var (
	userColumns = []string{"id", "username", "name", "password_hash", "created_at"}

	blogWithOwnerColumns = []string{
		"b.id", "b.title", "b.author", "b.url", "b.likes", "b.user_id", "b.created_at",
		"u.username", "u.name",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql()
}

// buildListUserBlogsQuery selects the reverse index of every user joined
// with the referenced blog fields.
func buildListUserBlogsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("ub.user_id", "b.id", "b.title", "b.author", "b.url", "b.likes").
		From(userBlogsTable + " ub").
		Join(blogsTable + " b ON b.id = ub.blog_id").
		OrderBy("b.created_at", "b.id").
		ToSql()
}

func selectBlogsWithOwner(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(blogWithOwnerColumns...).
		From(blogsTable + " b").
		LeftJoin(usersTable + " u ON u.id = b.user_id")
}

func buildListBlogsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectBlogsWithOwner(b).
		OrderBy("b.created_at", "b.id").
		ToSql()
}

func buildSelectBlogQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return selectBlogsWithOwner(b).
		Where(sq.Eq{"b.id": id}).
		ToSql()
}

func buildInsertBlogQuery(b sq.StatementBuilderType, blog models.Blog) (string, []any, error) {
	var owner any
	if blog.UserID != "" {
		owner = blog.UserID
	}

	return b.Insert(blogsTable).
		Columns("id", "title", "author", "url", "likes", "user_id", "created_at").
		Values(blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, owner, blog.CreatedAt).
		ToSql()
}

func buildInsertUserBlogQuery(b sq.StatementBuilderType, userID, blogID string) (string, []any, error) {
	return b.Insert(userBlogsTable).
		Columns("user_id", "blog_id").
		Values(userID, blogID).
		ToSql()
}

func buildUpdateBlogQuery(b sq.StatementBuilderType, blog models.Blog) (string, []any, error) {
	return b.Update(blogsTable).
		Set("title", blog.Title).
		Set("author", blog.Author).
		Set("url", blog.URL).
		Set("likes", blog.Likes).
		Where(sq.Eq{"id": blog.ID}).
		ToSql()
}

func buildDeleteBlogQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(blogsTable).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
}

func buildDeleteUserBlogQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(userBlogsTable).
		Where(sq.Eq{"blog_id": id, "user_id": ownerID}).
		ToSql()
}

// now is the creation timestamp source of the SQL repositories.
var now = func() time.Time {
	return time.Now().UTC()
}
