package store

import (
	"time"

	"github.com/MKhiriev/go-microblog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	usersTable = models.User{}.TableName()
	postsTable = models.Post{}.TableName()
)

// postColumns is the projection shared by GetPost and ListPosts. The owner's
// email comes from a LEFT JOIN and is NULL for a missing owner.
var postColumns = []string{
	"p.id",
	"p.user_id",
	"p.content",
	"p.posted_at",
	"u.email",
}

// queryBuilder renders the statements used by the repositories with the
// placeholder format of the open dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(format sq.PlaceholderFormat) queryBuilder {
	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q queryBuilder) insertUser(user models.User, createdAt time.Time) (string, []any, error) {
	return q.sb.Insert(usersTable).
		Columns("email", "password", "created_at").
		Values(user.Email, user.Password, createdAt).
		Suffix("RETURNING id").
		ToSql()
}

func (q queryBuilder) selectUser(where sq.Eq) (string, []any, error) {
	return q.sb.Select("id", "email", "password", "created_at").
		From(usersTable).
		Where(where).
		ToSql()
}

func (q queryBuilder) insertPost(post models.Post) (string, []any, error) {
	return q.sb.Insert(postsTable).
		Columns("user_id", "content", "posted_at").
		Values(post.UserID, post.Content, post.Timestamp).
		Suffix("RETURNING id").
		ToSql()
}

func (q queryBuilder) selectPosts() sq.SelectBuilder {
	return q.sb.Select(postColumns...).
		From(postsTable + " p").
		LeftJoin(usersTable + " u ON u.id = p.user_id")
}

func (q queryBuilder) getPost(postID int64) (string, []any, error) {
	return q.selectPosts().
		Where(sq.Eq{"p.id": postID}).
		ToSql()
}

func (q queryBuilder) listPosts() (string, []any, error) {
	return q.selectPosts().
		OrderBy("p.id ASC").
		ToSql()
}

func (q queryBuilder) selectPostOwner(postID int64) (string, []any, error) {
	return q.sb.Select("user_id").
		From(postsTable).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

func (q queryBuilder) deletePost(postID int64) (string, []any, error) {
	return q.sb.Delete(postsTable).
		Where(sq.Eq{"id": postID}).
		ToSql()
}
