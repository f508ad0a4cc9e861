package model

import "portfolio/shared/model"

const (
	TableName  = "blog_posts"
	EntityName = "post"

	FieldID         = "id"
	FieldTitle      = "title"
	FieldSlug       = "slug"
	FieldExcerpt    = "excerpt"
	FieldContent    = "content"
	FieldCoverImage = "cover_image"
	FieldAuthor     = "author"
	FieldReadTime   = "read_time"
)

type Post struct {
	ID         int64   `db:"id"          insert:"-"`
	Title      string  `db:"title"`
	Slug       string  `db:"slug"`
	Excerpt    string  `db:"excerpt"`
	Content    string  `db:"content"`
	CoverImage *string `db:"cover_image"`
	Author     string  `db:"author"`
	ReadTime   *string `db:"read_time"`
	model.Timestamps
}
