package dto

import (
	"portfolio/internal/domains/post/model"
	"portfolio/shared"
	gDto "portfolio/shared/dto"
	gModel "portfolio/shared/model"
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of other characters into one dash.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

type CreatePostRequest struct {
	Title      string `json:"title"       validate:"required,max=200"`
	Excerpt    string `json:"excerpt"     validate:"required,max=500"`
	Content    string `json:"content"     validate:"required"`
	Author     string `json:"author"      validate:"required,max=100"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
	ReadTime   string `json:"read_time"   validate:"omitempty,max=20"`
}

func (c *CreatePostRequest) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Excerpt = strings.TrimSpace(c.Excerpt)
	c.Content = strings.TrimSpace(c.Content)
	c.Author = strings.TrimSpace(c.Author)
	c.CoverImage = strings.TrimSpace(c.CoverImage)
	c.ReadTime = strings.TrimSpace(c.ReadTime)
}

func (c *CreatePostRequest) ToModel() model.Post {
	return model.Post{
		Title:      c.Title,
		Slug:       Slugify(c.Title),
		Excerpt:    c.Excerpt,
		Content:    c.Content,
		Author:     c.Author,
		CoverImage: gDto.Text(c.CoverImage).Optional(),
		ReadTime:   gDto.Text(c.ReadTime).Optional(),
		Timestamps: gModel.NewTimestamps(),
	}
}

type PostSummary struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Excerpt    string  `json:"excerpt"`
	CoverImage *string `json:"cover_image"`
	Author     string  `json:"author"`
	ReadTime   *string `json:"read_time"`
	gDto.Timestamps
}

func (r *PostSummary) FromModel(model model.Post) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.CoverImage = model.CoverImage
	r.Author = model.Author
	r.ReadTime = model.ReadTime
	r.Timestamps.FromModel(model.Timestamps)
}

type PostResponse struct {
	PostSummary
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
}

func (r *PostResponse) FromModel(model model.Post, html string) {
	r.PostSummary.FromModel(model)
	r.Content = model.Content
	r.ContentHTML = html
}

type GetPostsResponse struct {
	Posts     []PostSummary `json:"posts"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostSummary, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}
