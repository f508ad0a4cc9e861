package dto_test

import (
	"testing"

	"portfolio/internal/domains/post/model"
	"portfolio/internal/domains/post/model/dto"
	gModel "portfolio/shared/model"
	"portfolio/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World":                 "hello-world",
		"  Zero Trust, Explained!  ":  "zero-trust-explained",
		"OWASP Top 10 (2025)":         "owasp-top-10-2025",
		"already-a-slug":              "already-a-slug",
		"Ünïcode & symbols":           "n-code-symbols",
		"!!!":                         "",
		"multiple---dashes___and   x": "multiple-dashes-and-x",
	}

	for input, want := range tests {
		assert.Equal(t, want, dto.Slugify(input), input)
	}
}

func TestCreatePostRequest_Validation(t *testing.T) {
	req := dto.CreatePostRequest{Title: " T ", Excerpt: "E", Content: "C", Author: "A", CoverImage: "not a url"}

	err := validator.ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, "Cover image must be a valid URL", err.Error())
	assert.Equal(t, "T", req.Title)

	req.CoverImage = "https://cdn.example.com/cover.png"
	assert.NoError(t, validator.ValidateStruct(&req))

	missing := dto.CreatePostRequest{Title: "T", Excerpt: "E", Content: "C"}
	assert.EqualError(t, validator.ValidateStruct(&missing), "Author is required")
}

func TestCreatePostRequest_ToModel(t *testing.T) {
	req := dto.CreatePostRequest{Title: "My Post", Excerpt: "E", Content: "C", Author: "A", ReadTime: "5 min"}

	post := req.ToModel()

	assert.Equal(t, "my-post", post.Slug)
	require.NotNil(t, post.ReadTime)
	assert.Equal(t, "5 min", *post.ReadTime)
	assert.Nil(t, post.CoverImage)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestGetPostsResponse_FromModels(t *testing.T) {
	posts := []model.Post{
		{ID: 1, Title: "A", Slug: "a", Timestamps: gModel.NewTimestamps()},
	}

	var res dto.GetPostsResponse
	res.FromModels(posts, 21, 10)

	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 21, res.TotalData)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "a", res.Posts[0].Slug)
	assert.NotEmpty(t, res.Posts[0].CreatedAt)
}
