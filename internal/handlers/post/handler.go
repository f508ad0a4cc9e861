package post

import (
	"net/http"
	"portfolio/infras/otel"
	"portfolio/internal/domains/post/model/dto"
	"portfolio/internal/domains/post/service"
	"portfolio/shared/constant"
	gDto "portfolio/shared/dto"
	"portfolio/shared/validator"
	"portfolio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Post
	otel    otel.Otel
}

func New(service service.Post, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/posts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/{slug}", handler.GetPostBySlug)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/posts", handler.CreatePost)
}

// CreatePost publishes a blog post.
// @Summary Create a blog post
// @Description Publish a new blog post. The slug is derived from the title.
// @Tags Post
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Data[dto.PostResponse] "Post created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	req := dto.CreatePostRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Debug().Err(err).Msg("invalid post request")

		response.WithError(writer, err)

		return
	}

	post, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Post created")

	response.WithJSON(writer, http.StatusCreated, post)
}

// GetPosts lists blog posts.
// @Summary List blog posts
// @Description List blog posts with pagination and sorting.
// @Tags Post
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPostsResponse] "List of posts"
// @Failure 500 {object} response.Error
// @Router /v1/posts [get]
func (handler *Handler) GetPosts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	posts, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, posts)
}

// GetPostBySlug returns one post with its rendered body.
// @Summary Get a blog post
// @Description Get a blog post by slug, including its content rendered to HTML.
// @Tags Post
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{slug} [get]
func (handler *Handler) GetPostBySlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostBySlug")
	defer scope.End()

	post, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamSlug))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, post)
}
