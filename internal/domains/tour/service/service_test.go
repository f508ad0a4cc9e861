package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/infras/otel/mocks"
	"portfolio/internal/domains/tour/repository"
	"portfolio/internal/domains/tour/service"
	"portfolio/shared/failure"
)

func TestTourService(t *testing.T) {
	repo, err := repository.Load([]byte(`[{"id":"a","title":"A","highlights":["x"]},{"id":"b","title":"B"}]`))
	require.NoError(t, err)

	svc := service.New(repo, mocks.NewOtel())

	all := svc.GetAll(context.Background())
	assert.Equal(t, 2, all.TotalData)

	tour, err := svc.Get(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "B", tour.Title)

	_, err = svc.Get(context.Background(), "zzz")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
