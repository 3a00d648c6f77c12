package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market/internal/delivery/http/router/handler"
	"market/internal/mocks"
)

func newOfferHandler(t *testing.T) (*handler.OfferHandler, *mocks.MockOfferUsecase) {
	offerUC := mocks.NewMockOfferUsecase(t)
	h := handler.NewOfferHandler(handler.OfferHandlerParams{
		OfferUC: offerUC,
		Logger:  discardLogger(),
	})

	return h, offerUC
}

func TestOfferHandler_CreateOffer(t *testing.T) {
	t.Run("rejects an empty title without calling the usecase", func(t *testing.T) {
		h, _ := newOfferHandler(t)

		c, rec := newRequestContext(http.MethodPost, "/api/offers/", `{"title":"","description":"d","details":[]}`)
		authenticate(c, uuid.New())

		require.NoError(t, h.CreateOffer(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("rejects a null body without calling the usecase", func(t *testing.T) {
		h, _ := newOfferHandler(t)

		c, rec := newRequestContext(http.MethodPost, "/api/offers/", `null`)
		authenticate(c, uuid.New())

		require.NoError(t, h.CreateOffer(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
