package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"market/internal/domain/entity"
	"market/internal/mocks"
)

// testMocks bundles every repository mock behind a pass-through transaction
// manager so each test wires only the calls it expects.
type testMocks struct {
	users   *mocks.MockUserRepository
	auths   *mocks.MockAuthRepository
	offers  *mocks.MockOfferRepository
	orders  *mocks.MockOrderRepository
	reviews *mocks.MockReviewRepository
	txm     *mocks.MockTransactionManager
	logger  *slog.Logger
}

func newTestMocks(t *testing.T) *testMocks {
	t.Helper()

	m := &testMocks{
		users:   mocks.NewMockUserRepository(t),
		auths:   mocks.NewMockAuthRepository(t),
		offers:  mocks.NewMockOfferRepository(t),
		orders:  mocks.NewMockOrderRepository(t),
		reviews: mocks.NewMockReviewRepository(t),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	m.txm = mocks.NewMockTransactionManager(&mocks.MockRepositoryFactory{
		Users:   m.users,
		Auths:   m.auths,
		Offers:  m.offers,
		Orders:  m.orders,
		Reviews: m.reviews,
	})

	return m
}

func businessUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:      id,
		Email:   "biz@example.com",
		Name:    "Betty Business",
		Profile: &entity.Profile{UserID: id, Type: entity.RoleBusiness},
	}
}

func customerUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:      id,
		Email:   "cust@example.com",
		Name:    "Carl Customer",
		Profile: &entity.Profile{UserID: id, Type: entity.RoleCustomer},
	}
}

func sampleOffer(ownerID uuid.UUID) *entity.Offer {
	offer := &entity.Offer{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       "Logo design",
		Description: "Clean vector logos",
		Details: []*entity.OfferDetail{
			{
				ID:                 uuid.New(),
				Title:              "Basic logo",
				Revisions:          2,
				DeliveryTimeInDays: 5,
				Price:              decimal.NewFromInt(100),
				Features:           []string{"1 concept"},
				OfferType:          entity.TierBasic,
			},
			{
				ID:                 uuid.New(),
				Title:              "Standard logo",
				Revisions:          5,
				DeliveryTimeInDays: 7,
				Price:              decimal.NewFromInt(200),
				Features:           []string{"3 concepts"},
				OfferType:          entity.TierStandard,
			},
			{
				ID:                 uuid.New(),
				Title:              "Premium logo",
				Revisions:          entity.UnlimitedRevisions,
				DeliveryTimeInDays: 10,
				Price:              decimal.NewFromInt(500),
				Features:           []string{"5 concepts", "source files"},
				OfferType:          entity.TierPremium,
			},
		},
	}
	for _, d := range offer.Details {
		d.OfferID = offer.ID
	}

	return offer
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
