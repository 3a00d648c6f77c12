package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffer_MinPrice(t *testing.T) {
	t.Parallel()

	t.Run("nil without details", func(t *testing.T) {
		t.Parallel()

		offer := &Offer{}
		assert.Nil(t, offer.MinPrice())
		assert.Nil(t, offer.MinDeliveryTime())
	})

	t.Run("picks the lowest tier price", func(t *testing.T) {
		t.Parallel()

		offer := &Offer{Details: []*OfferDetail{
			{Price: decimal.RequireFromString("99.99"), DeliveryTimeInDays: 5, OfferType: TierBasic},
			{Price: decimal.RequireFromString("199.50"), DeliveryTimeInDays: 3, OfferType: TierStandard},
			{Price: decimal.RequireFromString("500.00"), DeliveryTimeInDays: 10, OfferType: TierPremium},
		}}

		minPrice := offer.MinPrice()
		require.NotNil(t, minPrice)
		assert.True(t, minPrice.Equal(decimal.RequireFromString("99.99")))

		minDelivery := offer.MinDeliveryTime()
		require.NotNil(t, minDelivery)
		assert.Equal(t, 3, *minDelivery)
	})

	t.Run("comparison is decimal exact", func(t *testing.T) {
		t.Parallel()

		offer := &Offer{Details: []*OfferDetail{
			{Price: decimal.RequireFromString("0.10"), DeliveryTimeInDays: 1, OfferType: TierBasic},
			{Price: decimal.RequireFromString("0.1000"), DeliveryTimeInDays: 1, OfferType: TierStandard},
			{Price: decimal.RequireFromString("0.11"), DeliveryTimeInDays: 1, OfferType: TierPremium},
		}}

		minPrice := offer.MinPrice()
		require.NotNil(t, minPrice)
		assert.True(t, minPrice.Equal(decimal.RequireFromString("0.1")))
	})
}

func TestOffer_DetailByTier(t *testing.T) {
	t.Parallel()

	basic := &OfferDetail{OfferType: TierBasic}
	offer := &Offer{Details: []*OfferDetail{basic}}

	assert.Same(t, basic, offer.DetailByTier(TierBasic))
	assert.Nil(t, offer.DetailByTier(TierPremium))
}

func TestTierType_IsValid(t *testing.T) {
	t.Parallel()

	for _, tier := range AllTiers {
		assert.True(t, tier.IsValid())
	}
	assert.False(t, TierType("platinum").IsValid())
	assert.False(t, TierType("").IsValid())
}
