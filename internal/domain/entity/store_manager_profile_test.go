package entity

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreManagerProfile_ApprovalLifecycle(t *testing.T) {
	profile := NewStoreManagerProfile(NewStoreManagerProfileParams{UserID: uuid.New()}, orderTestNow)
	approver := uuid.New()

	assert.Equal(t, StoreNamePlaceholder, profile.StoreName)
	assert.Equal(t, StoreNamePlaceholder, profile.StoreAddress)
	assert.False(t, profile.CanLogin())
	assert.ErrorIs(t, profile.RevokeApproval(orderTestNow), domainerrors.ErrProfileNotApproved)

	require.NoError(t, profile.Approve(approver, orderTestNow))
	assert.True(t, profile.CanLogin())
	assert.Equal(t, approver, *profile.ApprovedBy)

	err := profile.Approve(uuid.New(), orderTestNow)
	require.ErrorIs(t, err, domainerrors.ErrProfileAlreadyApproved)
	assert.Contains(t, err.Error(), "already approved")
	assert.Equal(t, approver, *profile.ApprovedBy)

	require.NoError(t, profile.RevokeApproval(orderTestNow))
	assert.False(t, profile.IsApproved)
	assert.Nil(t, profile.ApprovedBy)
	assert.Nil(t, profile.ApprovedAt)
}

func TestStoreManagerProfile_UpdateStoreDetails(t *testing.T) {
	profile := NewStoreManagerProfile(NewStoreManagerProfileParams{UserID: uuid.New(), StoreName: "Old"}, orderTestNow)

	profile.UpdateStoreDetails("Corner Shop", "", orderTestNow)

	assert.Equal(t, "Corner Shop", profile.StoreName)
	assert.Equal(t, StoreNamePlaceholder, profile.StoreAddress)
}

func TestProduct_Stock(t *testing.T) {
	product := &Product{ID: uuid.New(), Price: decimal.NewFromInt(10), Stock: 2}

	require.NoError(t, product.AddStock(3, orderTestNow))
	assert.Equal(t, 5, product.Stock)
	assert.ErrorIs(t, product.ReduceStock(6, orderTestNow), domainerrors.ErrInsufficientStock)
	require.NoError(t, product.ReduceStock(5, orderTestNow))
	assert.False(t, product.IsInStock())
	assert.ErrorIs(t, product.AddStock(0, orderTestNow), domainerrors.ErrInvalidQuantity)

	err := product.UpdatePrice(decimal.NewFromInt(-1), orderTestNow)
	require.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
	assert.Equal(t, "Price must be positive", err.Error())
}
