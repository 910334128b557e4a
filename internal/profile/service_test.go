package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpendCredit_StopsAtZero(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewInMemoryRepository())

	require.NoError(t, svc.Ensure(ctx, "u1"))

	// Burn the starter credits
	for i := StarterCredits - 1; i >= 0; i-- {
		remaining, err := svc.SpendCredit(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, i, remaining)
	}

	_, err := svc.SpendCredit(ctx, "u1")
	require.ErrorIs(t, err, ErrInsufficientCredits)
}

func TestActivate_GrantsCreditsAndUnlocks(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewInMemoryRepository())

	require.NoError(t, svc.Ensure(ctx, "u1"))
	require.ErrorIs(t, svc.RequireActivated(ctx, "u1"), ErrActivationRequired)

	require.NoError(t, svc.Activate(ctx, "u1"))

	require.NoError(t, svc.RequireActivated(ctx, "u1"))

	p, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, p.Activated)
	require.Equal(t, StarterCredits+ActivationCredits, p.Credits)
	require.NotNil(t, p.ActivatedAt)
}

func TestActivate_SecondTimeKeepsActivatedAt(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewInMemoryRepository())

	require.NoError(t, svc.Ensure(ctx, "u1"))
	require.NoError(t, svc.Activate(ctx, "u1"))

	first, err := svc.Get(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, svc.Activate(ctx, "u1"))

	second, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, first.ActivatedAt, second.ActivatedAt)
}

func TestGrantCredits_RejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewInMemoryRepository())

	require.Error(t, svc.GrantCredits(ctx, "u1", 0))
	require.Error(t, svc.GrantCredits(ctx, "u1", -5))
}

func TestFindByStripeCustomer(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewInMemoryRepository())

	require.NoError(t, svc.Ensure(ctx, "u1"))
	require.NoError(t, svc.AttachStripeCustomer(ctx, "u1", "cus_123"))

	p, err := svc.FindByStripeCustomer(ctx, "cus_123")
	require.NoError(t, err)
	require.Equal(t, "u1", p.UserID)

	_, err = svc.FindByStripeCustomer(ctx, "cus_missing")
	require.Error(t, err)
}
