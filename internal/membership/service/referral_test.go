package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateReferral(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.member(t, "ada")
	bob := f.member(t, "bob")

	t.Run("starts sent", func(t *testing.T) {
		ref, err := f.referrals.CreateReferral(ctx, ada.ID, NewReferral{
			ReceivedByID: bob.ID, Description: "needs a VPN", ContactInfo: "carol@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, domain.ReferralSent, ref.Status)
		require.Equal(t, ada.ID, ref.SentByID)
		require.Equal(t, bob.ID, ref.ReceivedByID)
		require.Equal(t, "ada", ref.SentByName)
		require.Equal(t, "bob", ref.ReceivedByName)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.referrals.CreateReferral(ctx, "", NewReferral{ReceivedByID: bob.ID, Description: "d", ContactInfo: "c"})
		require.ErrorIs(t, err, ErrActorRequired)

		_, err = f.referrals.CreateReferral(ctx, ada.ID, NewReferral{ReceivedByID: bob.ID, Description: "d"})
		require.ErrorIs(t, err, ErrInvalidReferral)

		_, err = f.referrals.CreateReferral(ctx, ada.ID, NewReferral{ReceivedByID: "01HZZZZZZZZZZZZZZZZZZZZZZZ", Description: "d", ContactInfo: "c"})
		require.ErrorIs(t, err, ErrReceiverNotFound)

		_, err = f.referrals.CreateReferral(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ", NewReferral{ReceivedByID: bob.ID, Description: "d", ContactInfo: "c"})
		require.ErrorIs(t, err, ErrActorRequired)
	})

	t.Run("cannot refer yourself", func(t *testing.T) {
		_, err := f.referrals.CreateReferral(ctx, ada.ID, NewReferral{ReceivedByID: " " + ada.ID, Description: "d", ContactInfo: "c"})
		require.ErrorIs(t, err, ErrSelfReferral)

		lists, err := f.referrals.ListReferrals(ctx, ada.ID)
		require.NoError(t, err)
		for _, sent := range lists.Sent {
			for _, received := range lists.Received {
				require.NotEqual(t, sent.ID, received.ID)
			}
		}
	})
}

func TestListReferrals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.member(t, "ada")
	bob := f.member(t, "bob")
	cy := f.member(t, "cy")

	send := func(from, to string, desc string) {
		_, err := f.referrals.CreateReferral(ctx, from, NewReferral{ReceivedByID: to, Description: desc, ContactInfo: "x"})
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
	}
	send(ada.ID, bob.ID, "one")
	send(ada.ID, cy.ID, "two")
	send(bob.ID, ada.ID, "three")

	lists, err := f.referrals.ListReferrals(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, lists.Sent, 2)
	require.Equal(t, "two", lists.Sent[0].Description)
	require.Equal(t, "cy", lists.Sent[0].ReceivedByName)
	require.Equal(t, "one", lists.Sent[1].Description)
	require.Len(t, lists.Received, 1)
	require.Equal(t, "bob", lists.Received[0].SentByName)

	lists, err = f.referrals.ListReferrals(ctx, cy.ID)
	require.NoError(t, err)
	require.Empty(t, lists.Sent)
	require.Len(t, lists.Received, 1)

	_, err = f.referrals.ListReferrals(ctx, "")
	require.ErrorIs(t, err, ErrActorRequired)
}

func TestUpdateReferralStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.member(t, "ada")
	bob := f.member(t, "bob")

	ref, err := f.referrals.CreateReferral(ctx, ada.ID, NewReferral{ReceivedByID: bob.ID, Description: "d", ContactInfo: "c"})
	require.NoError(t, err)

	t.Run("any status may follow any other", func(t *testing.T) {
		for _, next := range []domain.ReferralStatus{
			domain.ReferralClosed, domain.ReferralSent, domain.ReferralRejected, domain.ReferralNegotiating,
		} {
			got, err := f.referrals.UpdateReferralStatus(ctx, bob.ID, ref.ID, string(next))
			require.NoError(t, err)
			require.Equal(t, next, got.Status)
		}
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.referrals.UpdateReferralStatus(ctx, bob.ID, ref.ID, "DONE")
		require.ErrorIs(t, err, ErrInvalidReferralStatus)

		_, err = f.referrals.UpdateReferralStatus(ctx, bob.ID, "", "SENT")
		require.ErrorIs(t, err, ErrMissingReferralID)

		_, err = f.referrals.UpdateReferralStatus(ctx, bob.ID, "01HZZZZZZZZZZZZZZZZZZZZZZZ", "SENT")
		require.ErrorIs(t, err, ErrReferralNotFound)
	})
}
