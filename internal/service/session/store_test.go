package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

func TestStore_UnknownSessionIsEmptyDraft(t *testing.T) {
	store := NewStore()

	draft, terms := store.Get("nope")

	assert.Equal(t, domain.BookingDraft{}, draft)
	assert.False(t, terms)
}

func TestStore_UpdateMerges(t *testing.T) {
	store := NewStore()

	store.Update("s1", domain.DraftPatch{
		CustomerName: ptr.Ptr("Anita"),
		PickupDate:   ptr.Ptr(types.DateString("2024-06-01")),
	})
	store.Update("s1", domain.DraftPatch{
		CustomerPhone: ptr.Ptr("9876543210"),
	})

	draft, _ := store.Get("s1")
	assert.Equal(t, "Anita", draft.CustomerName)
	assert.Equal(t, "9876543210", draft.CustomerPhone)
	assert.Equal(t, types.DateString("2024-06-01"), draft.PickupDate)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore()

	store.Update("s1", domain.DraftPatch{CustomerName: ptr.Ptr("Anita")})
	store.Update("s2", domain.DraftPatch{CustomerName: ptr.Ptr("Ravi")})

	d1, _ := store.Get("s1")
	d2, _ := store.Get("s2")
	assert.Equal(t, "Anita", d1.CustomerName)
	assert.Equal(t, "Ravi", d2.CustomerName)
}

func TestStore_TermsFlagIndependentOfUpdate(t *testing.T) {
	store := NewStore()

	store.SetTermsAccepted("s1", true)
	store.Update("s1", domain.DraftPatch{CustomerName: ptr.Ptr("Anita")})

	_, terms := store.Get("s1")
	assert.True(t, terms)
}

func TestStore_ResetRestoresInitialState(t *testing.T) {
	store := NewStore()

	store.Update("s1", domain.DraftPatch{
		CustomerName: ptr.Ptr("Anita"),
		CarID:        ptr.Ptr(int64(7)),
		BookingID:    ptr.Ptr("BK-1718000000000-a1b2c3d4"),
	})
	store.SetTermsAccepted("s1", true)

	store.Reset("s1")

	draft, terms := store.Get("s1")
	require.Equal(t, domain.BookingDraft{}, draft)
	assert.Nil(t, draft.BookingID)
	assert.False(t, terms)
}

func TestStore_ConcurrentUpdatesDoNotLoseFields(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			store.Update("s1", domain.DraftPatch{CustomerName: ptr.Ptr("Anita")})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			store.Update("s1", domain.DraftPatch{CustomerPhone: ptr.Ptr("9876543210")})
		}
	}()
	wg.Wait()

	draft, _ := store.Get("s1")
	assert.Equal(t, "Anita", draft.CustomerName)
	assert.Equal(t, "9876543210", draft.CustomerPhone)
}
