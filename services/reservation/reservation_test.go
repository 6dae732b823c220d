package reservation

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	reservationRepo "quickwash/database/repository/reservation"
	"quickwash/models"
	"quickwash/utils"
)

// memoryReservationRepo enforces the same write rules as the mongo repo:
// Create rejects an overlap with an active reservation on the same bay,
// and Checkout only matches a reservation that is still active.
type memoryReservationRepo struct {
	stored []models.Reservation
}

func (m *memoryReservationRepo) Create(r *models.Reservation) error {
	for _, existing := range m.stored {
		if existing.BayID == r.BayID &&
			existing.Status == models.ReservationStatusActive &&
			existing.Overlaps(*r) {
			return reservationRepo.ErrOverlap
		}
	}
	m.stored = append(m.stored, *r)
	return nil
}

func (m *memoryReservationRepo) GetByID(id string) (*models.Reservation, error) {
	for i := range m.stored {
		if m.stored[i].ID == id {
			r := m.stored[i]
			return &r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryReservationRepo) Checkout(id string, at time.Time) (*models.Reservation, error) {
	for i := range m.stored {
		if m.stored[i].ID == id && m.stored[i].Status == models.ReservationStatusActive {
			m.stored[i].End = at
			m.stored[i].Status = models.ReservationStatusFinalized
			r := m.stored[i]
			return &r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memoryReservationRepo) ListByUser(string) ([]models.Reservation, error) {
	return m.stored, nil
}

func (m *memoryReservationRepo) ListByStation(string, bool, time.Time) ([]models.Reservation, error) {
	return m.stored, nil
}

func (m *memoryReservationRepo) ActiveInWindow(bayIDs []string, from, to time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (m *memoryReservationRepo) FinalizeExpired(time.Time) (int64, error) { return 0, nil }

type fakeBayRepo struct {
	bays []models.Bay
}

func (f *fakeBayRepo) Create(b *models.Bay) error { return nil }

func (f *fakeBayRepo) GetByID(id string) (*models.Bay, error) {
	for _, b := range f.bays {
		if b.ID == id {
			bay := b
			return &bay, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBayRepo) ListByStation(string) ([]models.Bay, error)         { return f.bays, nil }
func (f *fakeBayRepo) UpdateWithDocument(string, bson.M) error            { return nil }
func (f *fakeBayRepo) Delete(id string) error                             { return nil }
func (f *fakeBayRepo) AvailableByStations([]string) ([]models.Bay, error) { return f.bays, nil }

func newTestService(repo *memoryReservationRepo) *DefaultReservationService {
	return &DefaultReservationService{
		Repo: repo,
		BayRepo: &fakeBayRepo{bays: []models.Bay{
			{ID: "bay-1", StationID: "station-1", Name: "Bay 1", DefaultDurationMinutes: 60, IsAvailable: true},
		}},
	}
}

func TestCreate_SecondOverlappingReservationConflicts(t *testing.T) {
	repo := &memoryReservationRepo{}
	svc := newTestService(repo)

	first, err := svc.Create("user-a", "bay-1", 60)
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second booking for the same bay while the first is still running
	// must be rejected with a conflict, not stored alongside it.
	second, err := svc.Create("user-b", "bay-1", 30)
	require.Error(t, err)
	assert.Nil(t, second)
	assert.Equal(t, http.StatusConflict, utils.StatusForError(err))
	assert.Len(t, repo.stored, 1)
}

func TestCreate_BackToBackAfterCheckoutSucceeds(t *testing.T) {
	repo := &memoryReservationRepo{}
	svc := newTestService(repo)

	first, err := svc.Create("user-a", "bay-1", 60)
	require.NoError(t, err)

	_, err = svc.Checkout("user-a", first.ID)
	require.NoError(t, err)

	// The finalized reservation no longer blocks the bay.
	_, err = svc.Create("user-b", "bay-1", 30)
	assert.NoError(t, err)
}

func TestCheckout_CapsEndAndFinalizes(t *testing.T) {
	repo := &memoryReservationRepo{}
	svc := newTestService(repo)

	created, err := svc.Create("user-a", "bay-1", 60)
	require.NoError(t, err)

	updated, err := svc.Checkout("user-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusFinalized, updated.Status)
	assert.True(t, updated.End.Before(created.End))
}

func TestCheckout_FinalizedReservationConflicts(t *testing.T) {
	repo := &memoryReservationRepo{}
	svc := newTestService(repo)

	created, err := svc.Create("user-a", "bay-1", 60)
	require.NoError(t, err)

	updated, err := svc.Checkout("user-a", created.ID)
	require.NoError(t, err)

	// A repeated checkout must not move the end forward again.
	again, err := svc.Checkout("user-a", created.ID)
	require.Error(t, err)
	assert.Nil(t, again)
	assert.Equal(t, http.StatusConflict, utils.StatusForError(err))

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.End, stored.End)
}

func TestCheckout_OtherUsersReservationUnauthorized(t *testing.T) {
	repo := &memoryReservationRepo{}
	svc := newTestService(repo)

	created, err := svc.Create("user-a", "bay-1", 60)
	require.NoError(t, err)

	_, err = svc.Checkout("user-b", created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, utils.StatusForError(err))
}
