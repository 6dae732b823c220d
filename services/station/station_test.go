package station

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"quickwash/models"
	"quickwash/services/availability"
	"quickwash/utils"
)

type fakeStationRepo struct {
	stations []models.NearbyStation
	created  []*models.Station
}

func (f *fakeStationRepo) Create(st *models.Station) error {
	f.created = append(f.created, st)
	return nil
}

func (f *fakeStationRepo) GetByID(id string) (*models.Station, error) {
	for _, st := range f.stations {
		if st.ID == id {
			s := st.Station
			return &s, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStationRepo) GetAll() ([]models.Station, error)     { return nil, nil }
func (f *fakeStationRepo) Update(st *models.Station) error       { return nil }
func (f *fakeStationRepo) Delete(id string) error                { return nil }

func (f *fakeStationRepo) Nearby(lat, lon, radiusKm float64) ([]models.NearbyStation, error) {
	return f.stations, nil
}

type fakeBayRepo struct {
	bays []models.Bay
}

func (f *fakeBayRepo) Create(b *models.Bay) error                 { return nil }
func (f *fakeBayRepo) GetByID(id string) (*models.Bay, error)     { return nil, errors.New("not found") }
func (f *fakeBayRepo) ListByStation(string) ([]models.Bay, error) { return f.bays, nil }
func (f *fakeBayRepo) UpdateWithDocument(string, bson.M) error    { return nil }
func (f *fakeBayRepo) Delete(id string) error                     { return nil }

func (f *fakeBayRepo) AvailableByStations(stationIDs []string) ([]models.Bay, error) {
	var out []models.Bay
	for _, b := range f.bays {
		if b.IsAvailable {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	reservations []models.Reservation
}

func (f *fakeReservationRepo) Create(r *models.Reservation) error          { return nil }
func (f *fakeReservationRepo) GetByID(string) (*models.Reservation, error) { return nil, nil }
func (f *fakeReservationRepo) ListByUser(string) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) ListByStation(string, bool, time.Time) ([]models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) Checkout(string, time.Time) (*models.Reservation, error) {
	return nil, nil
}
func (f *fakeReservationRepo) FinalizeExpired(time.Time) (int64, error) { return 0, nil }

func (f *fakeReservationRepo) ActiveInWindow(stationIDs []string, windowStart, windowEnd time.Time) ([]models.Reservation, error) {
	return f.reservations, nil
}

func TestNormalizeSchedule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "08:00 - 20:00", "08:00 - 20:00", false},
		{"empty defaults to always open", "", "00:00 - 24:00", false},
		{"non-stop alias normalized", "Non-Stop", "00:00 - 24:00", false},
		{"garbage rejected", "whenever we feel like it", "", true},
		{"single time rejected", "08:00", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSchedule(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var apiErr *utils.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, utils.KindBadRequest, apiErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateStation_RejectsMalformedSchedule(t *testing.T) {
	repo := &fakeStationRepo{}
	svc := &DefaultStationService{Repo: repo}

	_, err := svc.CreateStation(CreateStationInput{
		Name:           "Wash Central",
		OperatingHours: "sometimes",
		Latitude:       44.43,
		Longitude:      26.10,
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestNearbyAvailability_AssemblesQualifyingBays(t *testing.T) {
	now := time.Now().UTC()

	stationID := "station-1"
	repo := &fakeStationRepo{stations: []models.NearbyStation{{
		Station: models.Station{
			ID:             stationID,
			Name:           "Wash Central",
			OperatingHours: "00:00 - 24:00",
			LocationGeo:    models.NewGeoPoint(44.43, 26.10),
		},
		DistanceKm: 1.2,
	}}}
	bays := &fakeBayRepo{bays: []models.Bay{
		{ID: "bay-free", StationID: stationID, Name: "Bay 1", Price: 15, IsAvailable: true},
		{ID: "bay-busy", StationID: stationID, Name: "Bay 2", Price: 15, IsAvailable: true},
		{ID: "bay-off", StationID: stationID, Name: "Bay 3", Price: 15, IsAvailable: false},
	}}
	// bay-busy is blocked for the whole horizon.
	reservations := &fakeReservationRepo{reservations: []models.Reservation{{
		ID:     "r1",
		BayID:  "bay-busy",
		Start:  now.Add(-time.Hour),
		End:    now.Add(4 * time.Hour),
		Status: models.ReservationStatusActive,
	}}}

	svc := &DefaultStationService{
		Repo:            repo,
		BayRepo:         bays,
		ReservationRepo: reservations,
		Engine:          availability.NewEngine(2),
	}

	got, err := svc.NearbyAvailability(44.43, 26.10, 5, 30, 2*time.Hour)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stationID, got[0].StationID)
	assert.Equal(t, 1.2, got[0].DistanceKm)

	require.Len(t, got[0].Bays, 1)
	assert.Equal(t, "bay-free", got[0].Bays[0].BayID)
	require.Len(t, got[0].Bays[0].Intervals, 1)
	assert.Equal(t, 120, got[0].Bays[0].Intervals[0].MinutesAvailable)
}

func TestNearbyAvailability_NoStationsInRange(t *testing.T) {
	svc := &DefaultStationService{
		Repo:            &fakeStationRepo{},
		BayRepo:         &fakeBayRepo{},
		ReservationRepo: &fakeReservationRepo{},
		Engine:          availability.NewEngine(2),
	}
	got, err := svc.NearbyAvailability(0, 0, 5, 30, 2*time.Hour)
	require.NoError(t, err)
	assert.Empty(t, got)
}
