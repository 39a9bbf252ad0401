package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	"github.com/jthmssse/saisonnales-app-v2/internal/planning"
	"github.com/jthmssse/saisonnales-app-v2/internal/repository"

	"go.uber.org/zap"
)

// ResidentService resident management: listing, reservation intake, edits.
type ResidentService interface {
	ListResidents(ctx context.Context, req ListResidentsRequest) (*ListResidentsResponse, error)
	GetResident(ctx context.Context, id int) (*domain.Resident, error)
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*CreateReservationResponse, error)
	UpdateResident(ctx context.Context, req UpdateResidentRequest) (*domain.Resident, error)
	DeleteResident(ctx context.Context, id int) error
	AvailableRooms(ctx context.Context, req AvailabilityRequest) ([]string, error)
}

type residentService struct {
	store      *repository.ResidentStore
	relay      *RelayClient
	totalRooms int
	logger     *zap.Logger
	now        func() time.Time
}

// NewResidentService creates a ResidentService. relay may be nil when no
// form-relay endpoint is configured.
func NewResidentService(store *repository.ResidentStore, relay *RelayClient, totalRooms int, logger *zap.Logger) ResidentService {
	return &residentService{
		store:      store,
		relay:      relay,
		totalRooms: totalRooms,
		logger:     logger,
		now:        time.Now,
	}
}

// ListResidentsRequest filters for the resident list.
type ListResidentsRequest struct {
	Search string // substring match on name, room, family contact name
	Status string // optional status filter (active/upcoming/ended)
}

// ListResidentsResponse the filtered list plus the unfiltered total.
type ListResidentsResponse struct {
	Items []domain.Resident `json:"items"`
	Total int               `json:"total"`
}

// CreateReservationRequest the reservation form payload: a Resident minus id
// and status, which the service computes.
type CreateReservationRequest struct {
	Name      string `json:"name"`
	Room      string `json:"room"`
	GIR       string `json:"gir"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Phone     string `json:"phone"`

	DocsComplete bool   `json:"docsComplete"`
	QuoteSent    bool   `json:"quoteSent"`
	ImageRights  string `json:"imageRights"`

	Gender                string `json:"gender"`
	BirthDate             string `json:"birthDate"`
	Email                 string `json:"email"`
	Address               string `json:"address"`
	FamilyContactName     string `json:"familyContactName"`
	FamilyContactRelation string `json:"familyContactRelation"`
	FamilyContactPhone    string `json:"familyContactPhone"`
	FamilyContactEmail    string `json:"familyContactEmail"`

	Allergies      string `json:"allergies"`
	MedicalHistory string `json:"medicalHistory"`
	TreatingDoctor string `json:"treatingDoctor"`
	Mobility       string `json:"mobility"`
	DietaryNeeds   string `json:"dietaryNeeds"`
	SocialHabits   string `json:"socialHabits"`
	Notes          string `json:"notes"`
}

type CreateReservationResponse struct {
	Resident domain.Resident `json:"resident"`
}

// UpdateResidentRequest partial update; nil pointers leave fields untouched.
type UpdateResidentRequest struct {
	ID int `json:"id"`

	Name      *string `json:"name"`
	Room      *string `json:"room"`
	GIR       *string `json:"gir"`
	Arrival   *string `json:"arrival"`
	Departure *string `json:"departure"`
	Phone     *string `json:"phone"`

	DocsComplete *bool   `json:"docsComplete"`
	QuoteSent    *bool   `json:"quoteSent"`
	ImageRights  *string `json:"imageRights"`

	FamilyContactName  *string `json:"familyContactName"`
	FamilyContactPhone *string `json:"familyContactPhone"`
	FamilyContactEmail *string `json:"familyContactEmail"`
	Email              *string `json:"email"`

	Allergies      *string `json:"allergies"`
	MedicalHistory *string `json:"medicalHistory"`
	TreatingDoctor *string `json:"treatingDoctor"`
	Mobility       *string `json:"mobility"`
	DietaryNeeds   *string `json:"dietaryNeeds"`
	SocialHabits   *string `json:"socialHabits"`
	Notes          *string `json:"notes"`
}

// AvailabilityRequest a prospective date range; ExcludeResidentID removes the
// resident being edited from the occupancy check.
type AvailabilityRequest struct {
	Arrival           string
	Departure         string
	ExcludeResidentID int
}

// matchesSearch mirrors the dashboard filter: case-insensitive substring on
// name, room and family contact name.
func matchesSearch(r domain.Resident, search string) bool {
	s := strings.ToLower(strings.TrimSpace(search))
	if s == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), s) ||
		(r.Room != "" && strings.Contains(strings.ToLower(r.Room), s)) ||
		(r.FamilyContactName != "" && strings.Contains(strings.ToLower(r.FamilyContactName), s))
}

// ListResidents returns the collection with statuses recomputed against
// today, optionally filtered.
func (s *residentService) ListResidents(ctx context.Context, req ListResidentsRequest) (*ListResidentsResponse, error) {
	residents := s.store.Snapshot()
	today := s.now()

	items := make([]domain.Resident, 0, len(residents))
	for _, r := range residents {
		r.Status = domain.DeriveStatus(r.Arrival, r.Departure, today)
		if !matchesSearch(r, req.Search) {
			continue
		}
		if req.Status != "" && r.Status != req.Status {
			continue
		}
		items = append(items, r)
	}

	return &ListResidentsResponse{Items: items, Total: len(residents)}, nil
}

func (s *residentService) GetResident(ctx context.Context, id int) (*domain.Resident, error) {
	for _, r := range s.store.Snapshot() {
		if r.ID == id {
			r.Status = domain.DeriveStatus(r.Arrival, r.Departure, s.now())
			return &r, nil
		}
	}
	return nil, fmt.Errorf("resident %d not found", id)
}

// CreateReservation validates the form payload, checks the room is free for
// the requested range, assigns the next id and appends the resident. The
// optional relay submission runs in the background; its outcome never affects
// the reservation.
func (s *residentService) CreateReservation(ctx context.Context, req CreateReservationRequest) (*CreateReservationResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Arrival == "" {
		return nil, fmt.Errorf("arrival date is required")
	}
	if req.Departure == "" {
		return nil, fmt.Errorf("departure date is required")
	}
	if req.Room == "" {
		return nil, fmt.Errorf("room is required")
	}
	if req.GIR == "" {
		return nil, fmt.Errorf("gir is required")
	}

	arrival, err := planning.ParseDate(req.Arrival)
	if err != nil {
		return nil, err
	}
	departure, err := planning.ParseDate(req.Departure)
	if err != nil {
		return nil, err
	}
	if !arrival.Before(departure) {
		return nil, fmt.Errorf("arrival date must be before departure date")
	}

	residents := s.store.Snapshot()

	if _, ok := planning.RoomNumber(req.Room, s.totalRooms); !ok {
		return nil, fmt.Errorf("room %q is not a valid room number", req.Room)
	}
	if !roomAvailable(req.Room, req.Arrival, req.Departure, residents, s.totalRooms, 0) {
		return nil, fmt.Errorf("room %s is not available for the requested dates", req.Room)
	}

	resident := domain.Resident{
		ID:                    domain.NextID(residents),
		Name:                  req.Name,
		Room:                  req.Room,
		GIR:                   req.GIR,
		Status:                domain.DeriveStatus(req.Arrival, req.Departure, s.now()),
		Arrival:               req.Arrival,
		Departure:             req.Departure,
		Phone:                 req.Phone,
		DocsComplete:          req.DocsComplete,
		QuoteSent:             req.QuoteSent,
		ImageRights:           req.ImageRights,
		Gender:                req.Gender,
		BirthDate:             req.BirthDate,
		Email:                 req.Email,
		Address:               req.Address,
		FamilyContactName:     req.FamilyContactName,
		FamilyContactRelation: req.FamilyContactRelation,
		FamilyContactPhone:    req.FamilyContactPhone,
		FamilyContactEmail:    req.FamilyContactEmail,
		Allergies:             req.Allergies,
		MedicalHistory:        req.MedicalHistory,
		TreatingDoctor:        req.TreatingDoctor,
		Mobility:              req.Mobility,
		DietaryNeeds:          req.DietaryNeeds,
		SocialHabits:          req.SocialHabits,
		Notes:                 req.Notes,
	}

	s.store.Replace(ctx, append(residents, resident))
	s.logger.Info("reservation created",
		zap.Int("resident_id", resident.ID),
		zap.String("room", resident.Room),
		zap.String("arrival", resident.Arrival),
		zap.String("departure", resident.Departure),
	)

	if s.relay != nil {
		go s.relay.SendReservation(resident)
	}

	return &CreateReservationResponse{Resident: resident}, nil
}

// UpdateResident applies a partial update. When the room or the dates change,
// availability is re-checked with the resident itself excluded.
func (s *residentService) UpdateResident(ctx context.Context, req UpdateResidentRequest) (*domain.Resident, error) {
	residents := s.store.Snapshot()

	idx := -1
	for i, r := range residents {
		if r.ID == req.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("resident %d not found", req.ID)
	}

	updated := residents[idx]
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&updated.Name, req.Name)
	setString(&updated.Room, req.Room)
	setString(&updated.GIR, req.GIR)
	setString(&updated.Arrival, req.Arrival)
	setString(&updated.Departure, req.Departure)
	setString(&updated.Phone, req.Phone)
	setString(&updated.ImageRights, req.ImageRights)
	setString(&updated.FamilyContactName, req.FamilyContactName)
	setString(&updated.FamilyContactPhone, req.FamilyContactPhone)
	setString(&updated.FamilyContactEmail, req.FamilyContactEmail)
	setString(&updated.Email, req.Email)
	setString(&updated.Allergies, req.Allergies)
	setString(&updated.MedicalHistory, req.MedicalHistory)
	setString(&updated.TreatingDoctor, req.TreatingDoctor)
	setString(&updated.Mobility, req.Mobility)
	setString(&updated.DietaryNeeds, req.DietaryNeeds)
	setString(&updated.SocialHabits, req.SocialHabits)
	setString(&updated.Notes, req.Notes)
	if req.DocsComplete != nil {
		updated.DocsComplete = *req.DocsComplete
	}
	if req.QuoteSent != nil {
		updated.QuoteSent = *req.QuoteSent
	}

	stayChanged := req.Room != nil || req.Arrival != nil || req.Departure != nil
	if stayChanged && updated.Room != "" {
		if !roomAvailable(updated.Room, updated.Arrival, updated.Departure, residents, s.totalRooms, updated.ID) {
			return nil, fmt.Errorf("room %s is not available for the requested dates", updated.Room)
		}
	}

	updated.Status = domain.DeriveStatus(updated.Arrival, updated.Departure, s.now())
	residents[idx] = updated
	s.store.Replace(ctx, residents)
	s.logger.Info("resident updated", zap.Int("resident_id", updated.ID))
	return &updated, nil
}

func (s *residentService) DeleteResident(ctx context.Context, id int) error {
	residents := s.store.Snapshot()
	kept := make([]domain.Resident, 0, len(residents))
	found := false
	for _, r := range residents {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("resident %d not found", id)
	}
	s.store.Replace(ctx, kept)
	s.logger.Info("resident deleted", zap.Int("resident_id", id))
	return nil
}

func (s *residentService) AvailableRooms(ctx context.Context, req AvailabilityRequest) ([]string, error) {
	residents := s.store.Snapshot()
	return planning.AvailableRooms(req.Arrival, req.Departure, residents, s.totalRooms, req.ExcludeResidentID), nil
}

// roomAvailable reports whether room is in the availability set for the
// range. An unparseable or inverted range yields an empty set, so it also
// rejects the booking.
func roomAvailable(room, arrival, departure string, residents []domain.Resident, total int, excludeID int) bool {
	for _, free := range planning.AvailableRooms(arrival, departure, residents, total, excludeID) {
		if free == room {
			return true
		}
	}
	return false
}
