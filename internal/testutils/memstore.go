package testutils

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"governance-portal-backend/internal/database/models"
	"governance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUniqueViolation is returned by MemStore where Postgres would report a unique index violation
var ErrUniqueViolation = errors.New("duplicate key value violates unique constraint")

type memState struct {
	tenantTypes   map[uuid.UUID]models.TenantType
	teams         map[uuid.UUID]models.Team
	users         map[uuid.UUID]models.User
	roles         map[uuid.UUID]models.TeamRole
	members       map[uuid.UUID]models.TeamMember
	locations     map[uuid.UUID]models.Location
	licenses      map[uuid.UUID]models.License
	purchases     map[uuid.UUID]models.PurchasedLicense
	userSeats     map[uuid.UUID]models.UserLicense
	locationSeats map[uuid.UUID]models.LocationLicense
	statuses      map[uuid.UUID]models.TeamComplianceStatus
	alerts        map[uuid.UUID]models.ComplianceAlert
}

func newMemState() *memState {
	return &memState{
		tenantTypes:   map[uuid.UUID]models.TenantType{},
		teams:         map[uuid.UUID]models.Team{},
		users:         map[uuid.UUID]models.User{},
		roles:         map[uuid.UUID]models.TeamRole{},
		members:       map[uuid.UUID]models.TeamMember{},
		locations:     map[uuid.UUID]models.Location{},
		licenses:      map[uuid.UUID]models.License{},
		purchases:     map[uuid.UUID]models.PurchasedLicense{},
		userSeats:     map[uuid.UUID]models.UserLicense{},
		locationSeats: map[uuid.UUID]models.LocationLicense{},
		statuses:      map[uuid.UUID]models.TeamComplianceStatus{},
		alerts:        map[uuid.UUID]models.ComplianceAlert{},
	}
}

func copyMap[V any](src map[uuid.UUID]V) map[uuid.UUID]V {
	dst := make(map[uuid.UUID]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// clone copies every table. Stored values are replaced on write and never mutated
// in place, so copying the maps is enough for a snapshot.
func (s *memState) clone() *memState {
	return &memState{
		tenantTypes:   copyMap(s.tenantTypes),
		teams:         copyMap(s.teams),
		users:         copyMap(s.users),
		roles:         copyMap(s.roles),
		members:       copyMap(s.members),
		locations:     copyMap(s.locations),
		licenses:      copyMap(s.licenses),
		purchases:     copyMap(s.purchases),
		userSeats:     copyMap(s.userSeats),
		locationSeats: copyMap(s.locationSeats),
		statuses:      copyMap(s.statuses),
		alerts:        copyMap(s.alerts),
	}
}

// MemStore is an in-memory repository.Store for service tests.
// Transactions run one at a time, which gives the same outcome as the row locks the
// GORM store takes, and a failed transaction restores the state it started from.
type MemStore struct {
	txMu    sync.Mutex
	mu      sync.RWMutex
	state   *memState
	failErr error
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{state: newMemState()}
}

// FailWith makes every subsequent store call return err; nil restores normal behaviour
func (m *MemStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

func (m *MemStore) fail() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failErr
}

// Seed inserts fixtures. IDs are generated for records that have none.
func (m *MemStore) Seed(records ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range records {
		switch r := record.(type) {
		case *models.TenantType:
			ensureID(&r.BaseModel)
			m.state.tenantTypes[r.ID] = *r
		case *models.Team:
			ensureID(&r.BaseModel)
			stored := *r
			stored.TenantType = nil
			stored.Locations = nil
			m.state.teams[r.ID] = stored
		case *models.User:
			ensureID(&r.BaseModel)
			m.state.users[r.ID] = *r
		case *models.TeamRole:
			ensureID(&r.BaseModel)
			m.state.roles[r.ID] = *r
		case *models.TeamMember:
			ensureID(&r.BaseModel)
			stored := *r
			stored.User, stored.Team, stored.Role = nil, nil, nil
			m.state.members[r.ID] = stored
		case *models.Location:
			ensureID(&r.BaseModel)
			m.state.locations[r.ID] = *r
		case *models.License:
			ensureID(&r.BaseModel)
			m.state.licenses[r.ID] = *r
		case *models.PurchasedLicense:
			ensureID(&r.BaseModel)
			stored := *r
			stored.Team, stored.License = nil, nil
			m.state.purchases[r.ID] = stored
		case *models.UserLicense:
			ensureID(&r.BaseModel)
			m.state.userSeats[r.ID] = *r
		case *models.LocationLicense:
			ensureID(&r.BaseModel)
			m.state.locationSeats[r.ID] = *r
		case *models.TeamComplianceStatus:
			ensureID(&r.BaseModel)
			m.state.statuses[r.ID] = *r
		case *models.ComplianceAlert:
			ensureID(&r.BaseModel)
			stored := *r
			stored.Comments = append(models.CommentHistory{}, r.Comments...)
			stored.Status = nil
			m.state.alerts[r.ID] = stored
		default:
			panic(fmt.Sprintf("memstore: cannot seed %T", record))
		}
	}
}

// UserSeats returns every user seat of a purchase, assigned order
func (m *MemStore) UserSeats(purchaseID uuid.UUID) []models.UserLicense {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var seats []models.UserLicense
	for _, seat := range m.state.userSeats {
		if seat.PurchasedLicenseID == purchaseID {
			seats = append(seats, seat)
		}
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].AssignedAt.Before(seats[j].AssignedAt) })
	return seats
}

// LocationSeats returns every location seat of a purchase, active or not
func (m *MemStore) LocationSeats(purchaseID uuid.UUID) []models.LocationLicense {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var seats []models.LocationLicense
	for _, seat := range m.state.locationSeats {
		if seat.PurchasedLicenseID == purchaseID {
			seats = append(seats, seat)
		}
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].AssignedAt.Before(seats[j].AssignedAt) })
	return seats
}

func ensureID(base *models.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	now := time.Now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	if base.UpdatedAt.IsZero() {
		base.UpdatedAt = now
	}
}

// Teams returns the team repository
func (m *MemStore) Teams() repository.TeamRepositoryInterface { return &memTeams{m} }

// Licenses returns the license repository
func (m *MemStore) Licenses() repository.LicenseRepositoryInterface { return &memLicenses{m} }

// Compliance returns the compliance repository
func (m *MemStore) Compliance() repository.ComplianceRepositoryInterface { return &memCompliance{m} }

// Transaction serializes fn against every other transaction and rolls back on error
func (m *MemStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if err := m.fail(); err != nil {
		return err
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return m.runTx(fn)
}

func (m *MemStore) runTx(fn func(tx repository.Store) error) (err error) {
	m.mu.RLock()
	snapshot := m.state.clone()
	m.mu.RUnlock()

	rollback := func() {
		m.mu.Lock()
		m.state = snapshot
		m.mu.Unlock()
	}
	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err = fn(&memTx{m}); err != nil {
		rollback()
	}
	return err
}

// memTx is the store handed to a running transaction; nested transactions behave as savepoints
type memTx struct{ *MemStore }

func (t *memTx) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if err := t.fail(); err != nil {
		return err
	}
	return t.runTx(fn)
}

// ------------------------------
// Teams
// ------------------------------

type memTeams struct{ m *MemStore }

func (r *memTeams) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	team, ok := r.m.state.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if tt, ok := r.m.state.tenantTypes[team.TenantTypeID]; ok {
		team.TenantType = &tt
	}
	return &team, nil
}

func (r *memTeams) GetBySlug(ctx context.Context, slug string) (*models.Team, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, team := range r.m.state.teams {
		if team.Slug == slug {
			t := team
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memTeams) LockByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	team, ok := r.m.state.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &team, nil
}

func (r *memTeams) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	user, ok := r.m.state.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memTeams) GetMember(ctx context.Context, teamID, userID uuid.UUID) (*models.TeamMember, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, member := range r.m.state.members {
		if member.TeamID != teamID || member.UserID != userID {
			continue
		}
		found := member
		if role, ok := r.m.state.roles[member.RoleID]; ok {
			found.Role = &role
		}
		if user, ok := r.m.state.users[member.UserID]; ok {
			found.User = &user
		}
		return &found, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memTeams) GetLocationByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	location, ok := r.m.state.locations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &location, nil
}

// ------------------------------
// Licenses
// ------------------------------

type memLicenses struct{ m *MemStore }

func (r *memLicenses) CreateLicense(ctx context.Context, license *models.License) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ensureID(&license.BaseModel)
	r.m.state.licenses[license.ID] = *license
	return nil
}

func (r *memLicenses) GetLicenseByID(ctx context.Context, id uuid.UUID) (*models.License, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	license, ok := r.m.state.licenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &license, nil
}

func (r *memLicenses) CreatePurchase(ctx context.Context, purchase *models.PurchasedLicense) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ensureID(&purchase.BaseModel)
	stored := *purchase
	stored.Team, stored.License = nil, nil
	r.m.state.purchases[purchase.ID] = stored
	return nil
}

func (r *memLicenses) withLicense(purchase models.PurchasedLicense) *models.PurchasedLicense {
	if license, ok := r.m.state.licenses[purchase.LicenseID]; ok {
		purchase.License = &license
	}
	return &purchase
}

func (r *memLicenses) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchasedLicense, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	purchase, ok := r.m.state.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withLicense(purchase), nil
}

func (r *memLicenses) LockPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchasedLicense, error) {
	return r.GetPurchaseByID(ctx, id)
}

func (r *memLicenses) UpdatePurchase(ctx context.Context, purchase *models.PurchasedLicense) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	stored, ok := r.m.state.purchases[purchase.ID]
	if !ok {
		return nil
	}
	stored.ExpiresAt = purchase.ExpiresAt
	stored.IsActive = purchase.IsActive
	stored.UpdatedAt = time.Now()
	r.m.state.purchases[purchase.ID] = stored
	return nil
}

func (r *memLicenses) ListPurchasesByTeam(ctx context.Context, teamID uuid.UUID) ([]models.PurchasedLicense, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	purchases := []models.PurchasedLicense{}
	for _, purchase := range r.m.state.purchases {
		if purchase.TeamID == teamID {
			purchases = append(purchases, *r.withLicense(purchase))
		}
	}
	sort.Slice(purchases, func(i, j int) bool { return purchases[i].PurchasedAt.Before(purchases[j].PurchasedAt) })
	return purchases, nil
}

func (r *memLicenses) CountActiveUserSeats(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error) {
	if err := r.m.fail(); err != nil {
		return 0, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var count int64
	for _, seat := range r.m.state.userSeats {
		if seat.PurchasedLicenseID == purchaseID && seat.IsActiveAt(now) {
			count++
		}
	}
	return count, nil
}

func (r *memLicenses) CountActiveLocationSeats(ctx context.Context, purchaseID uuid.UUID, now time.Time) (int64, error) {
	if err := r.m.fail(); err != nil {
		return 0, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var count int64
	for _, seat := range r.m.state.locationSeats {
		if seat.PurchasedLicenseID == purchaseID && seat.IsActiveAt(now) {
			count++
		}
	}
	return count, nil
}

func (r *memLicenses) CreateUserSeat(ctx context.Context, seat *models.UserLicense) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ensureID(&seat.BaseModel)
	stored := *seat
	stored.PurchasedLicense = nil
	r.m.state.userSeats[seat.ID] = stored
	return nil
}

func (r *memLicenses) CreateLocationSeat(ctx context.Context, seat *models.LocationLicense) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ensureID(&seat.BaseModel)
	stored := *seat
	stored.PurchasedLicense = nil
	r.m.state.locationSeats[seat.ID] = stored
	return nil
}

func (r *memLicenses) DeleteUserSeats(ctx context.Context, purchaseID, userID uuid.UUID) (int64, error) {
	if err := r.m.fail(); err != nil {
		return 0, err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var removed int64
	for id, seat := range r.m.state.userSeats {
		if seat.PurchasedLicenseID == purchaseID && seat.UserID == userID {
			delete(r.m.state.userSeats, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memLicenses) DeactivateLocationSeats(ctx context.Context, purchaseID, locationID uuid.UUID) (int64, error) {
	if err := r.m.fail(); err != nil {
		return 0, err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var changed int64
	for id, seat := range r.m.state.locationSeats {
		if seat.PurchasedLicenseID == purchaseID && seat.LocationID == locationID && seat.IsActive {
			seat.IsActive = false
			r.m.state.locationSeats[id] = seat
			changed++
		}
	}
	return changed, nil
}

// ------------------------------
// Compliance
// ------------------------------

type memCompliance struct{ m *MemStore }

func (r *memCompliance) ListStatuses(ctx context.Context, teamID uuid.UUID) ([]models.TeamComplianceStatus, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	statuses := []models.TeamComplianceStatus{}
	for _, status := range r.m.state.statuses {
		if status.TeamID == teamID {
			statuses = append(statuses, status)
		}
	}
	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].Order != statuses[j].Order {
			return statuses[i].Order < statuses[j].Order
		}
		return statuses[i].Code < statuses[j].Code
	})
	return statuses, nil
}

func (r *memCompliance) CountStatuses(ctx context.Context, teamID uuid.UUID) (int64, error) {
	statuses, err := r.ListStatuses(ctx, teamID)
	return int64(len(statuses)), err
}

func (r *memCompliance) MaxStatusOrder(ctx context.Context, teamID uuid.UUID) (int, error) {
	statuses, err := r.ListStatuses(ctx, teamID)
	if err != nil {
		return 0, err
	}
	max := -1
	for _, status := range statuses {
		if status.Order > max {
			max = status.Order
		}
	}
	return max, nil
}

func (r *memCompliance) GetStatusByID(ctx context.Context, id uuid.UUID) (*models.TeamComplianceStatus, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	status, ok := r.m.state.statuses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &status, nil
}

func (r *memCompliance) GetStatusByCode(ctx context.Context, teamID uuid.UUID, code string) (*models.TeamComplianceStatus, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, status := range r.m.state.statuses {
		if status.TeamID == teamID && status.Code == code {
			found := status
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCompliance) GetDefaultStatus(ctx context.Context, teamID uuid.UUID) (*models.TeamComplianceStatus, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, status := range r.m.state.statuses {
		if status.TeamID == teamID && status.IsDefault {
			found := status
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCompliance) CreateStatus(ctx context.Context, status *models.TeamComplianceStatus) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.state.statuses {
		if existing.TeamID != status.TeamID {
			continue
		}
		if existing.Code == status.Code || (existing.IsDefault && status.IsDefault) {
			return ErrUniqueViolation
		}
	}
	ensureID(&status.BaseModel)
	r.m.state.statuses[status.ID] = *status
	return nil
}

func (r *memCompliance) ClearDefaultStatus(ctx context.Context, teamID uuid.UUID) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for id, status := range r.m.state.statuses {
		if status.TeamID == teamID && status.IsDefault {
			status.IsDefault = false
			r.m.state.statuses[id] = status
		}
	}
	return nil
}

func (r *memCompliance) MarkDefaultStatus(ctx context.Context, statusID uuid.UUID) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	status, ok := r.m.state.statuses[statusID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for id, other := range r.m.state.statuses {
		if id != statusID && other.TeamID == status.TeamID && other.IsDefault {
			return ErrUniqueViolation
		}
	}
	status.IsDefault = true
	r.m.state.statuses[statusID] = status
	return nil
}

func (r *memCompliance) CreateAlert(ctx context.Context, alert *models.ComplianceAlert) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ensureID(&alert.BaseModel)
	stored := *alert
	stored.Comments = append(models.CommentHistory{}, alert.Comments...)
	stored.Status = nil
	r.m.state.alerts[alert.ID] = stored
	return nil
}

func (r *memCompliance) getAlert(id uuid.UUID) (*models.ComplianceAlert, error) {
	if err := r.m.fail(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	alert, ok := r.m.state.alerts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	alert.Comments = append(models.CommentHistory{}, alert.Comments...)
	if alert.StatusID != nil {
		if status, ok := r.m.state.statuses[*alert.StatusID]; ok {
			alert.Status = &status
		}
	}
	return &alert, nil
}

func (r *memCompliance) GetAlertByID(ctx context.Context, id uuid.UUID) (*models.ComplianceAlert, error) {
	return r.getAlert(id)
}

func (r *memCompliance) LockAlertByID(ctx context.Context, id uuid.UUID) (*models.ComplianceAlert, error) {
	alert, err := r.getAlert(id)
	if err != nil {
		return nil, err
	}
	alert.Status = nil
	return alert, nil
}

func (r *memCompliance) UpdateAlert(ctx context.Context, alert *models.ComplianceAlert) error {
	if err := r.m.fail(); err != nil {
		return err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	stored, ok := r.m.state.alerts[alert.ID]
	if !ok {
		return nil
	}
	stored.StatusID = alert.StatusID
	stored.Severity = alert.Severity
	stored.Comments = append(models.CommentHistory{}, alert.Comments...)
	stored.UpdatedAt = time.Now()
	r.m.state.alerts[alert.ID] = stored
	return nil
}
