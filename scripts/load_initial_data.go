package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"governance-portal-backend/internal/cache"
	"governance-portal-backend/internal/config"
	"governance-portal-backend/internal/database"
	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/repository"
	"governance-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type LocationData struct {
	Name string `yaml:"name"`
}

type RoleData struct {
	Name        string              `yaml:"name"`
	Permissions map[string][]string `yaml:"permissions"`
}

type StatusData struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	IsDefault bool   `yaml:"is_default"`
}

type TeamData struct {
	Slug       string         `yaml:"slug"`
	Name       string         `yaml:"name"`
	TenantType string         `yaml:"tenant_type"`
	UseVendors bool           `yaml:"use_vendors"`
	Locations  []LocationData `yaml:"locations,omitempty"`
	Roles      []RoleData     `yaml:"roles,omitempty"`
	Statuses   []StatusData   `yaml:"statuses,omitempty"`
}

type UserData struct {
	Email       string           `yaml:"email"`
	DisplayName string           `yaml:"display_name"`
	IsActive    *bool            `yaml:"is_active,omitempty"`
	Teams       []MembershipData `yaml:"teams,omitempty"`
}

type MembershipData struct {
	Slug string `yaml:"slug"`
	Role string `yaml:"role"`
}

type LicenseData struct {
	IssuerSlug    string   `yaml:"issuer"`
	Name          string   `yaml:"name"`
	Price         float64  `yaml:"price"`
	RenewalPeriod string   `yaml:"renewal_period"`
	MaxUsers      *int     `yaml:"max_users,omitempty"`
	MaxLocations  *int     `yaml:"max_locations,omitempty"`
	Features      []string `yaml:"features"`
	PurchasedBy   []string `yaml:"purchased_by,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type LicensesFile struct {
	Licenses []LicenseData `yaml:"licenses"`
}

// seeder carries the services the seed data is written through
type seeder struct {
	db           *gorm.DB
	entitlements *service.EntitlementManager
	workflow     *service.StatusWorkflowEngine
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	store := repository.NewStore(db)
	validate := validator.New()
	s := &seeder{
		db:           db,
		entitlements: service.NewEntitlementManager(store, validate, nil),
		workflow:     service.NewStatusWorkflowEngine(store, validate, nil),
	}

	ctx := context.Background()
	teams, err := s.loadDataFromYAMLFiles(ctx, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if cfg.PolicyCacheTTL() > 0 {
		invalidatePolicies(ctx, cfg, store, teams)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// invalidatePolicies drops cached tenant policies of every seeded team so a
// changed tenant type or vendor flag is visible immediately.
func invalidatePolicies(ctx context.Context, cfg *config.Config, store repository.Store, teams map[string]*models.Team) {
	client, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Warning: policy cache not reachable, cached policies expire on their own: %v", err)
		return
	}
	defer client.Close()

	policies := service.NewTenantPolicyResolver(store, cache.NewRedisPolicyCache(client, cfg.PolicyCacheTTL()), nil)
	for slug, team := range teams {
		if err := policies.Invalidate(ctx, team.ID); err != nil {
			log.Printf("⚠️  Warning: failed to invalidate policy of team %s: %v", slug, err)
		}
	}
	log.Printf("📋 Policy cache: %d teams invalidated", len(teams))
}

func (s *seeder) loadDataFromYAMLFiles(ctx context.Context, dataDir string) (map[string]*models.Team, error) {
	teamFiles, err := loadYAMLFiles[TeamsFile](dataDir, "teams")
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	userFiles, err := loadYAMLFiles[UsersFile](dataDir, "users")
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	licenseFiles, err := loadYAMLFiles[LicensesFile](dataDir, "licenses")
	if err != nil {
		return nil, fmt.Errorf("failed to load licenses: %w", err)
	}

	var teams []TeamData
	for _, file := range teamFiles {
		teams = append(teams, file.Teams...)
	}
	var users []UserData
	for _, file := range userFiles {
		users = append(users, file.Users...)
	}
	var licenses []LicenseData
	for _, file := range licenseFiles {
		licenses = append(licenses, file.Licenses...)
	}

	// Tenant types first; teams reference them
	tenantTypes := make(map[models.TenantTypeName]*models.TenantType)
	for _, name := range []models.TenantTypeName{models.TenantTypeDefault, models.TenantTypeFarm, models.TenantTypePPE} {
		tenantType, err := s.createTenantType(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create tenant type %s: %w", name, err)
		}
		tenantTypes[name] = tenantType
	}
	log.Printf("📋 Tenant types: %d total", len(tenantTypes))

	teamMap := make(map[string]*models.Team)
	roleMap := make(map[string]map[string]*models.TeamRole)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := s.createTeam(teamData, tenantTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", teamData.Slug, err)
		}
		teamMap[teamData.Slug] = team
		if created {
			teamCreated++
		}

		roles, err := s.createRoles(team, teamData.Roles)
		if err != nil {
			return nil, fmt.Errorf("failed to create roles of team %s: %w", teamData.Slug, err)
		}
		roleMap[teamData.Slug] = roles

		if err := s.createLocations(team, teamData.Locations); err != nil {
			return nil, fmt.Errorf("failed to create locations of team %s: %w", teamData.Slug, err)
		}

		if err := s.defineStatuses(ctx, team, teamData.Statuses); err != nil {
			return nil, fmt.Errorf("failed to define statuses of team %s: %w", teamData.Slug, err)
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	userCreated := 0
	memberCreated := 0
	for _, userData := range users {
		user, created, err := s.createUser(userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
		for _, membership := range userData.Teams {
			created, err := s.createMember(user, membership, teamMap, roleMap)
			if err != nil {
				log.Printf("⚠️  Warning: failed to add %s to team %s: %v", userData.Email, membership.Slug, err)
				continue
			}
			if created {
				memberCreated++
			}
		}
	}
	log.Printf("📋 Users: %d created, %d total; memberships: %d created", userCreated, len(users), memberCreated)

	licenseCreated := 0
	purchaseCreated := 0
	for _, licenseData := range licenses {
		license, created, err := s.createLicense(ctx, licenseData, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create license %s: %v", licenseData.Name, err)
			continue
		}
		if created {
			licenseCreated++
		}
		for _, slug := range licenseData.PurchasedBy {
			created, err := s.purchaseOnce(ctx, license, slug, teamMap)
			if err != nil {
				log.Printf("⚠️  Warning: team %s failed to purchase %s: %v", slug, licenseData.Name, err)
				continue
			}
			if created {
				purchaseCreated++
			}
		}
	}
	log.Printf("📋 Licenses: %d created, %d total; purchases: %d created", licenseCreated, len(licenses), purchaseCreated)

	return teamMap, nil
}

// loadYAMLFiles decodes every .yaml file under dataDir whose name contains kind, one value per file
func loadYAMLFiles[T any](dataDir, kind string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var file T
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files = append(files, file)
		}
		return nil
	})

	return files, err
}

func (s *seeder) createTenantType(name models.TenantTypeName) (*models.TenantType, error) {
	tenantType := models.TenantType{Name: name}
	if err := s.db.Where("name = ?", name).FirstOrCreate(&tenantType).Error; err != nil {
		return nil, err
	}
	return &tenantType, nil
}

func (s *seeder) createTeam(teamData TeamData, tenantTypes map[models.TenantTypeName]*models.TenantType) (*models.Team, bool, error) {
	tenantType, ok := tenantTypes[models.TenantTypeName(teamData.TenantType)]
	if !ok {
		return nil, false, fmt.Errorf("unknown tenant type %q", teamData.TenantType)
	}

	var team models.Team
	err := s.db.Where("slug = ?", teamData.Slug).First(&team).Error
	if err == nil {
		// Slug is immutable; everything else follows the seed file
		updates := map[string]interface{}{
			"name":           teamData.Name,
			"tenant_type_id": tenantType.ID,
			"use_vendors":    teamData.UseVendors,
		}
		if err := s.db.Model(&team).Updates(updates).Error; err != nil {
			return nil, false, fmt.Errorf("failed to update team: %w", err)
		}
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	team = models.Team{
		Slug:         teamData.Slug,
		Name:         teamData.Name,
		TenantTypeID: tenantType.ID,
		UseVendors:   teamData.UseVendors,
	}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func parsePermissions(raw map[string][]string) (models.Permissions, error) {
	permissions := make(models.Permissions, len(raw))
	for resourceName, actionNames := range raw {
		resource := models.Resource(strings.ToUpper(resourceName))
		if !resource.IsValid() {
			return nil, fmt.Errorf("unknown resource %q", resourceName)
		}
		for _, actionName := range actionNames {
			action := models.Action(strings.ToLower(actionName))
			if !action.IsValid() {
				return nil, fmt.Errorf("unknown action %q on %s", actionName, resource)
			}
			permissions[resource] = append(permissions[resource], action)
		}
	}
	return permissions, nil
}

func (s *seeder) createRoles(team *models.Team, roles []RoleData) (map[string]*models.TeamRole, error) {
	created := make(map[string]*models.TeamRole, len(roles))
	for _, roleData := range roles {
		permissions, err := parsePermissions(roleData.Permissions)
		if err != nil {
			return nil, fmt.Errorf("role %s: %w", roleData.Name, err)
		}

		role := models.TeamRole{TeamID: team.ID, Name: roleData.Name}
		if err := s.db.Where("team_id = ? AND name = ?", team.ID, roleData.Name).
			Assign(models.TeamRole{Permissions: permissions}).
			FirstOrCreate(&role).Error; err != nil {
			return nil, err
		}
		created[roleData.Name] = &role
	}
	return created, nil
}

func (s *seeder) createLocations(team *models.Team, locations []LocationData) error {
	for _, locationData := range locations {
		location := models.Location{TeamID: team.ID, Name: locationData.Name}
		if err := s.db.Where("team_id = ? AND name = ?", team.ID, locationData.Name).FirstOrCreate(&location).Error; err != nil {
			return err
		}
	}
	return nil
}

// defineStatuses creates the team's initial statuses once; teams that already have statuses keep them
func (s *seeder) defineStatuses(ctx context.Context, team *models.Team, statuses []StatusData) error {
	if len(statuses) == 0 {
		return nil
	}
	inputs := make([]service.StatusInput, 0, len(statuses))
	for _, statusData := range statuses {
		inputs = append(inputs, service.StatusInput{
			Code:      statusData.Code,
			Name:      statusData.Name,
			IsDefault: statusData.IsDefault,
		})
	}

	_, err := s.workflow.DefineDefaults(ctx, team.ID, inputs)
	if errors.Is(err, apperrors.ErrStatusesAlreadyDefined) {
		return nil
	}
	return err
}

func (s *seeder) createUser(userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))
	isActive := true
	if userData.IsActive != nil {
		isActive = *userData.IsActive
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = models.User{
		Email:       email,
		DisplayName: userData.DisplayName,
		IsActive:    isActive,
	}
	// IsActive=false would be replaced by the column default on insert
	if err := s.db.Select("*").Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func (s *seeder) createMember(user *models.User, membership MembershipData, teamMap map[string]*models.Team, roleMap map[string]map[string]*models.TeamRole) (bool, error) {
	team, ok := teamMap[membership.Slug]
	if !ok {
		return false, fmt.Errorf("unknown team %q", membership.Slug)
	}
	role, ok := roleMap[membership.Slug][membership.Role]
	if !ok {
		return false, fmt.Errorf("unknown role %q", membership.Role)
	}

	var member models.TeamMember
	err := s.db.Where("user_id = ? AND team_id = ?", user.ID, team.ID).First(&member).Error
	if err == nil {
		if member.RoleID != role.ID {
			return false, s.db.Model(&member).Update("role_id", role.ID).Error
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	member = models.TeamMember{UserID: user.ID, TeamID: team.ID, RoleID: role.ID}
	if err := s.db.Create(&member).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (s *seeder) createLicense(ctx context.Context, licenseData LicenseData, teamMap map[string]*models.Team) (*models.License, bool, error) {
	issuer, ok := teamMap[licenseData.IssuerSlug]
	if !ok {
		return nil, false, fmt.Errorf("unknown issuer team %q", licenseData.IssuerSlug)
	}

	var license models.License
	err := s.db.Where("issuer_team_id = ? AND name = ?", issuer.ID, licenseData.Name).First(&license).Error
	if err == nil {
		return &license, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created, err := s.entitlements.CreateLicense(ctx, issuer.ID, &service.CreateLicenseRequest{
		Name:          licenseData.Name,
		Price:         licenseData.Price,
		RenewalPeriod: models.RenewalPeriod(strings.ToUpper(licenseData.RenewalPeriod)),
		MaxUsers:      licenseData.MaxUsers,
		MaxLocations:  licenseData.MaxLocations,
		Features:      licenseData.Features,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// purchaseOnce buys license for the team unless the team already holds a purchase of it.
// Purchase itself is not idempotent, so reruns of the seed must check first.
func (s *seeder) purchaseOnce(ctx context.Context, license *models.License, slug string, teamMap map[string]*models.Team) (bool, error) {
	team, ok := teamMap[slug]
	if !ok {
		return false, fmt.Errorf("unknown team %q", slug)
	}

	var count int64
	if err := s.db.Model(&models.PurchasedLicense{}).
		Where("team_id = ? AND license_id = ?", team.ID, license.ID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.entitlements.Purchase(ctx, team.ID, []uuid.UUID{license.ID}); err != nil {
		return false, err
	}
	return true, nil
}
