package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"governance-portal-backend/internal/cache"
	"governance-portal-backend/internal/database/models"
	apperrors "governance-portal-backend/internal/errors"
	"governance-portal-backend/internal/logger"
	"governance-portal-backend/internal/metrics"
	"governance-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// Feature keys gated per tenant type
const (
	FeatureCompliance          = "compliance"
	FeatureLocations           = "locations"
	FeatureTeamMembers         = "team_members"
	FeatureWebhooks            = "webhooks"
	FeatureLivestockMonitoring = "livestock_monitoring"
	FeatureVideoStreams        = "video_streams"
	FeaturePPEInspection       = "ppe_inspection"
	FeatureVendors             = "vendors"
)

var defaultFeatures = []string{FeatureCompliance, FeatureLocations, FeatureTeamMembers, FeatureWebhooks}

var tenantFeatures = map[models.TenantTypeName][]string{
	models.TenantTypeDefault: defaultFeatures,
	models.TenantTypeFarm:    append(append([]string{}, defaultFeatures...), FeatureLivestockMonitoring, FeatureVideoStreams),
	models.TenantTypePPE:     append(append([]string{}, defaultFeatures...), FeaturePPEInspection, FeatureVideoStreams),
}

// locationNoun matches the generic noun as a whole word, singular or plural, in any case
var locationNoun = regexp.MustCompile(`(?i)\b(locations|location)\b`)

// Vocabulary rewrites the generic noun "Location" into the tenant's own term
type Vocabulary struct {
	singular string
	plural   string
}

// NewVocabulary returns the vocabulary of a tenant type; unknown types keep the generic noun
func NewVocabulary(tenantType models.TenantTypeName) Vocabulary {
	switch tenantType {
	case models.TenantTypePPE:
		return Vocabulary{singular: "Facility", plural: "Facilities"}
	case models.TenantTypeFarm:
		return Vocabulary{singular: "Farm", plural: "Farms"}
	default:
		return Vocabulary{singular: "Location", plural: "Locations"}
	}
}

// Apply replaces every whole-word "location"/"locations" in text, mirroring the case of each match.
// Applying it twice gives the same result as applying it once.
func (v Vocabulary) Apply(text string) string {
	if v.singular == "" || v.singular == "Location" {
		return text
	}
	return locationNoun.ReplaceAllStringFunc(text, func(match string) string {
		replacement := v.singular
		if strings.EqualFold(match, "locations") {
			replacement = v.plural
		}
		return matchCase(match, replacement)
	})
}

// Label returns the tenant term for a single generic noun
func (v Vocabulary) Label(noun string) string {
	return v.Apply(noun)
}

// MarshalJSON exposes the noun mapping so clients can render labels
func (v Vocabulary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"Location":  v.Label("Location"),
		"Locations": v.Label("Locations"),
	})
}

func matchCase(match, replacement string) string {
	switch {
	case match == strings.ToUpper(match):
		return strings.ToUpper(replacement)
	case match == strings.ToLower(match):
		return strings.ToLower(replacement)
	default:
		return replacement
	}
}

// TenantPolicy is the vocabulary and feature set that applies to a team
type TenantPolicy struct {
	TeamID          uuid.UUID             `json:"team_id"`
	TenantType      models.TenantTypeName `json:"tenant_type"`
	Vocabulary      Vocabulary            `json:"vocabulary"`
	EnabledFeatures []string              `json:"enabled_features"`
}

// HasFeature reports whether key is enabled for the team
func (p *TenantPolicy) HasFeature(key string) bool {
	for _, feature := range p.EnabledFeatures {
		if feature == key {
			return true
		}
	}
	return false
}

// PolicyCache is a read-through cache of resolved policies
type PolicyCache interface {
	Get(ctx context.Context, teamID uuid.UUID) (*cache.PolicyEntry, error)
	Set(ctx context.Context, teamID uuid.UUID, entry *cache.PolicyEntry) error
	Invalidate(ctx context.Context, teamID uuid.UUID) error
}

// TenantPolicyResolver derives the tenant policy of a team
type TenantPolicyResolver struct {
	store   repository.Store
	cache   PolicyCache
	metrics *metrics.Metrics
}

// NewTenantPolicyResolver creates a new resolver. policyCache may be nil to disable caching.
func NewTenantPolicyResolver(store repository.Store, policyCache PolicyCache, m *metrics.Metrics) *TenantPolicyResolver {
	return &TenantPolicyResolver{
		store:   store,
		cache:   policyCache,
		metrics: m,
	}
}

// Resolve returns the policy of a team. Unknown or missing tenant types resolve to the Default set.
func (r *TenantPolicyResolver) Resolve(ctx context.Context, teamID uuid.UUID) (*TenantPolicy, error) {
	log := logger.WithContext(ctx).WithField("team_id", teamID)

	if r.cache != nil {
		entry, err := r.cache.Get(ctx, teamID)
		switch {
		case err != nil:
			r.metrics.PolicyCache("error")
			log.WithError(err).Warn("Tenant policy cache read failed")
		case entry != nil:
			r.metrics.PolicyCache("hit")
			return newTenantPolicy(teamID, models.TenantTypeName(entry.TenantType), entry.Features), nil
		default:
			r.metrics.PolicyCache("miss")
		}
	}

	team, err := r.store.Teams().GetByID(ctx, teamID)
	if err != nil {
		return nil, storeError("resolve tenant policy", err, apperrors.ErrTeamNotFound)
	}

	tenantType := models.TenantTypeDefault
	if team.TenantType != nil && team.TenantType.Name.IsValid() {
		tenantType = team.TenantType.Name
	}

	features := append([]string{}, tenantFeatures[tenantType]...)
	if team.UseVendors {
		features = append(features, FeatureVendors)
	}
	policy := newTenantPolicy(teamID, tenantType, features)

	if r.cache != nil {
		entry := &cache.PolicyEntry{TenantType: string(tenantType), Features: features}
		if err := r.cache.Set(ctx, teamID, entry); err != nil {
			log.WithError(err).Warn("Tenant policy cache write failed")
		}
	}
	return policy, nil
}

// Invalidate drops the cached policy of a team. A cache hit does not consult the store,
// so callers that change or remove a team outside this service must invalidate it.
func (r *TenantPolicyResolver) Invalidate(ctx context.Context, teamID uuid.UUID) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Invalidate(ctx, teamID)
}

func newTenantPolicy(teamID uuid.UUID, tenantType models.TenantTypeName, features []string) *TenantPolicy {
	if !tenantType.IsValid() {
		tenantType = models.TenantTypeDefault
	}
	if features == nil {
		features = []string{}
	}
	return &TenantPolicy{
		TeamID:          teamID,
		TenantType:      tenantType,
		Vocabulary:      NewVocabulary(tenantType),
		EnabledFeatures: features,
	}
}
