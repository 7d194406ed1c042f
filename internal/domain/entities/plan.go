package entities

// PlanTier is the subscription level controlling feature gating and export
// quality.
type PlanTier string

const (
	PlanBasic   PlanTier = "basic"
	PlanPlus    PlanTier = "plus"
	PlanPremium PlanTier = "premium"
)

// Unlimited marks a limit with no upper bound (premium tiers).
const Unlimited = -1

// NormalizeTier resolves legacy and unknown tier strings. "free" is the
// historical alias for basic; anything unrecognized also falls back to basic.
func NormalizeTier(raw string) PlanTier {
	switch PlanTier(raw) {
	case PlanPlus:
		return PlanPlus
	case PlanPremium:
		return PlanPremium
	default:
		return PlanBasic
	}
}

// TierLevel orders tiers for "plan X or higher" checks.
func TierLevel(t PlanTier) int {
	switch t {
	case PlanPremium:
		return 2
	case PlanPlus:
		return 1
	default:
		return 0
	}
}

// HasPlan reports whether current satisfies the required tier. Both inputs
// are normalized first, so legacy aliases participate correctly.
func HasPlan(current, required string) bool {
	return TierLevel(NormalizeTier(current)) >= TierLevel(NormalizeTier(required))
}

// PlanFeatures is the static feature record of a tier.
type PlanFeatures struct {
	MaxQuotes      int  `json:"maxQuotes"`
	MaxClients     int  `json:"maxClients"`
	MaxServices    int  `json:"maxServices"`
	CustomBranding bool `json:"customBranding"`
	Analytics      bool `json:"analytics"`
}

// FeaturesFor is the plan catalog: a pure lookup that always returns a valid
// record, falling back to basic for unrecognized input.
func FeaturesFor(tier string) PlanFeatures {
	switch NormalizeTier(tier) {
	case PlanPremium:
		return PlanFeatures{
			MaxQuotes:      Unlimited,
			MaxClients:     Unlimited,
			MaxServices:    Unlimited,
			CustomBranding: true,
			Analytics:      true,
		}
	case PlanPlus:
		return PlanFeatures{
			MaxQuotes:      100,
			MaxClients:     50,
			MaxServices:    50,
			CustomBranding: true,
			Analytics:      false,
		}
	default:
		return PlanFeatures{
			MaxQuotes:      10,
			MaxClients:     5,
			MaxServices:    10,
			CustomBranding: false,
			Analytics:      false,
		}
	}
}

// Capabilities is the derived gating record: the tier's features plus the
// two convenience booleans legacy callers rely on. It is never authored
// directly, only resolved from a plan.
type Capabilities struct {
	PDF            bool `json:"pdf"`
	Whatsapp       bool `json:"whatsapp"`
	MaxQuotes      int  `json:"maxQuotes"`
	MaxClients     int  `json:"maxClients"`
	MaxServices    int  `json:"maxServices"`
	CustomBranding bool `json:"customBranding"`
	Analytics      bool `json:"analytics"`
}

// ResolveCaps derives the capability set for a plan tier. Pure and
// idempotent: resolving twice for the same tier yields the same record.
// PDF export is available on every tier (template richness differs);
// WhatsApp/email sharing starts at plus.
func ResolveCaps(tier string) Capabilities {
	t := NormalizeTier(tier)
	f := FeaturesFor(string(t))
	return Capabilities{
		PDF:            true,
		Whatsapp:       t == PlanPlus || t == PlanPremium,
		MaxQuotes:      f.MaxQuotes,
		MaxClients:     f.MaxClients,
		MaxServices:    f.MaxServices,
		CustomBranding: f.CustomBranding,
		Analytics:      f.Analytics,
	}
}

// Complete reports whether a stored capability record still carries the
// expected fields. Records persisted by older versions can miss the limit
// fields; those must be rebuilt from the plan instead of trusted.
func (c Capabilities) Complete() bool {
	return c.MaxQuotes != 0 && c.MaxClients != 0 && c.MaxServices != 0
}

// AllowsMore reports whether a store holding current records may accept one
// more, given this capability limit.
func allowsMore(limit, current int) bool {
	return limit == Unlimited || current < limit
}

func (c Capabilities) AllowsMoreQuotes(current int) bool   { return allowsMore(c.MaxQuotes, current) }
func (c Capabilities) AllowsMoreClients(current int) bool  { return allowsMore(c.MaxClients, current) }
func (c Capabilities) AllowsMoreServices(current int) bool { return allowsMore(c.MaxServices, current) }
