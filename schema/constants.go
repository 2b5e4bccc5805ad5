package schema

// Custom string types for type safety.
type (
	// Tier represents a government tier.
	Tier string

	// PolicyCategory represents one of the five fixed policy categories.
	PolicyCategory string

	// ComparisonMethod represents how a region's standing inside its peer
	// group is measured.
	ComparisonMethod string

	// ScalingMethod represents the squashing transform applied to a standing.
	ScalingMethod string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the results store.
	DatabaseBackend string
)

// Government tiers.
const (
	MetroTier Tier = "metropolitan"
	BasicTier Tier = "municipal"
)

// DefaultDualRoleRegions lists the special self-governing regions evaluated
// under both tiers regardless of which budget table carries them.
var DefaultDualRoleRegions = []string{"세종특별자치시", "제주특별자치도"}

// The fixed closed set of policy categories. Diversity is measured only over
// these five; unknown catalog categories are ignored.
const (
	CategoryEmployment    PolicyCategory = "employment"
	CategoryHousing       PolicyCategory = "housing"
	CategoryEducation     PolicyCategory = "education"
	CategoryWelfare       PolicyCategory = "welfare_culture"
	CategoryParticipation PolicyCategory = "participation_rights"
)

// AllCategories lists the five categories in catalog order.
var AllCategories = []PolicyCategory{
	CategoryEmployment,
	CategoryHousing,
	CategoryEducation,
	CategoryWelfare,
	CategoryParticipation,
}

// CategoryAliases maps catalog labels to canonical categories. The policy
// booklets key categories in Korean.
var CategoryAliases = map[string]PolicyCategory{
	"일자리":   CategoryEmployment,
	"주거":    CategoryHousing,
	"교육":    CategoryEducation,
	"복지·문화": CategoryWelfare,
	"복지.문화": CategoryWelfare,
	"참여·권리": CategoryParticipation,
	"참여.권리": CategoryParticipation,

	"employment":           CategoryEmployment,
	"housing":              CategoryHousing,
	"education":            CategoryEducation,
	"welfare_culture":      CategoryWelfare,
	"participation_rights": CategoryParticipation,
}

// All comparison methods supported.
const (
	PercentileMethod ComparisonMethod = "percentile"
	ZScoreMethod     ComparisonMethod = "zscore" // default
)

// All scaling methods supported.
const (
	SigmoidScaling ScalingMethod = "sigmoid" // default
	RootScaling    ScalingMethod = "root"
	NoScaling      ScalingMethod = "none"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All results-store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidComparisonMethods lists all valid comparison methods.
var ValidComparisonMethods = map[ComparisonMethod]struct{}{
	PercentileMethod: {},
	ZScoreMethod:     {},
}

// ValidScalingMethods lists all valid scaling methods.
var ValidScalingMethods = map[ScalingMethod]struct{}{
	SigmoidScaling: {},
	RootScaling:    {},
	NoScaling:      {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid results-store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// CanonicalCategory resolves a catalog label to its canonical category.
// The second return value is false for labels outside the fixed set.
func CanonicalCategory(label string) (PolicyCategory, bool) {
	cat, ok := CategoryAliases[label]
	return cat, ok
}
