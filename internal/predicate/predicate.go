// Package predicate models structured search predicates as a typed
// expression tree. The tree is storage-agnostic: the retriever owns the
// translation into its query language, which keeps the ranking core
// decoupled from any specific storage technology and the predicates
// independently testable.
package predicate

// Field identifies a plant record column a condition binds to.
type Field string

// Fields referenced by predicates.
const (
	FieldName           Field = "name"
	FieldScientificName Field = "scientific_name"
	FieldSeason         Field = "season"
	FieldClimate        Field = "climate"
	FieldCare           Field = "care_instructions"
	FieldMedicinal      Field = "medicinal_properties"
	FieldDifficulty     Field = "difficulty_level"
	FieldEcoBenefits    Field = "eco_benefits"
	FieldGrowthHeight   Field = "growth_height_cm"
)

// Op is a comparison operator.
type Op int

const (
	// OpEq tests case-insensitive equality.
	OpEq Op = iota
	// OpContains tests case-insensitive substring presence.
	OpContains
	// OpNotEmpty tests that a text column is present and non-empty.
	OpNotEmpty
	// OpGT tests numeric greater-than.
	OpGT
)

// Tier levels. Lower number means a stronger identity signal.
const (
	TierPlantIdentity = 1 // exact plant mention or direct lexical hit
	TierCategory      = 2 // category and modifier filters
	TierKeyword       = 3 // broad keyword fallback
)

// Expr is a node of the predicate tree.
type Expr interface {
	isExpr()
}

// Cond is a leaf condition: field, operator, bound value.
type Cond struct {
	Field Field
	Op    Op
	Value any
}

// And combines sub-expressions conjunctively.
type And []Expr

// Or combines sub-expressions disjunctively.
type Or []Expr

func (Cond) isExpr() {}
func (And) isExpr()  {}
func (Or) isExpr()   {}

// Group is one tier's contribution to the predicate set. Groups are
// combined with AND; alternatives inside a group are already expressed
// with Or nodes.
type Group struct {
	Tier int
	Expr Expr
}

// Hint is the coarse pre-sort the retriever applies before returning
// candidates. Final ordering is owned by the ranker.
type Hint struct {
	// NameTerm is the lower-cased raw query; exact name matches sort
	// first.
	NameTerm string
	// PreferBeginner promotes beginner-difficulty records when the query
	// carries a beginner-preference keyword.
	PreferBeginner bool
}

// Set is the ordered predicate set for one query.
type Set struct {
	Groups []Group
	Hint   Hint
}

// Empty reports whether the set carries no conditions, in which case the
// retriever degrades to "match everything".
func (s *Set) Empty() bool {
	return len(s.Groups) == 0
}

// HasTier reports whether any group belongs to the given tier.
func (s *Set) HasTier(tier int) bool {
	for _, g := range s.Groups {
		if g.Tier == tier {
			return true
		}
	}
	return false
}
