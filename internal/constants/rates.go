package constants

// Burden rates in dollars per labor hour. The reduced rate applies to
// engineering and administrative time that carries no shop overhead.
const (
	DefaultBurdenRate = 199.0
	ReducedBurdenRate = 10.0
)

// ReducedRateParts are part-name labels billed at the reduced burden rate.
var ReducedRateParts = map[string]bool{
	"RC":                        true,
	"Engineering":               true,
	"Admin":                     true,
	"RC / Engineering / Admin.": true,
}

const (
	// EngineeringWorkCenter bills at the reduced rate regardless of part.
	EngineeringWorkCenter = "REP ENG"
	// EngineeringTaskLabel bills at the reduced rate regardless of part.
	EngineeringTaskLabel = "Engineering Time"
)

const (
	// NCRWorkCenter flags rework operations (compared case-insensitively).
	NCRWorkCenter = "NCR"
	// DNIPartLabel is the dismantling-and-inspection part name.
	DNIPartLabel = "Dismantling & Inspection"
	// DNIWorkCenter is the dismantling-and-inspection work center code.
	DNIWorkCenter = "DNI"
)

// WarrantyRate is the warranty reserve taken against the order value.
const WarrantyRate = 0.015

// BufferCapPercent caps the recommended planning buffer.
const BufferCapPercent = 30.0

const StatusComplete = "Complete"
