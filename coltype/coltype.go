// coltype exports constants used for column typing across several modules.
// Such as the compiler, planner, and the catalog. These types indicate what
// type of data is stored in each schema column.
package coltype

const (
	Unknown = iota
	Int
	Str
)

type CT = int

// String returns the sql name of the type for display in schemas and errors.
func String(t CT) string {
	switch t {
	case Int:
		return "INTEGER"
	case Str:
		return "TEXT"
	}
	return "UNKNOWN"
}
