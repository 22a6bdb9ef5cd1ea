package inspect

// Pipeline steps reported in InspectionError.Op.
const (
	OpConfig = "config"
	OpLoad   = "load"
	OpSample = "sample"
	OpCrop   = "crop"
)

// InspectionError is the single failure kind of an inspection. Op names the
// pipeline step that failed (one of the Op constants) and Err is the
// underlying cause.
type InspectionError struct {
	Path string
	Op   string
	Err  error
}

// NewInspectionError wraps err as the failure of step op while inspecting path.
func NewInspectionError(path, op string, err error) *InspectionError {
	return &InspectionError{Path: path, Op: op, Err: err}
}

func (e *InspectionError) Error() string {
	return e.Err.Error()
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}
