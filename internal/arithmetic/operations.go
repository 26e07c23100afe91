package arithmetic

// Func is the common shape every operation is adapted to.
type Func func(a, b float64) (float64, error)

// Operands names the two inputs of an operation in responses.
type Operands int

const (
	OperandsAB           Operands = iota // "a" and "b"
	OperandsBaseExponent                 // "base" and "exponent"
)

// Operation describes one arithmetic endpoint.
type Operation struct {
	Name     string // route segment and metric attribute, e.g. "add"
	Tag      string // value of the "operation" field in responses, e.g. "addition"
	Operands Operands
	Func     Func
}

// Operations lists the operations in the order they are exposed.
var Operations = []Operation{
	{Name: "add", Tag: "addition", Operands: OperandsAB, Func: infallible(Add)},
	{Name: "subtract", Tag: "subtraction", Operands: OperandsAB, Func: infallible(Subtract)},
	{Name: "multiply", Tag: "multiplication", Operands: OperandsAB, Func: infallible(Multiply)},
	{Name: "divide", Tag: "division", Operands: OperandsAB, Func: Divide},
	{Name: "power", Tag: "power", Operands: OperandsBaseExponent, Func: infallible(Power)},
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	for _, op := range Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

func infallible(f func(a, b float64) float64) Func {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}
