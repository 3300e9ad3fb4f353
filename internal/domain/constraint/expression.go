package constraint

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/swecommon/internal/domain/codec"
)

// MaxExpressionLength bounds the size of an expression source.
const MaxExpressionLength = 1000

// ExpressionEnv is the set of variables visible to an Expression.
type ExpressionEnv struct {
	Time     time.Time `expr:"time"`
	Value    string    `expr:"value"`
	UOM      string    `expr:"uom"`
	Number   float64   `expr:"number"`
	Length   int       `expr:"length"`
	IsNumber bool      `expr:"is_number"`
	IsTime   bool      `expr:"is_time"`
}

// Expression admits values for which a boolean expr-lang expression
// evaluates to true, e.g. `is_number && number >= 0 && number < 100`.
// Evaluation errors make the value invalid.
type Expression struct {
	program *vm.Program
	Source  string `json:"expression"`
}

// NewExpression compiles source into a constraint.
func NewExpression(source string) (*Expression, error) {
	c := &Expression{Source: source}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Expression) compile() error {
	c.program = nil
	source := strings.TrimSpace(c.Source)
	if source == "" {
		return fmt.Errorf("expression cannot be empty")
	}
	if len(source) > MaxExpressionLength {
		return fmt.Errorf("expression exceeds %d characters", MaxExpressionLength)
	}

	program, err := expr.Compile(source, expr.Env(ExpressionEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("invalid expression %q: %w", c.Source, err)
	}
	c.program = program
	return nil
}

// Kind implements Constraint
func (c *Expression) Kind() string {
	return KindExpression
}

// IsValid implements Constraint
func (c *Expression) IsValid(value, uom string) (valid bool) {
	if c.program == nil {
		return false
	}

	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	output, err := expr.Run(c.program, newExpressionEnv(value, uom))
	if err != nil {
		return false
	}
	result, ok := output.(bool)
	return ok && result
}

func newExpressionEnv(value, uom string) ExpressionEnv {
	env := ExpressionEnv{
		Value:  value,
		UOM:    uom,
		Length: len([]rune(value)),
	}

	if d, err := codec.ParseDecimal(value); err == nil {
		env.Number = d.InexactFloat64()
		env.IsNumber = true
	}

	if IsGregorian(uom) {
		if t, ok := parseGregorian(strings.TrimSpace(value)); ok {
			env.Time = t
			env.IsTime = true
		}
	}

	return env
}

// MarshalJSON implements json.Marshaler
func (c Expression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Source string `json:"expression"`
	}{KindExpression, c.Source})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Expression) UnmarshalJSON(data []byte) error {
	var aux struct {
		Source string `json:"expression"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Source = aux.Source
	return c.compile()
}
