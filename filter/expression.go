package filter

import (
	"fmt"
	"strings"
	"time"
)

type operation string

const (
	OperationEqual            operation = "eq"
	OperationNotEqual         operation = "ne"
	OperationLessThan         operation = "lt"
	OperationLessThanEqual    operation = "lte"
	OperationGreaterThan      operation = "gt"
	OperationGreaterThanEqual operation = "gte"
	OperationContains         operation = "contains"
	OperationExists           operation = "exists"
	OperationBeginsWith       operation = "prefix"
	OperationIn               operation = "in"
)

type Attribute interface {
	name() string
}

type attribute string

// AttributeOf names an item attribute; multiple keys address nested values.
func AttributeOf(key ...string) Attribute {
	path := strings.Join(key, ".")
	return attribute(path)
}

// FieldOf names an attribute within the item field payload.
func FieldOf(key ...string) Attribute {
	return AttributeOf(append([]string{"fields"}, key...)...)
}

func (a attribute) name() string { return string(a) }

func Equals[U any](a Attribute, value U) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationEqual,
		Value:     value,
	})
}

func NotEquals[U any](a Attribute, value U) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationNotEqual,
		Value:     value,
	})
}

func LessThan[U comparable](a Attribute, value U) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationLessThan,
		Value:     value,
	})
}

func LessThanEqual[U comparable](a Attribute, value U) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationLessThanEqual,
		Value:     value,
	})
}

func GreaterThan[U comparable](a Attribute, value U) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationGreaterThan,
		Value:     value,
	})
}

func GreaterThanEqual[U comparable](a Attribute, value U) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationGreaterThanEqual,
		Value:     value,
	})
}

func Exists(a Attribute) Builder {
	return newBuilder(unaryCriteria{
		Attribute: a.name(),
		Operation: OperationExists,
		Value:     true,
	})
}

func NotExists(a Attribute) Builder {
	return newBuilder(unaryCriteria{
		Attribute: a.name(),
		Operation: OperationExists,
		Value:     false,
	})
}

func HasSubstring(a Attribute, substr string) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationContains,
		Value:     substr,
	})
}

func HasPrefix(a Attribute, prefix string) Builder {
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationBeginsWith,
		Value:     prefix,
	})
}

func IsOneOf[U any](a Attribute, items ...U) Builder {
	anyitems := make([]any, 0, len(items))
	for _, item := range items {
		anyitems = append(anyitems, item)
	}
	return newBuilder(binaryCriteria{
		Attribute: a.name(),
		Operation: OperationIn,
		Value:     anyitems,
	})
}

func IsBetween[U comparable](a Attribute, left U, right U) Builder {
	return newBuilder(betweenCriteria{
		Attribute: a.name(),
		Left:      left,
		Right:     right,
	})
}

func TimestampEquals(a Attribute, value time.Time) Builder {
	return Equals(a, value.Format(time.RFC3339))
}

func TimestampBetween(a Attribute, start, end time.Time) Builder {
	return IsBetween(a, start.Format(time.RFC3339), end.Format(time.RFC3339))
}

// Expression is a criteria tree compiled into content API query parameters
// by [QueryValues].
type Expression interface {
	fmt.Stringer
	evaluate(*queryEvaluator) error
}

type binaryCriteria struct {
	Attribute string
	Operation operation
	Value     any
}

func (b binaryCriteria) String() string {
	return fmt.Sprintf("('%s' %s '%v')", b.Attribute, b.Operation, b.Value)
}

func (b binaryCriteria) evaluate(e *queryEvaluator) error {
	return e.evaluateBinary(b)
}

type unaryCriteria struct {
	Attribute string
	Operation operation
	Value     bool
}

func (u unaryCriteria) String() string {
	return fmt.Sprintf("('%s' %s %v)", u.Attribute, u.Operation, u.Value)
}

func (u unaryCriteria) evaluate(e *queryEvaluator) error {
	return e.evaluateUnary(u)
}

type betweenCriteria struct {
	Attribute string
	Left      any
	Right     any
}

func (b betweenCriteria) String() string {
	return fmt.Sprintf("('%s' between '%v' and '%v')", b.Attribute, b.Left, b.Right)
}

func (b betweenCriteria) evaluate(e *queryEvaluator) error {
	return e.evaluateBetween(b)
}

type andCriteria struct {
	Left  Expression
	Right Expression
}

func (a andCriteria) String() string {
	return fmt.Sprintf("(%s and %s)", a.Left, a.Right)
}

func (a andCriteria) evaluate(e *queryEvaluator) error {
	return e.evaluateAnd(a)
}

type orCriteria struct {
	Members []Expression
}

func (o orCriteria) String() string {
	parts := make([]string, 0, len(o.Members))
	for _, member := range o.Members {
		parts = append(parts, member.String())
	}
	return "(" + strings.Join(parts, " or ") + ")"
}

func (o orCriteria) evaluate(e *queryEvaluator) error {
	return e.evaluateOr(o)
}

type notCriteria struct {
	Expr Expression
}

func (n notCriteria) String() string {
	return fmt.Sprintf("(not %s)", n.Expr)
}

func (n notCriteria) evaluate(e *queryEvaluator) error {
	return e.evaluateNot(n)
}

// Builder composes criteria into an [Expression].
type Builder struct {
	expr Expression
}

func newBuilder(e Expression) Builder { return Builder{expr: e} }

func (b Builder) And(other Builder) Builder {
	return newBuilder(andCriteria{Left: b.expr, Right: other.expr})
}

func (b Builder) Or(other Builder) Builder {
	if or, ok := b.expr.(orCriteria); ok {
		or.Members = append(or.Members, other.expr)
		return newBuilder(or)
	}
	return newBuilder(orCriteria{Members: []Expression{b.expr, other.expr}})
}

func (b Builder) Not() Builder {
	return newBuilder(notCriteria{Expr: b.expr})
}

func (b Builder) Expression() Expression { return b.expr }

func (b Builder) String() string {
	if b.expr == nil {
		return ""
	}
	return b.expr.String()
}
