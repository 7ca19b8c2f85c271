package filter

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryValues compiles the expression into content API query parameters.
// Criteria become entries of the form filter[<attribute>][<operation>]=<value>;
// conjunctions merge entries, disjunctions group members under
// filter[or][<index>], and negations nest under filter[not].
func QueryValues(e Expression) (url.Values, error) {
	if e == nil {
		return nil, errors.New("filter: nil expression")
	}
	evaluator := &queryEvaluator{values: url.Values{}, prefix: "filter"}
	if err := e.evaluate(evaluator); err != nil {
		return nil, err
	}
	return evaluator.values, nil
}

type queryEvaluator struct {
	values url.Values
	prefix string
}

func (e *queryEvaluator) key(attribute string, op operation) string {
	return fmt.Sprintf("%s[%s][%s]", e.prefix, attribute, op)
}

func (e *queryEvaluator) evaluateBinary(b binaryCriteria) error {
	if b.Operation == OperationIn {
		items, ok := b.Value.([]any)
		if !ok || len(items) == 0 {
			return fmt.Errorf("filter: attribute '%s' requires at least one membership value", b.Attribute)
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			values = append(values, formatValue(item))
		}
		e.values.Add(e.key(b.Attribute, b.Operation), strings.Join(values, ","))
		return nil
	}
	e.values.Add(e.key(b.Attribute, b.Operation), formatValue(b.Value))
	return nil
}

func (e *queryEvaluator) evaluateUnary(u unaryCriteria) error {
	e.values.Add(e.key(u.Attribute, u.Operation), strconv.FormatBool(u.Value))
	return nil
}

func (e *queryEvaluator) evaluateBetween(b betweenCriteria) error {
	e.values.Add(e.key(b.Attribute, OperationGreaterThanEqual), formatValue(b.Left))
	e.values.Add(e.key(b.Attribute, OperationLessThanEqual), formatValue(b.Right))
	return nil
}

func (e *queryEvaluator) evaluateAnd(a andCriteria) error {
	if err := a.Left.evaluate(e); err != nil {
		return err
	}
	return a.Right.evaluate(e)
}

func (e *queryEvaluator) evaluateOr(o orCriteria) error {
	for idx, member := range o.Members {
		group := &queryEvaluator{
			values: e.values,
			prefix: fmt.Sprintf("%s[or][%d]", e.prefix, idx),
		}
		if err := member.evaluate(group); err != nil {
			return err
		}
	}
	return nil
}

func (e *queryEvaluator) evaluateNot(n notCriteria) error {
	group := &queryEvaluator{
		values: e.values,
		prefix: e.prefix + "[not]",
	}
	return n.Expr.evaluate(group)
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
