// Package query evaluates JMESPath expressions against decoded documents.
//
// Decoded documents convert to their plain map form before evaluation, so
// qualified keys are addressed by their space:local rendering.
package query

import (
	"strconv"

	"github.com/jmespath/go-jmespath"

	"github.com/xmlmap/xmlmap/document"
)

// Expression is a compiled JMESPath expression that can be evaluated
// against multiple documents.
type Expression struct {
	src  string
	expr *jmespath.JMESPath
}

// Compile parses a JMESPath expression and returns it in evaluable form.
func Compile(expression string) (*Expression, error) {
	expr, err := jmespath.Compile(expression)
	if err != nil {
		return nil, err
	}
	return &Expression{src: expression, expr: expr}, nil
}

// MustCompile is Compile, panicking on an invalid expression. Intended for
// expressions known at program start.
func MustCompile(expression string) *Expression {
	e, err := Compile(expression)
	if err != nil {
		panic(`query: Compile(` + strconv.Quote(expression) + `): ` + err.Error())
	}
	return e
}

// String returns the source expression.
func (e *Expression) String() string {
	return e.src
}

// Search evaluates the expression against a decoded document.
func (e *Expression) Search(obj *document.Object) (interface{}, error) {
	return e.expr.Search(obj.Interface())
}

// Search evaluates a JMESPath expression against a decoded document.
func Search(expression string, obj *document.Object) (interface{}, error) {
	return jmespath.Search(expression, obj.Interface())
}
