// Package filter evaluates boolean expr expressions against API records.
//
// A record is exposed to the expression by its JSON field names, so a domain
// is filtered with expressions such as:
//
//	state == "registered" && auto_renew == false
//	expires_at != nil && daysUntil(expires_at) < 30
//	lower(name) endsWith ".io"
//
// String matching uses expr's infix operators (contains, startsWith,
// endsWith, matches) together with its builtins such as lower and upper.
// The date helpers daysSince, daysUntil and parseDate are added on top.
package filter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// cacheSize bounds the number of compiled programs kept by Compile
const cacheSize = 64

var programs = newProgramCache(cacheSize)

// Filter is a compiled boolean expression
type Filter struct {
	program    *vm.Program
	expression string
}

// shadowedBuiltins are expr builtins whose names are also record fields.
// Disabling them lets the field win.
var shadowedBuiltins = []string{"type"}

// helpers are the functions every expression may call besides expr's builtins
func helpers() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(v any) (int, error) {
			t, err := toTime(v)
			if err != nil {
				return 0, err
			}
			return int(time.Since(t).Hours() / 24), nil
		},
		"daysUntil": func(v any) (int, error) {
			t, err := toTime(v)
			if err != nil {
				return 0, err
			}
			return int(time.Until(t).Hours() / 24), nil
		},
		"parseDate": func(s string) (time.Time, error) {
			return time.Parse(time.DateOnly, s)
		},
	}
}

// Compile compiles a boolean expression. Programs are cached by expression text.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, ErrEmptyExpression
	}

	if program, ok := programs.Get(expression); ok {
		return &Filter{program: program, expression: expression}, nil
	}

	options := []expr.Option{
		expr.Env(helpers()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}
	for _, name := range shadowedBuiltins {
		options = append(options, expr.DisableBuiltin(name))
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Err: err}
	}
	programs.Put(expression, program)

	return &Filter{program: program, expression: expression}, nil
}

// Match reports whether record satisfies the expression. record is anything
// that encodes to a JSON object.
func (f *Filter) Match(record any) (bool, error) {
	env, err := recordEnv(record)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}
	for name, fn := range helpers() {
		env[name] = fn
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Err: fmt.Errorf("expression returned %T, not bool", result)}
	}
	return matched, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}

// Apply returns the records f matches, in their original order
func Apply[T any](f *Filter, records []T) ([]T, error) {
	matched := make([]T, 0, len(records))
	for _, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// recordEnv flattens record into its JSON field names
func recordEnv(record any) (map[string]any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	var env map[string]any
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}
	if env == nil {
		env = make(map[string]any)
	}
	return env, nil
}

func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, nil
		}
		return time.Parse(time.DateOnly, t)
	case nil:
		return time.Time{}, fmt.Errorf("no time value")
	default:
		return time.Time{}, fmt.Errorf("cannot use %T as a time", v)
	}
}
