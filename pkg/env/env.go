// Package env expands env(VAR_NAME) references in configuration values.
package env

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml/ast"
)

// refPattern matches env(VAR_NAME); group 1 is the variable name
var refPattern = regexp.MustCompile(`env\(([^)]+)\)`)

// unsafeChars are control characters rejected in substituted values.
// Tab, LF and CR are allowed for multiline secrets.
var unsafeChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

// SubstituteEnvVarsNode expands env(VAR_NAME) references in the scalar values
// below node. Mapping keys and aliases are left alone. References to unset
// variables are kept verbatim so CheckResolved can report them.
func SubstituteEnvVarsNode(node ast.Node) error {
	if node == nil {
		return nil
	}
	s := &substituter{}
	ast.Walk(s, node)
	return s.err
}

type substituter struct {
	err error
}

func (s *substituter) Visit(node ast.Node) ast.Visitor {
	if s.err != nil {
		return nil
	}
	switch n := node.(type) {
	case *ast.MappingValueNode:
		// skip the key
		if n.Value != nil {
			ast.Walk(s, n.Value)
		}
		return nil
	case *ast.MappingKeyNode, *ast.AliasNode, *ast.CommentNode:
		return nil
	case *ast.LiteralNode:
		if n.Value != nil {
			n.Value.Value, s.err = Expand(n.Value.Value)
		}
		return nil
	case *ast.StringNode:
		n.Value, s.err = Expand(n.Value)
		return nil
	}
	return s
}

// Expand replaces every env(VAR_NAME) in input with the variable's value.
func Expand(input string) (string, error) {
	var err error
	out := refPattern.ReplaceAllStringFunc(input, func(ref string) string {
		name := refPattern.FindStringSubmatch(ref)[1]
		value, ok := os.LookupEnv(name)
		if !ok {
			return ref
		}
		if unsafeChars.MatchString(value) {
			err = fmt.Errorf("environment variable %s contains disallowed control characters", name)
			return ""
		}
		return value
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// CheckResolved fails when value still holds an env(...) reference, naming the
// field and variable, e.g. "store.s3.bucket: environment variable BUCKET is not set".
func CheckResolved(value, field string) error {
	if m := refPattern.FindStringSubmatch(value); m != nil {
		return fmt.Errorf("%s: environment variable %s is not set", field, m[1])
	}
	return nil
}
