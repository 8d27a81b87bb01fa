package command

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgType is the declared type of a free-text parameter.
type ArgType string

const (
	ArgInteger ArgType = "integer"
	ArgString  ArgType = "string"
	ArgBoolean ArgType = "boolean"
	ArgUser    ArgType = "user"
	ArgRole    ArgType = "role"
)

// Arg is one positional parameter in a free-text command's schema.
type Arg struct {
	Name     string
	Type     ArgType
	Required bool
	Default  any
}

// ParseError reports a single offending parameter so the dispatcher can
// name it in the user-facing message.
type ParseError struct {
	Param  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argument %q: %s", e.Param, e.Reason)
}

// ParseArgs matches raw tokens positionally against spec and coerces them
// by declared type. Pure and synchronous; all failures are *ParseError.
// A nil spec yields a nil map; the caller passes the raw tokens through.
func ParseArgs(raw []string, spec []Arg) (map[string]any, error) {
	if spec == nil {
		return nil, nil
	}

	parsed := make(map[string]any, len(spec))
	for i, def := range spec {
		if i >= len(raw) {
			if def.Required {
				return nil, &ParseError{Param: def.Name, Reason: "missing required argument"}
			}
			parsed[def.Name] = def.Default
			continue
		}

		token := raw[i]
		switch def.Type {
		case ArgInteger:
			n, err := strconv.Atoi(token)
			if err != nil {
				return nil, &ParseError{Param: def.Name, Reason: "must be an integer"}
			}
			parsed[def.Name] = n
		case ArgBoolean:
			parsed[def.Name] = isTruthy(token)
		default:
			// string, user and role tokens pass through unmodified
			parsed[def.Name] = token
		}
	}
	return parsed, nil
}

func isTruthy(token string) bool {
	switch strings.ToLower(token) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}
