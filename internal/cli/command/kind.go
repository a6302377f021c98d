package command

import (
	"fmt"
	"strings"
)

// Kind is the primitive type a parameter coerces its token to.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) valid() bool {
	return k >= KindString && k <= KindBool
}

// ParseKind maps a declared type name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.TrimSpace(name) {
	case "string":
		return KindString, nil
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "bool":
		return KindBool, nil
	default:
		return 0, fmt.Errorf("unsupported type %q (allowed: string, int, float, bool)", name)
	}
}
