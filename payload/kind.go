package payload

import (
	"fmt"
	"strings"
)

// Kind is a categorical tag describing what a labeled node represents.
// The set of kinds is closed.
type Kind uint8

// Kinds of catalog objects, from the outermost to the innermost.
const (
	NoKind Kind = iota
	System
	Server
	Project
	Dataset
	Database
	Schema
	Table
	Column
)

var kindNames = [...]string{"none", "system", "server", "project", "dataset",
	"database", "schema", "table", "column"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsValid is true for all kinds of the enumeration except NoKind.
func (k Kind) IsValid() bool {
	return k > NoKind && k <= Column
}

// Kinds returns all valid kinds, outermost first.
func Kinds() []Kind {
	return []Kind{System, Server, Project, Dataset, Database, Schema, Table, Column}
}

// ParseKind maps a kind name to a Kind. Names are matched case-insensitively,
// ignoring surrounding white space. Unknown names result in ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	name := normalize(s)
	for k := System; k <= Column; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	tracer().Errorf("payload: rejecting kind %q", s)
	return NoKind, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MustParseKind is like ParseKind, but panics for unknown names.
// It is intended for initialization of package variables and for tests.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err.Error())
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// normalize lower-cases s, trims it and replaces inner blanks by underscores.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}
