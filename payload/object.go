package payload

import "fmt"

// Object is a description tagged with a kind, e.g. a table or a column of a
// database catalog. Objects are comparable and may be used as arena payload.
type Object struct {
	Kind Kind
	Description
}

// NewObject creates an object from a kind name and an object name. The kind
// name is validated; an unknown kind results in ErrUnknownKind and no object
// is created.
func NewObject(kind string, name string) (Object, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Object{}, err
	}
	if name == "" {
		return Object{}, fmt.Errorf("%w: object of kind %s", ErrEmptyName, k)
	}
	return Object{Kind: k, Description: Describe(name)}, nil
}

// WithDisplayName returns a copy of obj with its display name set.
func (obj Object) WithDisplayName(displayName string) Object {
	obj.DisplayName = displayName
	return obj
}

// ObjectKind returns the kind of obj. It lets renderers distinguish kinded
// payloads without depending on the Object type.
func (obj Object) ObjectKind() Kind {
	return obj.Kind
}

func (obj Object) String() string {
	return fmt.Sprintf("%s %s", obj.Kind, obj.Name)
}

// ObjectNamed returns a predicate matching objects of a given name and kind.
// It is intended to be used with Arena.FindNode.
func ObjectNamed(name string, kind Kind) func(Object) bool {
	return func(obj Object) bool {
		return obj.Kind == kind && obj.Name == name
	}
}
