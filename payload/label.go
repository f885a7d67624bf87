package payload

// Label is the simplest payload: a plain text label.
type Label string

func (l Label) String() string {
	return string(l)
}

// Description names a node. DisplayName is optional and, if empty, callers
// display Name.
type Description struct {
	Name        string
	DisplayName string
}

// Describe creates a description without display name.
func Describe(name string) Description {
	return Description{Name: name}
}

// NewDescription creates a description with a display name. It returns
// ErrEmptyName if name is empty.
func NewDescription(name, displayName string) (Description, error) {
	if name == "" {
		return Description{}, ErrEmptyName
	}
	return Description{Name: name, DisplayName: displayName}, nil
}

// Display returns the display name if present, the name otherwise.
func (d Description) Display() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Name
}

// HasDisplayName is true if a display name different from the name is set.
func (d Description) HasDisplayName() bool {
	return d.DisplayName != "" && d.DisplayName != d.Name
}

func (d Description) String() string {
	return d.Name
}
