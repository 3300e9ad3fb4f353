package values

import (
	"fmt"
	"strings"
)

// Profile is a set of audience tags controlling which fields of a schema
// element are shown or editable. Profiles compose as a bit set.
type Profile uint8

const (
	// ProfileSimple is the end-user audience.
	ProfileSimple Profile = 1 << iota
	// ProfileExpert is the audience that sees descriptive metadata.
	ProfileExpert
	// ProfileValue is the raw-value audience.
	ProfileValue
)

// Composite profiles used by the field tables.
const (
	ProfileNone              Profile = 0
	ProfileSimpleExpert              = ProfileSimple | ProfileExpert
	ProfileSimpleExpertValue         = ProfileSimple | ProfileExpert | ProfileValue
)

var profileNames = []struct {
	bit  Profile
	name string
}{
	{ProfileSimple, "simple"},
	{ProfileExpert, "expert"},
	{ProfileValue, "value"},
}

// ParseProfile parses a comma separated profile list such as "simple,expert".
// Names are case-insensitive and surrounding whitespace is ignored.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		bit, ok := profileBit(name)
		if !ok {
			return ProfileNone, fmt.Errorf("invalid profile: %s", name)
		}
		p |= bit
	}
	return p, nil
}

// MustParseProfile parses a profile or panics
func MustParseProfile(s string) Profile {
	p, err := ParseProfile(s)
	if err != nil {
		panic(err)
	}
	return p
}

func profileBit(name string) (Profile, bool) {
	for _, pn := range profileNames {
		if pn.name == name {
			return pn.bit, true
		}
	}
	return ProfileNone, false
}

// Has reports whether every tag of other is contained in p.
func (p Profile) Has(other Profile) bool {
	return p&other == other
}

// Intersects reports whether p and other share at least one tag.
func (p Profile) Intersects(other Profile) bool {
	return p&other != 0
}

// Union returns the combined profile.
func (p Profile) Union(other Profile) Profile {
	return p | other
}

// IsEmpty returns true if no tag is set
func (p Profile) IsEmpty() bool {
	return p == ProfileNone
}

// Names returns the tag names in canonical order.
func (p Profile) Names() []string {
	names := make([]string, 0, len(profileNames))
	for _, pn := range profileNames {
		if p&pn.bit != 0 {
			names = append(names, pn.name)
		}
	}
	return names
}

// String returns the canonical comma separated form, e.g. "simple,expert".
func (p Profile) String() string {
	return strings.Join(p.Names(), ",")
}

// MarshalText implements encoding.TextMarshaler
func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Profile) UnmarshalText(data []byte) error {
	parsed, err := ParseProfile(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
