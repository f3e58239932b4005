package ogmeta

import "strings"

// profileParser gates the profile property family on the document's
// declared object type. The type check happens once, on the first relevant
// declaration, and the decision is frozen for the rest of the pass even if
// the type changes later.
type profileParser struct {
	checkedType   bool
	isProfileType bool
}

var _ structuralParser = (*profileParser)(nil)

func (p *profileParser) consume(_, _ string, table map[string]string) bool {
	if !p.checkedType {
		objType, ok := table[typeProp]
		p.isProfileType = ok && strings.EqualFold(objType, profileObjectType)
		p.checkedType = true
	}

	// Profile values go into the property table only for profile objects.
	return p.isProfileType
}

// fullName concatenates first_name and last_name from the property table,
// separated by a single space only when both are non-empty. Returns nil
// unless the document was gated as a profile object; an empty string result
// is valid when both names are absent or empty.
func (p *profileParser) fullName(table map[string]string) *string {
	if !p.isProfileType {
		return nil
	}

	name := table[firstNameProp]
	if last := table[lastNameProp]; last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	return &name
}
