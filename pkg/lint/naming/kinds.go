package naming

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/RamilHin/my-linter/pkg/core"
)

// Kind is the syntactic category of a symbol.
type Kind int

// Symbol kinds.
const (
	KindVariable Kind = iota
	KindFunction
	KindParameter
	KindMethod
	KindClassProperty
	KindObjectLiteralProperty
	KindObjectLiteralMethod
	KindTypeProperty
	KindTypeMethod
	KindAccessor
	KindEnumMember
	KindClass
	KindInterface
	KindTypeAlias
	KindEnum
	KindTypeParameter
)

var kindNames = map[Kind]string{
	KindVariable:              "variable",
	KindFunction:              "function",
	KindParameter:             "parameter",
	KindMethod:                "method",
	KindClassProperty:         "classProperty",
	KindObjectLiteralProperty: "objectLiteralProperty",
	KindObjectLiteralMethod:   "objectLiteralMethod",
	KindTypeProperty:          "typeProperty",
	KindTypeMethod:            "typeMethod",
	KindAccessor:              "accessor",
	KindEnumMember:            "enumMember",
	KindClass:                 "class",
	KindInterface:             "interface",
	KindTypeAlias:             "typeAlias",
	KindEnum:                  "enum",
	KindTypeParameter:         "typeParameter",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind converts a selector name to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, core.NewConfigError("selector", "unknown selector %q (valid: %s)", s, strings.Join(KindNames(), ", "))
}

// KindNames lists every selector name, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, name := range kindNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modifier is one member of the closed modifier vocabulary.
type Modifier uint8

// Modifiers that selectors may require.
const (
	ModPublic Modifier = 1 << iota
	ModPrivate
	ModProtected
	ModStatic
	ModReadonly
)

// modifierOrder fixes the rendering order of a modifier set.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModPublic, "public"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModStatic, "static"},
	{ModReadonly, "readonly"},
}

func (m Modifier) String() string {
	for _, e := range modifierOrder {
		if e.mod == m {
			return e.name
		}
	}
	return "unknown"
}

// ParseModifier converts a modifier name to a Modifier.
func ParseModifier(s string) (Modifier, error) {
	for _, e := range modifierOrder {
		if e.name == s {
			return e.mod, nil
		}
	}
	return 0, core.NewConfigError("modifiers", "unknown modifier %q (valid: public, private, protected, static, readonly)", s)
}

// Modifiers is a set of Modifier values stored as a bitset.
type Modifiers uint8

// NewModifiers builds a set from individual modifiers.
func NewModifiers(mods ...Modifier) Modifiers {
	var set Modifiers
	for _, m := range mods {
		set |= Modifiers(m)
	}
	return set
}

// ParseModifiers parses a list of modifier names. Duplicates collapse.
func ParseModifiers(names []string) (Modifiers, error) {
	var set Modifiers
	for _, name := range names {
		m, err := ParseModifier(strings.TrimSpace(name))
		if err != nil {
			return 0, err
		}
		set |= Modifiers(m)
	}
	return set, nil
}

// Has reports whether m is in the set.
func (s Modifiers) Has(m Modifier) bool {
	return s&Modifiers(m) != 0
}

// SubsetOf reports whether every modifier in s is also in other.
func (s Modifiers) SubsetOf(other Modifiers) bool {
	return s&^other == 0
}

// Count returns the number of modifiers in the set.
func (s Modifiers) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Names returns the modifier names in canonical order.
func (s Modifiers) Names() []string {
	names := []string{}
	for _, e := range modifierOrder {
		if s.Has(e.mod) {
			names = append(names, e.name)
		}
	}
	return names
}

func (s Modifiers) String() string {
	return "{" + strings.Join(s.Names(), ",") + "}"
}

// MarshalJSON renders the set as a list of names.
func (s Modifiers) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// MarshalYAML renders the set as a list of names.
func (s Modifiers) MarshalYAML() (any, error) {
	return s.Names(), nil
}
