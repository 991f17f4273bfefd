// Package variable models the runtime's variables: scalars, lists and
// broadcast messages, identified by a uid and optionally cloud-backed.
// Persistence is the host's concern; this package only carries the entity
// and its XML serialization for project export.
package variable

import (
	"fmt"

	"github.com/Gtd232/AerfuckyingExtensions/uid"
	"github.com/Gtd232/AerfuckyingExtensions/xmlesc"
)

// Variable types. Scalar is the zero value on purpose: project files omit
// the type attribute for scalars.
const (
	Scalar           = ""
	List             = "list"
	BroadcastMessage = "broadcast_msg"
)

// Variable is one named slot in the host's variable store.
type Variable struct {
	ID      string
	Name    string
	Type    string
	IsCloud bool
	Value   any
}

// New creates a variable, minting an id when none is given. Scalars start
// at 0, lists start empty, broadcast messages carry their own name.
func New(id, name, varType string, isCloud bool) *Variable {
	if id == "" {
		id = uid.New()
	}
	v := &Variable{ID: id, Name: name, Type: varType, IsCloud: isCloud}
	switch varType {
	case List:
		v.Value = []any{}
	case BroadcastMessage:
		v.Value = name
	default:
		v.Value = float64(0)
	}
	return v
}

// ToXML serializes the variable for project export. Only the name needs
// escaping; ids and types come from controlled alphabets.
func (v *Variable) ToXML(isLocal bool) string {
	return fmt.Sprintf(`<variable type="%s" id="%s" islocal="%t" iscloud="%t">%s</variable>`,
		v.Type, v.ID, isLocal, v.IsCloud, xmlesc.Escape(v.Name))
}
