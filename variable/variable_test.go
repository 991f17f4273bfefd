package variable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	v := New("id1", "score", Scalar, false)
	assert.Equal(t, "id1", v.ID)
	assert.Equal(t, "score", v.Name)
	assert.Equal(t, float64(0), v.Value)

	l := New("id2", "items", List, false)
	assert.Equal(t, []any{}, l.Value)

	b := New("id3", "go!", BroadcastMessage, false)
	assert.Equal(t, "go!", b.Value)
}

func TestNewMintsID(t *testing.T) {
	a := New("", "score", Scalar, false)
	b := New("", "score", Scalar, false)
	assert.Len(t, a.ID, 20)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestToXML(t *testing.T) {
	v := New("@abc", "score", Scalar, false)
	assert.Equal(t,
		`<variable type="" id="@abc" islocal="true" iscloud="false">score</variable>`,
		v.ToXML(true))

	cloud := New("x1", "hi-score", Scalar, true)
	assert.Equal(t,
		`<variable type="" id="x1" islocal="false" iscloud="true">hi-score</variable>`,
		cloud.ToXML(false))
}

func TestToXMLEscapesName(t *testing.T) {
	v := New("id", `a<b & "c"`, List, false)
	assert.Equal(t,
		`<variable type="list" id="id" islocal="false" iscloud="false">a&lt;b &amp; &quot;c&quot;</variable>`,
		v.ToXML(false))
}
