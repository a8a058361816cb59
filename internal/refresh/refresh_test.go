package refresh

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type reloadMsg struct{ source string }

type appMsg struct{ reload reloadMsg }

func TestSearchingIsPreservedByMap(t *testing.T) {
	called := false
	p := New(Searching[reloadMsg](), WithTitle("Catalog"))

	mapped := Map(p, func(r reloadMsg) appMsg {
		called = true
		return appMsg{r}
	})

	assert.True(t, mapped.State.IsSearching())
	assert.Equal(t, "Catalog", mapped.Title)
	assert.False(t, called, "transform must not run for searching")

	_, ok := mapped.Trigger()
	assert.False(t, ok)
}

func TestIdleIsRewrapped(t *testing.T) {
	p := New(Idle(reloadMsg{source: "disk"}))

	mapped := Map(p, func(r reloadMsg) appMsg { return appMsg{r} })

	assert.Equal(t, StatusIdle, mapped.State.Status())
	assert.Empty(t, mapped.Title)
	msg, ok := mapped.Trigger()
	assert.True(t, ok)
	assert.Equal(t, appMsg{reloadMsg{source: "disk"}}, msg)
}

func TestIdentityLaw(t *testing.T) {
	for _, p := range []Properties[int]{
		New(Idle(42), WithTitle("t")),
		New(Searching[int]()),
	} {
		assert.Equal(t, p, Map(p, func(n int) int { return n }))
	}
}

func TestCompositionLaw(t *testing.T) {
	f := func(n int) int { return n * 3 }
	g := strconv.Itoa

	for _, p := range []Properties[int]{
		New(Idle(7), WithTitle("pull")),
		New(Searching[int](), WithTitle("pull")),
	} {
		assert.Equal(t,
			Map(p, func(n int) string { return g(f(n)) }),
			Map(Map(p, f), g),
		)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "searching", StatusSearching.String())
}

func TestZeroValueIsSearching(t *testing.T) {
	var s State[string]
	assert.True(t, s.IsSearching())
	assert.Equal(t, StatusSearching, s.Status())

	_, ok := s.Action()
	assert.False(t, ok)

	_, ok = Properties[int]{}.Trigger()
	assert.False(t, ok, "an unset control must not emit a zero action")
}
