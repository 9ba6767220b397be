package compose

import (
	"math/rand"
	"testing"

	"github.com/roasbeef/claudevoice/internal/persona"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
	"github.com/stretchr/testify/require"
)

const testPersonaDoc = `# Voice

## Acknowledgments
- Aye aye.
- On the case.

## Completions
- Shipped it. {summary}

## Notification_deploy_done
- The deploy landed.
`

func testResolver(messages voicecfg.Messages) *Resolver {
	return NewResolver(
		persona.Parse([]byte(testPersonaDoc)), messages,
		rand.New(rand.NewSource(1)),
	)
}

// TestResolverPersonaFirst verifies persona templates win over static
// configuration.
func TestResolverPersonaFirst(t *testing.T) {
	r := testResolver(voicecfg.Messages{"prompt_submit": "Working."})

	tmpl := r.Resolve(persona.KeyPromptSubmit)
	require.True(t, tmpl.IsSome())
	require.Contains(t,
		[]string{"Aye aye.", "On the case."}, tmpl.UnwrapOr(""),
	)
}

// TestResolverStaticFallback verifies missing persona keys fall through
// to the static configuration.
func TestResolverStaticFallback(t *testing.T) {
	r := testResolver(nil)

	tmpl := r.Resolve(persona.KeyIdle)
	require.Equal(t, "Waiting for your input.", tmpl.UnwrapOr(""))
}

// TestResolverMiss verifies unknown keys resolve to none.
func TestResolverMiss(t *testing.T) {
	r := testResolver(nil)

	require.True(t, r.Resolve("notification_build_failed").IsNone())
}

// TestResolverCoversAllVariants verifies every persona variant is
// eventually selected.
func TestResolverCoversAllVariants(t *testing.T) {
	r := testResolver(nil)

	seen := make(map[string]bool)
	for range 100 {
		seen[r.Persona(persona.KeyPromptSubmit).UnwrapOr("")] = true
	}

	require.True(t, seen["Aye aye."])
	require.True(t, seen["On the case."])
}

// TestResolverDeterministic verifies identical seeds produce identical
// picks.
func TestResolverDeterministic(t *testing.T) {
	a := testResolver(nil)
	b := testResolver(nil)

	for range 20 {
		require.Equal(t,
			a.Persona(persona.KeyPromptSubmit),
			b.Persona(persona.KeyPromptSubmit),
		)
	}
}

// TestPersonaNotificationDirect verifies the custom kind heading is
// addressable.
func TestPersonaNotificationDirect(t *testing.T) {
	r := testResolver(nil)

	tmpl := r.PersonaNotification("deploy_done")
	require.Equal(t, "The deploy landed.", tmpl.UnwrapOr(""))
}

// TestPersonaNotificationIdleRetry verifies idle_prompt retries the
// generic idle section only when the direct key misses.
func TestPersonaNotificationIdleRetry(t *testing.T) {
	set := persona.Parse([]byte("## Idle\n- Still here.\n"))
	r := NewResolver(set, nil, rand.New(rand.NewSource(1)))

	require.Equal(t,
		"Still here.", r.PersonaNotification("idle_prompt").UnwrapOr(""),
	)
	require.True(t, r.PersonaNotification("permission_prompt").IsNone())
}
