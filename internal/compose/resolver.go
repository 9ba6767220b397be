package compose

import (
	"math/rand"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/roasbeef/claudevoice/internal/persona"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
)

// Resolver selects a message template for a key: a random pick among
// the persona's variants when the persona defines the key, the static
// configuration otherwise, and none when both miss. The random source
// is injected so tests can pin selection while production keeps real
// randomness.
type Resolver struct {
	personas *persona.Set
	messages voicecfg.Messages
	rng      *rand.Rand
}

// NewResolver creates a Resolver. A nil persona set behaves as an empty
// one, and a nil rng is seeded from the clock.
func NewResolver(personas *persona.Set, messages voicecfg.Messages,
	rng *rand.Rand) *Resolver {

	if personas == nil {
		personas = persona.Empty()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Resolver{
		personas: personas,
		messages: messages,
		rng:      rng,
	}
}

// Persona returns a uniformly random persona template for key, or none
// when the persona does not define the key.
func (r *Resolver) Persona(key string) fn.Option[string] {
	tmpls := r.personas.Templates(key)
	if len(tmpls) == 0 {
		return fn.None[string]()
	}

	return fn.Some(tmpls[r.rng.Intn(len(tmpls))])
}

// PersonaNotification resolves a persona template for a notification
// kind. When the direct notification_{kind} key misses and the kind is
// idle_prompt, the lookup retries under the generic idle key before
// giving up.
func (r *Resolver) PersonaNotification(kind string) fn.Option[string] {
	direct := r.Persona("notification_" + kind)
	if direct.IsSome() {
		return direct
	}

	if kind == "idle_prompt" {
		return r.Persona(persona.KeyIdle)
	}

	return fn.None[string]()
}

// Static returns the static configuration template for key, or none
// when no template exists at any level.
func (r *Resolver) Static(key string) fn.Option[string] {
	tmpl, ok := r.messages.Lookup(key)
	if !ok {
		return fn.None[string]()
	}

	return fn.Some(tmpl)
}

// Resolve applies the full fallback order for key: persona first,
// static configuration second, none last. The caller supplies the
// hardcoded last-resort default.
func (r *Resolver) Resolve(key string) fn.Option[string] {
	if tmpl := r.Persona(key); tmpl.IsSome() {
		return tmpl
	}

	return r.Static(key)
}
