package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutolinkStage_Prepend(t *testing.T) {
	root := parseBody(t, `<h1 id="hi">Hi</h1><h2>No id</h2>`)
	require.NoError(t, AutolinkStage{}.Apply(root))

	out := render(t, root)
	assert.Contains(t, out, `<h1 id="hi"><a aria-hidden="true" tabindex="-1" href="#hi"><span class="icon icon-link"></span></a>Hi</h1>`)
	assert.Contains(t, out, `<h2>No id</h2>`)
}

func TestAutolinkStage_Append(t *testing.T) {
	root := parseBody(t, `<h2 id="setup">Setup</h2>`)
	require.NoError(t, AutolinkStage{Behavior: AutolinkAppend}.Apply(root))

	assert.Contains(t, render(t, root), `<h2 id="setup">Setup<a aria-hidden="true" tabindex="-1" href="#setup">`)
}

func TestAutolinkStage_Wrap(t *testing.T) {
	root := parseBody(t, `<h2 id="setup">Set <em>up</em></h2>`)
	require.NoError(t, AutolinkStage{Behavior: AutolinkWrap}.Apply(root))

	assert.Contains(t, render(t, root), `<h2 id="setup"><a href="#setup">Set <em>up</em></a></h2>`)
}

func TestAutolinkStage_UnknownBehavior(t *testing.T) {
	root := parseBody(t, `<h2 id="setup">Setup</h2>`)
	assert.Error(t, AutolinkStage{Behavior: "sideways"}.Apply(root))
}
