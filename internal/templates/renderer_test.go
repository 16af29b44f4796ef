package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfgen/cli/internal/naming"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"js", JavaScript, false},
		{"JavaScript", JavaScript, false},
		{"ts", TypeScript, false},
		{" typescript ", TypeScript, false},
		{"coffee", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStructure(t *testing.T) {
	got, err := ParseStructure("MVC")
	require.NoError(t, err)
	assert.Equal(t, MVC, got)

	got, err = ParseStructure("feature")
	require.NoError(t, err)
	assert.Equal(t, Feature, got)

	_, err = ParseStructure("hexagonal")
	assert.Error(t, err)
}

func TestLanguageExtensions(t *testing.T) {
	assert.Equal(t, "js", JavaScript.SourceExt())
	assert.Equal(t, "ts", TypeScript.SourceExt())
	assert.Equal(t, "jsx", JavaScript.ComponentExt())
	assert.Equal(t, "tsx", TypeScript.ComponentExt())
}

func TestRegistryCoversEveryVariant(t *testing.T) {
	artifacts := []Artifact{Controller, Routes, Model, Component, Stylesheet}
	for _, a := range artifacts {
		for _, l := range []Language{JavaScript, TypeScript} {
			tmpl, err := Get(a, l)
			require.NoError(t, err, "%s/%s", a, l)

			_, err = templateFS.ReadFile(tmpl.File)
			assert.NoError(t, err, "embedded file missing for %s/%s", a, l)
		}
	}
	assert.Len(t, List(), 10)

	_, err := Get("migration", JavaScript)
	assert.Error(t, err)
}

func TestRenderController(t *testing.T) {
	name := naming.Normalize("host name")

	js, err := Render(Controller, name, Options{Language: JavaScript})
	require.NoError(t, err)
	ts, err := Render(Controller, name, Options{Language: TypeScript})
	require.NoError(t, err)

	for _, handler := range []string{
		"createHostName", "getHostNames", "getHostNameById", "updateHostName", "deleteHostName",
	} {
		assert.Contains(t, js, "export const "+handler+" = async (req, res)")
		assert.Contains(t, ts, "export const "+handler+" = async (req: Request, res: Response): Promise<void>")
	}

	// Status codes are identical across variants.
	for _, out := range []string{js, ts} {
		assert.Equal(t, 1, strings.Count(out, "res.status(201)"))
		assert.Equal(t, 4, strings.Count(out, "res.status(200)"))
		assert.Equal(t, 5, strings.Count(out, "res.status(500)"))
		assert.Contains(t, out, "'HostName created successfully'")
	}
	assert.NotContains(t, js, ": Request")
}

func TestRenderRoutes(t *testing.T) {
	name := naming.Normalize("host name")

	tests := []struct {
		name       string
		opts       Options
		wantImport string
	}{
		{"mvc js", Options{Language: JavaScript, Structure: MVC}, "from '../controllers/host-name.controller.js';"},
		{"mvc ts", Options{Language: TypeScript, Structure: MVC}, "from '../controllers/host-name.controller.js';"},
		{"feature js", Options{Language: JavaScript, Structure: Feature}, "from './host-name.controller.js';"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(Routes, name, tt.opts)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantImport)

			bindings := []string{
				"router.post('/', createHostName);",
				"router.get('/', getHostNames);",
				"router.get('/:id', getHostNameById);",
				"router.put('/:id', updateHostName);",
				"router.delete('/:id', deleteHostName);",
			}
			last := -1
			for _, b := range bindings {
				idx := strings.Index(out, b)
				require.NotEqual(t, -1, idx, "missing binding %q", b)
				assert.Greater(t, idx, last, "binding %q out of order", b)
				last = idx
			}
		})
	}
}

func TestRenderModel(t *testing.T) {
	name := naming.Normalize("host")

	js, err := Render(Model, name, Options{Language: JavaScript})
	require.NoError(t, err)
	assert.Contains(t, js, "const HostSchema = new mongoose.Schema(")
	assert.Contains(t, js, "{ timestamps: true }")
	assert.Contains(t, js, "mongoose.model('Host', HostSchema)")
	assert.NotContains(t, js, "interface")

	ts, err := Render(Model, name, Options{Language: TypeScript})
	require.NoError(t, err)
	assert.Contains(t, ts, "export interface IHost extends Document")
	assert.Contains(t, ts, "createdAt?: Date;")
	assert.Contains(t, ts, "updatedAt?: Date;")
	assert.Contains(t, ts, "{ timestamps: true }")
}

func TestRenderComponent(t *testing.T) {
	name := naming.Normalize("UserCard")

	jsx, err := Render(Component, name, Options{Language: JavaScript})
	require.NoError(t, err)
	assert.Contains(t, jsx, "import styles from './UserCard.module.css';")
	assert.Contains(t, jsx, "<h2>UserCard</h2>")
	assert.Contains(t, jsx, "export default UserCard;")
	assert.NotContains(t, jsx, "Props")

	tsx, err := Render(Component, name, Options{Language: TypeScript})
	require.NoError(t, err)
	assert.Contains(t, tsx, "type UserCardProps = {};")
	assert.Contains(t, tsx, "className={styles.container}")
}

func TestRenderStylesheetIgnoresVariant(t *testing.T) {
	name := naming.Normalize("UserCard")

	js, err := Render(Stylesheet, name, Options{Language: JavaScript})
	require.NoError(t, err)
	ts, err := Render(Stylesheet, name, Options{Language: TypeScript})
	require.NoError(t, err)

	assert.Equal(t, js, ts)
	assert.Contains(t, js, ".container {")
	assert.Contains(t, js, "padding: 1rem;")
}

func TestRenderDeterministic(t *testing.T) {
	name := naming.Normalize("order item")
	for _, tmpl := range List() {
		opts := Options{Language: tmpl.Language, Structure: Feature}
		first, err := Render(tmpl.Artifact, name, opts)
		require.NoError(t, err)
		second, err := Render(tmpl.Artifact, name, opts)
		require.NoError(t, err)
		assert.Equal(t, first, second, "%s/%s", tmpl.Artifact, tmpl.Language)
	}
}

func TestRenderStringMissingKey(t *testing.T) {
	r := NewRenderer(naming.Normalize("x"), Options{Language: JavaScript})

	_, err := r.RenderString("{{.Nope}}")
	assert.Error(t, err)

	out, err := r.RenderString("{{.Name.Kebab}}")
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}
