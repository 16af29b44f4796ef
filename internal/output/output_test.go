package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestSetupLogging_Levels(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel(), "verbose should set debug level")

	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel(), "default should be info level")
}

func TestModuleLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	l := ModuleLogger("user-card")
	require.NotNil(t, l)
	assert.Contains(t, l.GetPrefix(), "user-card")
}

func TestPrintln_UsesConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Println("hello")
	Print("world")

	assert.Equal(t, "hello\nworld", buf.String())
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, colorGreen, statusStyle(StatusCreated).GetForeground())
	assert.Equal(t, ColorYellow, statusStyle(StatusExists).GetForeground())
	assert.True(t, statusStyle(StatusFailed).GetBold())
	assert.True(t, statusStyle(StatusPlanned).GetFaint())
}

func TestFormatFileLine(t *testing.T) {
	line := stripAnsi(FormatFileLine("src/models/host.model.js", StatusCreated))
	assert.True(t, strings.HasPrefix(line, "f:src/models/host.model.js"))
	assert.True(t, strings.HasSuffix(line, StatusCreated))

	t.Run("alignment consistency", func(t *testing.T) {
		a := stripAnsi(FormatFileLine("src/a.js", StatusExists))
		b := stripAnsi(FormatFileLine("src/controllers/longer.controller.js", StatusExists))
		assert.Equal(t, strings.Index(a, StatusExists), strings.Index(b, StatusExists))
	})
}

func TestFormatVetCheck(t *testing.T) {
	withDetail := stripAnsi(FormatVetCheck("Config file found", "~/.pfg/config.yaml"))
	assert.Contains(t, withDetail, "✔ Config file found")
	assert.Contains(t, withDetail, "~/.pfg/config.yaml")

	noDetail := stripAnsi(FormatVetCheck("Schema valid", ""))
	assert.False(t, strings.HasSuffix(noDetail, " "))
}

func TestRenderFileTree(t *testing.T) {
	out := stripAnsi(RenderFileTree("src", map[string]string{
		"controllers/host.controller.js": "CRUD handlers",
		"routes/host.routes.js":          "Express router",
		"models/host.model.js":           "Mongoose schema",
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "src/", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├── controllers/"))
	assert.True(t, strings.HasPrefix(lines[2], "│   └── host.controller.js"))
	assert.Contains(t, lines[2], "CRUD handlers")
	assert.True(t, strings.HasPrefix(lines[5], "└── routes/"))

	assert.Empty(t, RenderFileTree("src", nil))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatYAML, ParseFormat("yml"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatTable, ParseFormat("table"))
	assert.False(t, ParseFormat("xml").IsValid())
}

func testPlanDocument() PlanDocument {
	return PlanDocument{
		Name:     "UserCard",
		Kind:     "component",
		Language: "typescript",
		Root:     "/proj",
		Dir:      "src/components/UserCard",
		Files: []PlanFile{
			{Path: "src/components/UserCard/UserCard.tsx", Artifact: "component", Content: "tsx"},
			{Path: "src/components/UserCard/UserCard.module.css", Artifact: "stylesheet", Content: "css"},
		},
	}
}

func TestWritePlan_Structured(t *testing.T) {
	doc := testPlanDocument()

	var jsonBuf bytes.Buffer
	require.NoError(t, WritePlan(&jsonBuf, doc, FormatJSON))
	var fromJSON PlanDocument
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, doc, fromJSON)

	var yamlBuf bytes.Buffer
	require.NoError(t, WritePlan(&yamlBuf, doc, FormatYAML))
	assert.Contains(t, yamlBuf.String(), "path: src/components/UserCard/UserCard.tsx")
	var fromYAML PlanDocument
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, doc, fromYAML)
}

func TestWritePlan_Human(t *testing.T) {
	doc := testPlanDocument()

	var text bytes.Buffer
	require.NoError(t, WritePlan(&text, doc, FormatText))
	out := stripAnsi(text.String())
	assert.Contains(t, out, "f:src/components/UserCard/UserCard.tsx")
	assert.Contains(t, out, StatusPlanned)

	var tbl bytes.Buffer
	require.NoError(t, WritePlan(&tbl, doc, FormatTable))
	assert.Contains(t, tbl.String(), "ARTIFACT")
	assert.Contains(t, tbl.String(), "stylesheet")

	assert.Error(t, WritePlan(&tbl, doc, Format("xml")))
}
