package astcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ValidJS(t *testing.T) {
	assert.NoError(t, Check([]byte(`(function () { var a = 1; return a + 1; })();`), "bindings.js"))
}

func TestCheck_BrokenJS(t *testing.T) {
	err := Check([]byte("function f() {\n  return [1, 2;\n"), "bindings.js")
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bindings.js", se.File)
	assert.NotEmpty(t, se.Message)
}

func TestCheck_ValidCSS(t *testing.T) {
	src := `#gain {
  --fp-track-color: #374151;
  width: 60px;
}
.element { position: absolute; }
`
	assert.NoError(t, Check([]byte(src), "styles.css"))
}

func TestCheck_BrokenCSS(t *testing.T) {
	err := Check([]byte("#gain { width: 60px;\n#mix { }}}"), "styles.css")
	require.Error(t, err)
}

func TestCheck_ValidHTML(t *testing.T) {
	src := `<!DOCTYPE html>
<html><head><title>x</title></head>
<body><div id="gain" class="element"><span>Gain</span></div></body></html>
`
	assert.NoError(t, Check([]byte(src), "index.html"))
}

func TestCheck_UncheckedTypesPass(t *testing.T) {
	assert.NoError(t, Check([]byte("# not { code"), "INTEGRATION.md"))
	assert.NoError(t, Check([]byte("<svg"), "assets/logo.svg"))
	assert.Nil(t, Language("fonts/Inter-Regular.woff2"))
}

func TestCheckAll_FirstFailureByName(t *testing.T) {
	err := CheckAll(map[string][]byte{
		"b.js":      []byte("var = ;"),
		"a.js":      []byte("var a = 1;"),
		"README.md": []byte("{"),
	})
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "b.js", se.File)
}

func TestErrors_ListsEveryProblem(t *testing.T) {
	errs := Errors([]byte("var = ;\nvar ok = 1;\nvar = ;\n"), "x.js")
	assert.NotEmpty(t, errs)
	assert.Nil(t, Errors([]byte("var ok = 1;"), "x.js"))
}
