package gpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefineSetSerialize(t *testing.T) {
	assert.Equal(t, "", DefineSet{}.Serialize())
	assert.Equal(t, "", DefineSet(nil).Serialize())

	d := DefineSet{"USE_IBL": "1", "LIGHT_COUNT": "3", "OUTPUT_SRGB": "1"}
	assert.Equal(t, "LIGHT_COUNT=3;OUTPUT_SRGB=1;USE_IBL=1", d.Serialize())
}

func TestDefineSetInjectAfterVersion(t *testing.T) {
	src := "\n#version 410 core\nvoid main() {}\n"
	out := DefineSet{"LIGHT_COUNT": "2", "USE_IBL": "1"}.Inject(src)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "#version 410 core", lines[0], "#version must stay the first directive")
	assert.Equal(t, "#define LIGHT_COUNT 2", lines[1])
	assert.Equal(t, "#define USE_IBL 1", lines[2])
	assert.Contains(t, out, "void main() {}")
}

func TestDefineSetInjectWithoutVersion(t *testing.T) {
	out := DefineSet{"FOO": ""}.Inject("void main() {}\n")
	assert.True(t, strings.HasPrefix(out, "#define FOO\n"))
}

func TestDefineSetInjectEmpty(t *testing.T) {
	src := "#version 410 core\nvoid main() {}\n"
	assert.Equal(t, src, DefineSet{}.Inject(src))
}
