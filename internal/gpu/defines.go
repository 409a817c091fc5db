package gpu

import (
	"sort"
	"strings"
)

// DefineSet is the preprocessor configuration a program is compiled under:
// light counts, light type tags, feature flags. A program's defines are
// immutable; changing a value yields a different cache entry, never a
// mutation of an existing program.
type DefineSet map[string]string

// Serialize renders the set as a canonical sorted string, used both as part
// of the cache key and for diagnostics.
func (d DefineSet) Serialize() string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(d[k])
	}
	return b.String()
}

// Inject prepends the defines as `#define` lines to a GLSL source. GLSL
// requires `#version` to be the first directive, so when the source opens
// with one the define block goes immediately after it.
func (d DefineSet) Inject(source string) string {
	if len(d) == 0 {
		return source
	}

	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var block strings.Builder
	for _, k := range keys {
		block.WriteString("#define ")
		block.WriteString(k)
		if v := d[k]; v != "" {
			block.WriteByte(' ')
			block.WriteString(v)
		}
		block.WriteByte('\n')
	}

	trimmed := strings.TrimLeft(source, "\n")
	if strings.HasPrefix(trimmed, "#version") {
		if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
			return trimmed[:i+1] + block.String() + trimmed[i+1:]
		}
		return trimmed + "\n" + block.String()
	}
	return block.String() + source
}
