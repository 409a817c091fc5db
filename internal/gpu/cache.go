package gpu

import (
	"fmt"
	"hash/fnv"
)

// ProgramCache compiles vertex+fragment source pairs under define sets and
// reuses the result for identical inputs. The key is source identity plus
// the serialized define set: same sources with different define values are
// distinct programs; repeating a call returns the identical cached handle
// with no GPU compilation.
type ProgramCache struct {
	backend  Backend
	programs map[string]*Program
	compiles int
}

func NewProgramCache(b Backend) *ProgramCache {
	return &ProgramCache{
		backend:  b,
		programs: make(map[string]*Program),
	}
}

// GetOrCompile returns the cached program for (vertexSrc, fragmentSrc,
// defines), compiling it on first use. Compile and link failures surface
// immediately as *CompileError / *LinkError; nothing is cached for a failed
// input, so a later call retries the compilation.
func (c *ProgramCache) GetOrCompile(vertexSrc, fragmentSrc string, defines DefineSet) (*Program, error) {
	key := cacheKey(vertexSrc, fragmentSrc, defines)
	if p, ok := c.programs[key]; ok {
		return p, nil
	}

	p, err := newProgram(c.backend, vertexSrc, fragmentSrc, defines)
	if err != nil {
		return nil, err
	}
	c.compiles++
	c.programs[key] = p
	return p, nil
}

// Compiles reports how many programs have actually been compiled, as opposed
// to served from cache.
func (c *ProgramCache) Compiles() int { return c.compiles }

// Len returns the number of cached programs.
func (c *ProgramCache) Len() int { return len(c.programs) }

// Release deletes every cached program. The cache remains usable.
func (c *ProgramCache) Release() {
	for key, p := range c.programs {
		c.backend.DeleteProgram(p.id)
		delete(c.programs, key)
	}
}

func cacheKey(vertexSrc, fragmentSrc string, defines DefineSet) string {
	h := fnv.New64a()
	h.Write([]byte(vertexSrc))
	h.Write([]byte{0})
	h.Write([]byte(fragmentSrc))
	return fmt.Sprintf("%x|%s", h.Sum64(), defines.Serialize())
}
