package gpu

// Program is a compiled and linked shader pair together with the location
// tables extracted at link time. A Program only exists in the valid state:
// compile or link failure means no Program is ever constructed. Programs are
// owned by the ProgramCache; callers hold references.
type Program struct {
	id         uint32
	uniforms   map[string]int32
	attributes map[string]int32
	defines    string // serialized define set, for diagnostics
}

func newProgram(b Backend, vertexSrc, fragmentSrc string, defines DefineSet) (*Program, error) {
	vs, err := b.CompileShader(StageVertex, defines.Inject(vertexSrc))
	if err != nil {
		return nil, err
	}
	fs, err := b.CompileShader(StageFragment, defines.Inject(fragmentSrc))
	if err != nil {
		b.DeleteShader(vs)
		return nil, err
	}

	id, err := b.LinkProgram(vs, fs)
	if err != nil {
		return nil, err
	}

	p := &Program{
		id:         id,
		uniforms:   make(map[string]int32),
		attributes: make(map[string]int32),
		defines:    defines.Serialize(),
	}
	for _, u := range b.ProgramUniforms(id) {
		p.uniforms[u.Name] = u.Location
	}
	for _, a := range b.ProgramAttributes(id) {
		p.attributes[a.Name] = a.Location
	}
	return p, nil
}

// ID returns the underlying program object name.
func (p *Program) ID() uint32 { return p.id }

// UniformLocation resolves a verbatim dotted/indexed uniform name. A missing
// name is not an error: defines may have eliminated the declaration.
func (p *Program) UniformLocation(name string) (int32, bool) {
	loc, ok := p.uniforms[name]
	return loc, ok
}

// AttribLocation resolves a vertex attribute name.
func (p *Program) AttribLocation(name string) (int32, bool) {
	loc, ok := p.attributes[name]
	return loc, ok
}

// UniformCount returns the number of declared active uniform entries.
func (p *Program) UniformCount() int { return len(p.uniforms) }

// Defines returns the serialized define set the program was compiled under.
func (p *Program) Defines() string { return p.defines }
