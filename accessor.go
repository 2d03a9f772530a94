package abicall

// Accessor builds the call descriptor for one method name. It accepts any
// number of arguments, including zero, and never fails: arity and type
// checks belong to the encoder.
type Accessor func(args ...any) *CallDescriptor

// Accessors is an immutable mapping from method name to Accessor.
type Accessors struct {
	accessors map[string]Accessor
	names     []string
	errors    []Fragment
}

// NewAccessors builds the accessor map for the given methods.
//
// Only function fragments participate; errors, events and constructors in
// methods are ignored. Functions are grouped by name so an overloaded name
// yields one accessor. errors is retained for inspection but is not part of
// any descriptor.
func NewAccessors(methods, errors []Fragment, opts ...AccessorOption) *Accessors {
	cfg := &accessorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	groups := make(map[string][]Fragment)
	var names []string
	for _, m := range methods {
		if !m.IsFunction() {
			continue
		}
		if _, seen := groups[m.Name]; !seen {
			names = append(names, m.Name)
		}
		groups[m.Name] = append(groups[m.Name], m.Clone())
	}

	a := &Accessors{
		accessors: make(map[string]Accessor, len(groups)),
		names:     names,
		errors:    cloneFragments(filterFragments(errors, func(f Fragment) bool { return f.Type == ErrorFragment })),
	}
	for name, candidates := range groups {
		a.accessors[name] = newAccessor(name, candidates, cfg)
	}
	return a
}

// ReadFactory builds the accessor map for read-only methods. The caller is
// expected to pass pure and view functions.
func ReadFactory(methods, errors []Fragment, opts ...AccessorOption) *Accessors {
	return NewAccessors(methods, errors, opts...)
}

// WriteFactory builds the accessor map for state-changing methods. The
// caller is expected to pass nonpayable and payable functions.
func WriteFactory(methods, errors []Fragment, opts ...AccessorOption) *Accessors {
	return NewAccessors(methods, errors, opts...)
}

func newAccessor(name string, candidates []Fragment, cfg *accessorConfig) Accessor {
	code := cfg.code
	deployed := cfg.deployedBytecode
	address := cfg.address

	return func(args ...any) *CallDescriptor {
		res := Resolve(candidates, len(args))

		d := &CallDescriptor{
			ABI:              res.ABI,
			FunctionName:     name,
			HumanReadableABI: FormatABI(res.Signatures),
			Code:             code,
			DeployedBytecode: deployed,
		}
		if len(args) > 0 {
			d.Args = make([]any, len(args))
			copy(d.Args, args)
		}
		if address != nil {
			addr := *address
			d.Address = &addr
		}
		return d
	}
}

// Get returns the accessor for name.
func (a *Accessors) Get(name string) (Accessor, bool) {
	fn, ok := a.accessors[name]
	return fn, ok
}

// Has returns true if the map has an accessor for name.
func (a *Accessors) Has(name string) bool {
	_, ok := a.accessors[name]
	return ok
}

// Call invokes the accessor for name.
func (a *Accessors) Call(name string, args ...any) (*CallDescriptor, error) {
	fn, ok := a.accessors[name]
	if !ok {
		return nil, &MethodNotFoundError{Method: name}
	}
	return fn(args...), nil
}

// MustCall is like Call but panics on error.
func (a *Accessors) MustCall(name string, args ...any) *CallDescriptor {
	d, err := a.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return d
}

// Names returns the method names in order of first declaration.
func (a *Accessors) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Len returns the number of method names.
func (a *Accessors) Len() int {
	return len(a.accessors)
}

// Errors returns the error declarations the map was built with.
func (a *Accessors) Errors() []Fragment {
	return cloneFragments(a.errors)
}
