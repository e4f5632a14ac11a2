package scan

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"accessor-engine/access"
	"accessor-engine/accessor"
	"accessor-engine/kindof"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Scanner discovers and classifies the properties of exported struct types.
type Scanner struct {
	opts access.Enum
}

// NewScanner creates a Scanner honoring the given access options
// (IncludeNonPublic widens discovery to unexported members).
func NewScanner(opts access.Enum) *Scanner {
	return &Scanner{opts: opts}
}

// Scan loads the specified packages and audits every exported struct type.
// Patterns are standard Go package patterns (e.g., "./...",
// "accessor-engine/samples").
func (s *Scanner) Scan(patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	rep := &Report{}
	for _, pkg := range pkgs {
		s.scanPackage(pkg, rep)
	}

	sort.Slice(rep.Owners, func(i, j int) bool {
		return rep.Owners[i].ID.String() < rep.Owners[j].ID.String()
	})

	return rep, nil
}

// scanPackage audits the exported struct types of one loaded package.
func (s *Scanner) scanPackage(pkg *packages.Package, rep *Report) {
	scope := pkg.Types.Scope()
	qual := types.RelativeTo(pkg.Types)

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		owner := TypeID{PkgPath: pkg.PkgPath, Name: name}
		report := OwnerReport{ID: owner}

		taken := map[string]struct{}{}

		// Fields first, in declaration order.
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if !f.Exported() && !s.opts.Has(access.IncludeNonPublic) {
				continue
			}

			report.Props = append(report.Props, s.newProperty(owner, f.Name(), f.Type(), qual, "field", "field", rep))
			taken[f.Name()] = struct{}{}
		}

		// Then accessor method pairs on *T.
		s.scanMethods(named, owner, qual, taken, &report, rep)

		rep.Owners = append(rep.Owners, report)
	}
}

// scanMethods discovers X()/SetX() accessor pairs and turns them into
// method-backed properties. A field property with the same name wins.
func (s *Scanner) scanMethods(named *types.Named, owner TypeID, qual types.Qualifier, taken map[string]struct{}, report *OwnerReport, rep *Report) {
	getters := map[string]*types.Func{}
	setters := map[string]*types.Func{}

	ms := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok {
			continue
		}
		if !fn.Exported() && !s.opts.Has(access.IncludeNonPublic) {
			continue
		}

		sig := fn.Type().(*types.Signature)
		name := fn.Name()

		switch {
		case strings.HasPrefix(name, "Set") && len(name) > 3 &&
			sig.Params().Len() == 1 && sig.Results().Len() == 0:
			setters[strings.TrimPrefix(name, "Set")] = fn
		case sig.Params().Len() == 0 && sig.Results().Len() == 1:
			getters[name] = fn
		}
	}

	names := make([]string, 0, len(getters)+len(setters))
	for name := range getters {
		names = append(names, name)
	}
	for name := range setters {
		if _, dup := getters[name]; !dup {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if _, dup := taken[name]; dup {
			continue
		}

		getter, setter := getters[name], setters[name]

		var value types.Type
		if getter != nil {
			value = getter.Type().(*types.Signature).Results().At(0).Type()
		} else {
			value = setter.Type().(*types.Signature).Params().At(0).Type()
		}

		if getter != nil && setter != nil {
			written := setter.Type().(*types.Signature).Params().At(0).Type()
			if !types.Identical(value, written) {
				rep.Diags.AddWarning("mismatched-pair",
					fmt.Sprintf("getter yields %s but setter writes %s", types.TypeString(value, qual), types.TypeString(written, qual)),
					owner.String(), name)
			}
		}

		p := Property{
			Owner:     owner,
			Name:      name,
			ValueName: types.TypeString(value, qual),
			ValueKind: valueKindOf(value),
		}
		p.Strategy = accessor.ClassifyShape(p.ValueKind, kindof.OwnerReference, false)

		if getter != nil {
			p.CanRead, p.ReadVia = true, "method"
		}
		if setter != nil {
			recv := setter.Type().(*types.Signature).Recv()
			if _, byPtr := recv.Type().(*types.Pointer); !byPtr {
				// The one write-back rule the runtime layer enforces, caught
				// statically: a by-value owner receiver mutates a copy.
				rep.Diags.AddWarning("lost-write",
					fmt.Sprintf("Set%s receives the owner by value; the write never reaches the caller's instance", name),
					owner.String(), name)
			} else {
				p.CanWrite, p.WriteVia = true, "method"
			}
		}

		if p.ValueKind == kindof.KindStackOnly {
			rep.Diags.AddWarning("stack-only",
				fmt.Sprintf("value type %s cannot cross the uniform accessor contract", p.ValueName),
				owner.String(), name)
		}

		report.Props = append(report.Props, p)
	}
}

// newProperty builds a field-backed property and records stack-only findings.
func (s *Scanner) newProperty(owner TypeID, name string, value types.Type, qual types.Qualifier, readVia, writeVia string, rep *Report) Property {
	p := Property{
		Owner:     owner,
		Name:      name,
		ValueName: types.TypeString(value, qual),
		ValueKind: valueKindOf(value),
		CanRead:   true,
		CanWrite:  true,
		ReadVia:   readVia,
		WriteVia:  writeVia,
	}
	p.Strategy = accessor.ClassifyShape(p.ValueKind, kindof.OwnerReference, false)

	if p.ValueKind == kindof.KindStackOnly {
		rep.Diags.AddWarning("stack-only",
			fmt.Sprintf("value type %s cannot cross the uniform accessor contract", p.ValueName),
			owner.String(), name)
	}

	return p
}
