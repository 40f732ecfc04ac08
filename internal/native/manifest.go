package native

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/relaycore/internal/ctxlog"
	"github.com/vk/relaycore/internal/fsutil"
	"github.com/vk/relaycore/internal/value"
)

// manifestConfig is the top-level structure of a module manifest file.
type manifestConfig struct {
	Functions []*functionDecl `hcl:"function,block"`
}

// functionDecl declares one native function in a manifest.
type functionDecl struct {
	QualifiedName string     `hcl:"qualified_name,label"`
	Description   string     `hcl:"description,optional"`
	Public        bool       `hcl:"public,optional"`
	Args          []*argDecl `hcl:"arg,block"`
	Rets          []*retDecl `hcl:"ret,block"`
	Remain        hcl.Body   `hcl:",remain"`
}

// argDecl declares one named, typed argument.
type argDecl struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

// retDecl declares one typed return value.
type retDecl struct {
	Type hcl.Expression `hcl:"type"`
}

// manifestFunction is a fully translated manifest declaration, comparable
// against a registered Descriptor.
type manifestFunction struct {
	QualifiedName string
	Public        bool
	Args          []value.TypeSpec
	Returns       []value.TypeSpec
}

// parseManifest translates one manifest source into declarations.
func parseManifest(name string, src []byte) ([]*manifestFunction, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %s", name, diags.Error())
	}

	var cfg manifestConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %s", name, diags.Error())
	}

	out := make([]*manifestFunction, 0, len(cfg.Functions))
	for _, fn := range cfg.Functions {
		mf := &manifestFunction{QualifiedName: fn.QualifiedName, Public: fn.Public}
		for _, arg := range fn.Args {
			spec, err := typeExprToSpec(arg.Type)
			if err != nil {
				return nil, fmt.Errorf("manifest %s, function '%s', arg '%s': %w", name, fn.QualifiedName, arg.Name, err)
			}
			mf.Args = append(mf.Args, spec)
		}
		for i, ret := range fn.Rets {
			spec, err := typeExprToSpec(ret.Type)
			if err != nil {
				return nil, fmt.Errorf("manifest %s, function '%s', return %d: %w", name, fn.QualifiedName, i, err)
			}
			mf.Returns = append(mf.Returns, spec)
		}
		out = append(out, mf)
	}
	return out, nil
}

// LoadManifestDir registers every .hcl manifest found under path.
func (r *Registry) LoadManifestDir(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	files, err := fsutil.FindManifests(path)
	if err != nil {
		return fmt.Errorf("failed to scan manifest path %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found in path.", "path", path)
		return nil
	}
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("failed to read manifest %s: %w", f, err)
		}
		r.RegisterManifest(filepath.Base(f), src)
	}
	logger.Debug("Manifests loaded from path.", "path", path, "count", len(files))
	return nil
}

// Validate performs a strict parity check between the registered manifests
// and the Go-registered descriptors. Every manifest function must have a
// matching registered implementation, every public descriptor must be
// declared by some manifest, and the declared signatures must agree
// exactly.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	declared := make(map[string]*manifestFunction)
	for name, src := range r.manifests {
		fns, err := parseManifest(name, src)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		for _, fn := range fns {
			if _, ok := declared[fn.QualifiedName]; ok {
				errs = append(errs, fmt.Sprintf("function '%s' declared by more than one manifest", fn.QualifiedName))
				continue
			}
			declared[fn.QualifiedName] = fn
		}
	}

	for qn, mf := range declared {
		reg, ok := r.funcs[qn]
		if !ok {
			errs = append(errs, fmt.Sprintf("manifest declares '%s', but no Go implementation is registered", qn))
			continue
		}
		errs = append(errs, compareSignature(qn, mf, reg.desc)...)
	}

	for qn, reg := range r.funcs {
		if !reg.desc.Public {
			continue
		}
		if _, ok := declared[qn]; !ok {
			errs = append(errs, fmt.Sprintf("public function '%s' is registered but declared by no manifest", qn))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Manifest validation passed.", "functions", len(declared))
	return nil
}

// compareSignature reports every divergence between a manifest declaration
// and the registered descriptor.
func compareSignature(qn string, mf *manifestFunction, desc *Descriptor) []string {
	var errs []string
	if mf.Public != desc.Public {
		errs = append(errs, fmt.Sprintf("function '%s': manifest public=%t, Go descriptor public=%t", qn, mf.Public, desc.Public))
	}
	if len(mf.Args) != len(desc.Args) {
		errs = append(errs, fmt.Sprintf("function '%s': manifest declares %d argument(s), Go descriptor declares %d", qn, len(mf.Args), len(desc.Args)))
	} else {
		for i, spec := range mf.Args {
			if spec != desc.Args[i] {
				errs = append(errs, fmt.Sprintf("function '%s' argument %d: manifest declares %s, Go descriptor declares %s", qn, i, spec, desc.Args[i]))
			}
		}
	}
	if len(mf.Returns) != len(desc.Returns) {
		errs = append(errs, fmt.Sprintf("function '%s': manifest declares %d return(s), Go descriptor declares %d", qn, len(mf.Returns), len(desc.Returns)))
	} else {
		for i, spec := range mf.Returns {
			if spec != desc.Returns[i] {
				errs = append(errs, fmt.Sprintf("function '%s' return %d: manifest declares %s, Go descriptor declares %s", qn, i, spec, desc.Returns[i]))
			}
		}
	}
	return errs
}
