package hclmap

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/fsutil"
	"github.com/specialistvlad/conductor/internal/mapdef"
	"github.com/zclconf/go-cty/cty"
)

// Colors lists the track colors that expressions can reference as color.<name>.
var Colors = []string{
	"red", "blue", "black", "white", "orange", "yellow", "pink", "green", "unspecified",
}

// Loader is the HCL implementation of the mapdef.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL map loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level schema of a map file.
type fileRoot struct {
	Routes []*routeBlock `hcl:"route,block"`
}

type routeBlock struct {
	From    string `hcl:"from,label"`
	To      string `hcl:"to,label"`
	Color   string `hcl:"color,optional"`
	Length  int    `hcl:"length,optional"`
	Tunnel  bool   `hcl:"tunnel,optional"`
	Ferries int    `hcl:"ferries,optional"`
}

// Load reads every HCL file under path and returns their route records.
func (l *Loader) Load(ctx context.Context, path string) ([]mapdef.RouteRecord, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := fsutil.CollectFiles(path, ".hcl")
	if err != nil {
		return nil, mapdef.Unavailable(path, err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var records []mapdef.RouteRecord
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, mapdef.Unavailable(path, fmt.Errorf("failed to parse HCL file %s: %w", file, diags))
		}
		fileRecords, err := decode(hclFile.Body)
		if err != nil {
			return nil, mapdef.Unavailable(path, fmt.Errorf("failed to decode HCL file %s: %w", file, err))
		}
		logger.Debug("Decoded HCL file.", "file", file, "routes", len(fileRecords))
		records = append(records, fileRecords...)
	}

	logger.Debug("HCL loading complete.", "routes", len(records))
	return records, nil
}

// Parse decodes a single in-memory HCL document. filename is only used in
// diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]mapdef.RouteRecord, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, mapdef.Unavailable(filename, fmt.Errorf("failed to parse HCL: %w", diags))
	}
	records, err := decode(hclFile.Body)
	if err != nil {
		return nil, mapdef.Unavailable(filename, fmt.Errorf("failed to decode HCL: %w", err))
	}
	ctxlog.FromContext(ctx).Debug("Decoded HCL document.", "file", filename, "routes", len(records))
	return records, nil
}

func decode(body hcl.Body) ([]mapdef.RouteRecord, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalContext(), &root); diags.HasErrors() {
		return nil, diags
	}

	records := make([]mapdef.RouteRecord, 0, len(root.Routes))
	for _, r := range root.Routes {
		records = append(records, mapdef.RouteRecord{
			Endpoints: []string{r.From, r.To},
			Color:     r.Color,
			Length:    r.Length,
			Tunnel:    r.Tunnel,
			Ferries:   r.Ferries,
		})
	}
	return records, nil
}

// evalContext exposes the color object to route attribute expressions.
func evalContext() *hcl.EvalContext {
	colors := make(map[string]cty.Value, len(Colors))
	for _, c := range Colors {
		colors[c] = cty.StringVal(c)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"color": cty.ObjectVal(colors),
		},
	}
}
