package docload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"gopkg.in/yaml.v3"

	"github.com/vk/structcmp/internal/ctxlog"
)

// Load reads the document at path into a native Go value graph. The format
// is selected by extension: .hcl, .json, .yaml or .yml.
func Load(ctx context.Context, path string) (any, error) {
	logger := ctxlog.FromContext(ctx)
	ext := strings.ToLower(filepath.Ext(path))
	logger.Debug("Loading document.", "path", path, "format", ext)

	switch ext {
	case ".hcl":
		return loadHCL(path)
	case ".json":
		return loadJSON(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported document format %q for %s", ext, path)
	}
}

func loadHCL(path string) (any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}
	return bodyToNative(path, file.Body)
}

func loadJSON(path string) (any, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	file, diags := hcljson.Parse(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse JSON file %s: %s", path, diags.Error())
	}
	return bodyToNative(path, file.Body)
}

func loadYAML(path string) (any, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc any
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}
	return doc, nil
}

// bodyToNative evaluates every top-level attribute of the body and converts
// the resulting cty values to their native Go counterparts.
func bodyToNative(path string, body hcl.Body) (any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes of %s: %s", path, diags.Error())
	}

	doc := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("invalid value for attribute %q in %s: %s", name, path, valDiags.Error())
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("in attribute %q of %s: %w", name, path, err)
		}
		doc[name] = native
	}
	return doc, nil
}
