package discovery

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/stackhaven/zonemenu/internal/menu"
)

//go:embed schema.cue
var schemaCUE string

// Error code constants for definition loading.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeScanError    = "E002" // Directory scan error
	ErrCodeNoFiles      = "E003" // No CUE files found
	ErrCodeLoadFailed   = "E004" // CUE load failed
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeBuildFailed  = "E006" // CUE build failed
	ErrCodeSchemaFailed = "E007" // Schema validation failed
	ErrCodeInvalidEntry = "E101" // Malformed menu entry
)

// DefinitionError is an error encountered while loading menu definitions.
type DefinitionError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *DefinitionError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Loader is the definition-directory adapter: it loads and validates the
// CUE menu definitions under Dir on every Discover call, so the rendering
// path always joins saved rows against a fresh element list.
type Loader struct {
	dir string
}

// NewLoader creates a Loader for a definition directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Discover implements Adapter.
func (l *Loader) Discover(ctx context.Context) ([]menu.Element, error) {
	return LoadDir(l.dir)
}

// LoadDir loads every .cue file in dir, validates the unified value against
// the embedded schema, and flattens the `menu` list into discovery order:
// each group immediately followed by its member items.
func LoadDir(dir string) ([]menu.Element, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &DefinitionError{Code: ErrCodeNotFound, Message: fmt.Sprintf("definition directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &DefinitionError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing definition directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &DefinitionError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, &DefinitionError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &DefinitionError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &DefinitionError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &DefinitionError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &DefinitionError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return nil, &DefinitionError{Code: ErrCodeSchemaFailed, Message: fmt.Sprintf("compiling schema: %v", err)}
	}

	unified := value.Unify(schema)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &DefinitionError{Code: ErrCodeSchemaFailed, Message: fmt.Sprintf("validating definitions: %v", err), Pos: value.Pos()}
	}

	return flattenValue(unified)
}

// Validate checks the definitions in dir without returning elements.
func Validate(dir string) error {
	_, err := LoadDir(dir)
	return err
}

// flattenValue walks the `menu` list and produces the flat element list.
// Discovery order: a group element is emitted before its member items, and
// sort indexes count through the whole flat list.
func flattenValue(value cue.Value) ([]menu.Element, error) {
	menuVal := value.LookupPath(cue.ParsePath("menu"))
	if !menuVal.Exists() {
		return nil, &DefinitionError{Code: ErrCodeInvalidEntry, Message: "no menu list found in definitions"}
	}

	iter, err := menuVal.List()
	if err != nil {
		return nil, &DefinitionError{Code: ErrCodeInvalidEntry, Message: fmt.Sprintf("menu is not a list: %v", err)}
	}

	var elements []menu.Element
	index := 0
	for iter.Next() {
		entry := iter.Value()
		if entry.LookupPath(cue.ParsePath("items")).Exists() {
			group, items, err := decodeGroup(entry)
			if err != nil {
				return nil, err
			}
			group.SortIndex = index
			index++
			elements = append(elements, group)
			for _, item := range items {
				item.SortIndex = index
				index++
				elements = append(elements, item)
			}
			continue
		}

		item, err := decodeItem(entry, "")
		if err != nil {
			return nil, err
		}
		item.SortIndex = index
		index++
		elements = append(elements, item)
	}

	return elements, nil
}

func decodeGroup(v cue.Value) (menu.Element, []menu.Element, error) {
	label, err := requiredString(v, "label")
	if err != nil {
		return menu.Element{}, nil, err
	}

	key := ""
	if id := optionalString(v, "id"); id != "" {
		key = menu.ExplicitGroupKey(id)
	} else {
		key = menu.GroupKey(label)
	}

	group := menu.Element{
		Key:   key,
		Label: label,
		Icon:  optionalString(v, "icon"),
		Type:  menu.TypeGroup,
	}

	itemsVal := v.LookupPath(cue.ParsePath("items"))
	iter, err := itemsVal.List()
	if err != nil {
		return menu.Element{}, nil, &DefinitionError{
			Code:    ErrCodeInvalidEntry,
			Message: fmt.Sprintf("group %q: items is not a list: %v", label, err),
			Pos:     v.Pos(),
		}
	}

	var items []menu.Element
	for iter.Next() {
		item, err := decodeItem(iter.Value(), key)
		if err != nil {
			return menu.Element{}, nil, err
		}
		items = append(items, item)
	}

	return group, items, nil
}

func decodeItem(v cue.Value, parentKey string) (menu.Element, error) {
	label, err := requiredString(v, "label")
	if err != nil {
		return menu.Element{}, err
	}

	key := optionalString(v, "key")
	if key == "" {
		// Opaque identity - configuration saved against it will not
		// survive a reload. Definitions should declare keys.
		key = menu.FallbackKey()
	}

	return menu.Element{
		Key:       key,
		Label:     label,
		Icon:      optionalString(v, "icon"),
		Type:      menu.TypeItem,
		ParentKey: parentKey,
	}, nil
}

func requiredString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &DefinitionError{
			Code:    ErrCodeInvalidEntry,
			Message: fmt.Sprintf("%s is required", field),
			Pos:     v.Pos(),
		}
	}
	s, err := fv.String()
	if err != nil {
		return "", &DefinitionError{
			Code:    ErrCodeInvalidEntry,
			Message: fmt.Sprintf("%s: %v", field, err),
			Pos:     fv.Pos(),
		}
	}
	return s, nil
}

func optionalString(v cue.Value, field string) string {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return ""
	}
	s, err := fv.String()
	if err != nil {
		return ""
	}
	return s
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
