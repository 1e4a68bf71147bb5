package dataconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

const yamlDoc = `
meta:
  shard:
    rootdir: /data/shards
groups:
  g1:
    transforms: [bpe]
inputs:
  a:
    group: g1
    size: 3
`

const tomlDoc = `
[meta.shard]
rootdir = "/data/shards"

[groups.g1]
transforms = ["bpe"]

[inputs.a]
group = "g1"
size = 3
`

const jsonDoc = `{
  "meta": {"shard": {"rootdir": "/data/shards"}},
  "groups": {"g1": {"transforms": ["bpe"]}},
  "inputs": {"a": {"group": "g1", "size": 3}}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_Formats(t *testing.T) {
	want := tree.Mapping{
		"meta":   tree.Mapping{"shard": tree.Mapping{"rootdir": tree.String("/data/shards")}},
		"groups": tree.Mapping{"g1": tree.Mapping{"transforms": tree.StringSequence("bpe")}},
		"inputs": tree.Mapping{"a": tree.Mapping{"group": tree.String("g1"), "size": tree.Int(3)}},
	}
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "data.yaml", yamlDoc},
		{"yml", "data.yml", yamlDoc},
		{"toml", "data.toml", tomlDoc},
		{"json", "data.json", jsonDoc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !tree.Equal(got, want) {
				t.Errorf("Read() = %v, want %v", tree.ToAny(got), tree.ToAny(want))
			}
		})
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		sentinel error
		wantMsg  string
	}{
		{
			name:     "syntax error",
			file:     "bad.yaml",
			content:  "meta: [",
			sentinel: scerrors.ErrFormat,
			wantMsg:  "bad.yaml",
		},
		{
			name:     "root is a list",
			file:     "list.yaml",
			content:  "- a\n- b\n",
			sentinel: scerrors.ErrFormat,
			wantMsg:  "document root must be a mapping",
		},
		{
			name:     "missing required keys",
			file:     "partial.yaml",
			content:  "meta: {}\n",
			sentinel: scerrors.ErrFormat,
			wantMsg:  "missing required keys: groups, inputs",
		},
		{
			name:     "bad toml",
			file:     "bad.toml",
			content:  "[meta\n",
			sentinel: scerrors.ErrFormat,
			wantMsg:  "parsing TOML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("Read() error = %v, want %v", err, tt.sentinel)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Read() error = %q, want substring %q", err, tt.wantMsg)
			}
			var fe *FormatError
			if !errors.As(err, &fe) || fe.Path == "" {
				t.Errorf("Read() error should be a *FormatError carrying the path, got %v", err)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, scerrors.ErrNotFound) {
			t.Errorf("Read() error = %v, want ErrNotFound", err)
		}
	})
}

func TestStoredShardConfigPath(t *testing.T) {
	root := tree.Mapping{
		"meta": tree.Mapping{"shard": tree.Mapping{"rootdir": tree.String("/data/shards")}},
	}
	got, err := StoredShardConfigPath(root)
	if err != nil {
		t.Fatalf("StoredShardConfigPath() error = %v", err)
	}
	if want := filepath.Join("/data/shards", "stored_shard_config.yaml"); got != want {
		t.Errorf("StoredShardConfigPath() = %q, want %q", got, want)
	}

	for name, meta := range map[string]tree.Node{
		"no shard":      tree.Mapping{},
		"empty rootdir": tree.Mapping{"shard": tree.Mapping{"rootdir": tree.String("")}},
		"int rootdir":   tree.Mapping{"shard": tree.Mapping{"rootdir": tree.Int(3)}},
		"meta scalar":   tree.String("x"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := StoredShardConfigPath(tree.Mapping{"meta": meta})
			if !errors.Is(err, scerrors.ErrInvalidConfig) {
				t.Errorf("StoredShardConfigPath() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGroups_NullSection(t *testing.T) {
	root := tree.Mapping{"groups": tree.Null()}
	groups, err := Groups(root)
	if err != nil {
		t.Fatalf("Groups() error = %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Groups() = %v, want empty", tree.ToAny(groups))
	}
	if _, ok := root.MappingAt("groups"); !ok {
		t.Error("a null section should be replaced by an empty mapping")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		doc          string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name: "valid",
			doc: `
meta: {shard: {rootdir: /tmp/x}}
groups: {g1: {transforms: [bpe], weight: 2, split: train}, g2: {share_inputs: g1}}
inputs: {a: {group: g1, size: 3}, b: {group: g1}}
`,
		},
		{
			name: "reference errors",
			doc: `
meta: {shard: {rootdir: /tmp/x}}
groups: {g1: {}, g2: {share_inputs: nope}}
inputs: {a: {group: g1}, b: {group: missing}, c: {size: 1}}
`,
			wantErrors: []string{"inputs.b.group", "inputs.c.group", "groups.g2.share_inputs"},
		},
		{
			name: "alias problems",
			doc: `
meta: {shard: {rootdir: /tmp/x}}
groups: {g1: {}, g2: {share_inputs: g1}, g3: {share_inputs: g2}, g4: {share_inputs: g4}, g5: {}, g6: {share_inputs: g5}}
inputs: {a: {group: g1}, b: {group: g2}}
`,
			wantErrors:   []string{"inputs.b.group", "groups.g3.share_inputs", "groups.g4.share_inputs", "groups.g6.share_inputs"},
			wantWarnings: []string{"groups.g5"},
		},
		{
			name: "field types",
			doc: `
meta: {shard: {}}
groups: {g1: {transforms: bpe, split: [x], weight: heavy}}
inputs: {a: {group: g1, size: 0}, b: 7}
`,
			wantErrors: []string{"meta.shard.rootdir", "groups.g1.transforms", "groups.g1.split", "groups.g1.weight", "inputs.a.size", "inputs.b"},
		},
		{
			name: "derived keys in raw input",
			doc: `
meta: {shard: {rootdir: /tmp/x}}
_transforms: [bpe]
groups: {g1: {_inputs: [a]}}
inputs: {a: {group: g1}}
`,
			wantWarnings: []string{"_transforms", "groups.g1._inputs"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tree.ParseYAML([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ParseYAML() error = %v", err)
			}
			result := Validate(n.(tree.Mapping))

			gotErrors := map[string]bool{}
			for _, i := range result.Errors() {
				gotErrors[i.Field] = true
			}
			gotWarnings := map[string]bool{}
			for _, i := range result.Warnings() {
				gotWarnings[i.Field] = true
			}

			if len(gotErrors) != len(tt.wantErrors) {
				t.Errorf("errors = %v, want fields %v", result.Errors(), tt.wantErrors)
			}
			for _, f := range tt.wantErrors {
				if !gotErrors[f] {
					t.Errorf("missing error for %s; got %v", f, result.Errors())
				}
			}
			if len(gotWarnings) != len(tt.wantWarnings) {
				t.Errorf("warnings = %v, want fields %v", result.Warnings(), tt.wantWarnings)
			}
			for _, f := range tt.wantWarnings {
				if !gotWarnings[f] {
					t.Errorf("missing warning for %s; got %v", f, result.Warnings())
				}
			}
		})
	}
}
