package pathmatch

import "testing"

func TestPattern_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		path    []string
		want    bool
	}{
		{"exact", Keys("meta", "shard"), []string{"meta", "shard"}, true},
		{"different literal", Keys("meta", "shard"), []string{"meta", "train"}, false},
		{"path longer than pattern", Keys("inputs"), []string{"inputs", "a", "size"}, true},
		{"path shorter than pattern", Keys("meta", "shard"), []string{"meta"}, false},
		{"wildcard matches key", Pattern{Key("groups"), Any(), Key("weight")}, []string{"groups", "g1", "weight"}, true},
		{"wildcard does not rescue literal", Pattern{Key("groups"), Any(), Key("weight")}, []string{"groups", "g1", "split"}, false},
		{"wildcard matches absent segment", Pattern{Key("groups"), Any()}, []string{"groups"}, true},
		{"literal after absent segment", Pattern{Key("groups"), Any(), Key("weight")}, []string{"groups", "g1"}, false},
		{"empty pattern matches everything", Pattern{}, []string{"anything"}, true},
		{"empty path against literal", Keys("meta"), nil, false},
		{"key named like a wildcard", Keys("*"), []string{"groups"}, false},
		{"literal star key", Keys("*"), []string{"*"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pattern.Matches(tt.path); got != tt.want {
				t.Errorf("%s.Matches(%v) = %v, want %v", tt.pattern, tt.path, got, tt.want)
			}
		})
	}
}

func TestMatch_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Pattern: Keys("meta", "shard"), Decision: Keep},
		{Pattern: Keys("meta"), Decision: Drop},
		{Pattern: Pattern{Key("groups"), Any(), Key("weight")}, Decision: Drop},
	}
	tests := []struct {
		path []string
		want Decision
	}{
		{[]string{"meta", "shard"}, Keep},
		{[]string{"meta", "train"}, Drop},
		{[]string{"meta"}, Drop},
		{[]string{"groups", "g1", "weight"}, Drop},
		{[]string{"groups", "g1"}, Continue},
		{[]string{"inputs"}, Continue},
	}
	for _, tt := range tests {
		if got := Match(tt.path, rules); got != tt.want {
			t.Errorf("Match(%v) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestMatch_OrderMatters(t *testing.T) {
	general := Rule{Pattern: Keys("meta"), Decision: Drop}
	specific := Rule{Pattern: Keys("meta", "shard"), Decision: Keep}
	path := []string{"meta", "shard"}

	if got := Match(path, []Rule{general, specific}); got != Drop {
		t.Errorf("general first: Match() = %s, want drop", got)
	}
	if got := Match(path, []Rule{specific, general}); got != Keep {
		t.Errorf("specific first: Match() = %s, want keep", got)
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "groups.*.weight", want: "groups.*.weight"},
		{in: "inputs", want: "inputs"},
		{in: "", wantErr: true},
		{in: "groups..weight", wantErr: true},
		{in: "meta.", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePattern(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePattern(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParsePattern(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	p, _ := ParsePattern("groups.*.meta")
	if !p[1].IsWildcard() || p[0].IsWildcard() {
		t.Error("ParsePattern() should only make '*' segments wildcards")
	}
}

func TestMustParsePattern(t *testing.T) {
	p := MustParsePattern("groups.*.transforms")
	if !p.Matches([]string{"groups", "g1", "transforms"}) {
		t.Errorf("%s should match groups.g1.transforms", p)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParsePattern() should panic on an empty segment")
		}
	}()
	MustParsePattern("groups..weight")
}
