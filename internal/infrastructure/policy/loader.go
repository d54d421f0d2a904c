package policy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"pr-dashboard/internal/domain/services"
	"pr-dashboard/internal/utils"

	"gopkg.in/yaml.v3"
)

const PresetLegacy = "legacy"

type file struct {
	Members []memberEntry `yaml:"members"`
}

type memberEntry struct {
	Member string          `yaml:"member"`
	Preset string          `yaml:"preset"`
	Tiers  []services.Tier `yaml:"tiers"`
}

// Load reads a comment policy file. An empty path yields the baseline policy.
func Load(path string) (*services.CommentPolicy, error) {
	if path == "" {
		return services.BaselineCommentPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read comment policy %s: %w", path, err)
	}
	return Parse(bytes.NewReader(data))
}

func Parse(r io.Reader) (*services.CommentPolicy, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode comment policy: %w", err)
	}

	overrides := make(map[string][]services.Tier, len(f.Members))
	for i, m := range f.Members {
		if m.Member == "" {
			return nil, fmt.Errorf("%w: members[%d]: member id is required", utils.ErrInvalidArgument, i)
		}
		tiers, err := m.tiers()
		if err != nil {
			return nil, fmt.Errorf("%w: members[%d] (%s): %v", utils.ErrInvalidArgument, i, m.Member, err)
		}
		id := utils.NormalizeMemberID(m.Member)
		if _, dup := overrides[id]; dup {
			return nil, fmt.Errorf("%w: member %s listed twice", utils.ErrInvalidArgument, m.Member)
		}
		overrides[id] = tiers
	}

	return services.NewCommentPolicy(overrides), nil
}

func (m memberEntry) tiers() ([]services.Tier, error) {
	switch {
	case m.Preset != "" && len(m.Tiers) > 0:
		return nil, errors.New("preset and tiers are mutually exclusive")
	case m.Preset == PresetLegacy:
		return append([]services.Tier(nil), services.LegacyTiers...), nil
	case m.Preset != "":
		return nil, fmt.Errorf("unknown preset %q", m.Preset)
	case len(m.Tiers) == 0:
		return nil, errors.New("either preset or tiers must be set")
	}

	for _, t := range m.Tiers {
		if t.Above < 0 || t.Subtract < 0 {
			return nil, fmt.Errorf("tier above=%d subtract=%d must not be negative", t.Above, t.Subtract)
		}
	}
	return m.Tiers, nil
}
