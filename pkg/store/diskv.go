package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/jot/pkg/entry"
)

// Slot names. Each slot holds one logical piece of journal state and is
// written wholesale.
const (
	SlotEntries        = "journalEntries"
	SlotProfilePicture = "profilePicture"
	SlotTheme          = "theme"
)

// Persistence is the slot-level persistence contract. Reads of slots that
// were never written return zero values, not errors.
type Persistence interface {
	Entries(ctx context.Context) ([]*entry.Entry, error)
	WriteEntries(entries []*entry.Entry) error
	ProfilePicture() (string, error)
	WriteProfilePicture(dataURI string) error
	Theme() (Theme, error)
	WriteTheme(t Theme) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Slots are a small fixed set, so every key lives at the base path root.
func flatTransform(string) []string { return []string{} }

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(slot string) ([]byte, error) {
	if !p.d.Has(slot) {
		return nil, nil
	}
	val, err := p.d.Read(slot)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", slot, err)
	}
	return val, nil
}

func (p *persistence) Entries(ctx context.Context) ([]*entry.Entry, error) {
	val, err := p.read(SlotEntries)
	if err != nil {
		return nil, err
	}
	if len(val) == 0 {
		return []*entry.Entry{}, nil
	}
	var entries []*entry.Entry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", SlotEntries, err)
	}
	for _, e := range entries {
		if e != nil && e.Tags == nil {
			e.Tags = []string{}
		}
	}
	return entries, nil
}

func (p *persistence) WriteEntries(entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := p.d.Write(SlotEntries, data); err != nil {
		return fmt.Errorf("store: write %s: %w", SlotEntries, err)
	}
	return nil
}

func (p *persistence) ProfilePicture() (string, error) {
	val, err := p.read(SlotProfilePicture)
	if err != nil {
		return "", err
	}
	return string(val), nil
}

func (p *persistence) WriteProfilePicture(dataURI string) error {
	if err := p.d.Write(SlotProfilePicture, []byte(dataURI)); err != nil {
		return fmt.Errorf("store: write %s: %w", SlotProfilePicture, err)
	}
	return nil
}

func (p *persistence) Theme() (Theme, error) {
	val, err := p.read(SlotTheme)
	if err != nil {
		return ThemeLight, err
	}
	if len(val) == 0 {
		return ThemeLight, nil
	}
	t, err := ParseTheme(string(val))
	if err != nil {
		return ThemeLight, err
	}
	return t, nil
}

func (p *persistence) WriteTheme(t Theme) error {
	if err := p.d.Write(SlotTheme, []byte(t.String())); err != nil {
		return fmt.Errorf("store: write %s: %w", SlotTheme, err)
	}
	return nil
}
