package prefs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/lixenwraith/pixel-portfolio/audio"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

// Preferences reads and writes the typed flags over a Store
// Failures are logged and fall back to defaults; nothing here is fatal
type Preferences struct {
	store Store
}

// New wraps store
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Theme returns the saved mode, or fallback when missing or unreadable
func (p *Preferences) Theme(ctx context.Context, fallback theme.Mode) theme.Mode {
	v, ok, err := p.store.Get(ctx, KeyTheme)
	if err != nil {
		log.Printf("prefs: could not load theme: %v", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	mode, err := theme.ParseMode(v)
	if err != nil {
		log.Printf("prefs: ignoring saved theme: %v", err)
		return fallback
	}
	return mode
}

// SaveTheme stores the mode
func (p *Preferences) SaveTheme(ctx context.Context, mode theme.Mode) error {
	if err := p.store.Set(ctx, KeyTheme, string(mode)); err != nil {
		log.Printf("prefs: could not save theme: %v", err)
		return err
	}
	return nil
}

// Sound returns the saved settings, or fallback when missing or unreadable
func (p *Preferences) Sound(ctx context.Context, fallback audio.Settings) audio.Settings {
	v, ok, err := p.store.Get(ctx, KeySoundSettings)
	if err != nil {
		log.Printf("prefs: could not load sound settings: %v", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	s := fallback
	if err := json.Unmarshal([]byte(v), &s); err != nil {
		log.Printf("prefs: ignoring saved sound settings: %v", err)
		return fallback
	}
	return s.Normalize()
}

// SaveSound stores the settings as JSON
func (p *Preferences) SaveSound(ctx context.Context, s audio.Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := p.store.Set(ctx, KeySoundSettings, string(b)); err != nil {
		log.Printf("prefs: could not save sound settings: %v", err)
		return err
	}
	return nil
}

// Bind persists later changes of the theme switch and sound manager
// The returned func unsubscribes both
func (p *Preferences) Bind(ctx context.Context, sw *theme.Switch, sm *audio.SoundManager) (unbind func()) {
	var removers []func()
	if sw != nil {
		removers = append(removers, sw.OnChange(func(m theme.Mode) { p.SaveTheme(ctx, m) }))
	}
	if sm != nil {
		removers = append(removers, sm.OnChange(func(s audio.Settings) { p.SaveSound(ctx, s) }))
	}
	return func() {
		for _, r := range removers {
			r()
		}
	}
}
