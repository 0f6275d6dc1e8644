package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

//go:embed config.json
var config embed.FS

const confName = "config.json"

const (
	LineNumbersOff      = "off"
	LineNumbersAbsolute = "absolute"
	LineNumbersRelative = "relative"
)

type EditorConfig struct {
	Title             string   `json:"title"`
	Theme             string   `json:"theme"`
	StatusBar         bool     `json:"statusBar"`
	LineNumbers       string   `json:"lineNumbers"`
	TabWidth          int      `json:"tabWidth"`
	FontFamily        string   `json:"fontFamily"`
	FontSize          int      `json:"fontSize"`
	FontFamilies      []string `json:"fontFamilies"`
	UndoLimit         int      `json:"undoLimit"`
	NewAbortsOnCancel bool     `json:"newAbortsOnCancel"`
	DateTimeLayout    string   `json:"dateTimeLayout"`
	HelpURL           string   `json:"helpURL"`
}

// Default returns the embedded configuration.
func Default() *EditorConfig {
	content, err := fs.ReadFile(config, confName)
	if err != nil {
		panic(fmt.Sprintf("embedded config missing: %v", err))
	}
	cfg := &EditorConfig{}
	if err := json.Unmarshal(content, cfg); err != nil {
		panic(fmt.Sprintf("embedded config invalid: %v", err))
	}
	return cfg
}

// Parse overlays content on the defaults, so missing keys keep their
// default values.
func Parse(content []byte) (*EditorConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *EditorConfig) normalize() {
	def := Default()
	switch c.LineNumbers {
	case LineNumbersOff, LineNumbersAbsolute, LineNumbersRelative:
	default:
		c.LineNumbers = def.LineNumbers
	}
	if c.TabWidth <= 0 {
		c.TabWidth = def.TabWidth
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if len(c.FontFamilies) == 0 {
		c.FontFamilies = def.FontFamilies
	}
	if c.DateTimeLayout == "" {
		c.DateTimeLayout = def.DateTimeLayout
	}
}

// DefaultDir is $XDG_CONFIG_HOME/goditor, or ~/.goditor.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "goditor")
	}
	return filepath.Join(os.Getenv("HOME"), ".goditor")
}

// Config owns the configuration file in one directory.
type Config struct {
	log          *log.Logger
	dir          string
	watcher      *fsnotify.Watcher
	EditorConfig *EditorConfig
}

func NewConfig(log *log.Logger, dir string) *Config {
	return &Config{log: log, dir: dir, EditorConfig: Default()}
}

func (cfg *Config) File() string {
	return filepath.Join(cfg.dir, confName)
}

// Init writes the default file if there is none and loads it.
func (cfg *Config) Init() error {
	if err := cfg.writeConfigIfMissing(); err != nil {
		return err
	}
	return cfg.readConfigIntoMemory()
}

func (cfg *Config) writeConfigIfMissing() error {
	_, err := os.Stat(cfg.File())
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	content, err := fs.ReadFile(config, confName)
	if err != nil {
		return fmt.Errorf("read embedded config file: %w", err)
	}
	if err := os.MkdirAll(cfg.dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(cfg.File(), content, 0664); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	cfg.log.Printf("Wrote default config to %v", cfg.File())
	return nil
}

func (cfg *Config) load() (*EditorConfig, error) {
	content, err := os.ReadFile(cfg.File())
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(content)
}

func (cfg *Config) readConfigIntoMemory() error {
	editorConfig, err := cfg.load()
	if err != nil {
		return err
	}
	cfg.EditorConfig = editorConfig
	return nil
}

// Watch rereads the file whenever it is written and hands the result to
// onChange. onChange runs on the watcher goroutine and must not touch
// state owned by the UI; the application forwards it as an event.
func (cfg *Config) Watch(onChange func(*EditorConfig)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(cfg.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}
	cfg.watcher = watcher

	go cfg.rereadConfigOnFileChange(watcher, onChange)
	return nil
}

func (cfg *Config) rereadConfigOnFileChange(watcher *fsnotify.Watcher, onChange func(*EditorConfig)) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != confName || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			editorConfig, err := cfg.load()
			if err != nil {
				cfg.log.Printf("Ignoring config change: %v", err)
				continue
			}
			cfg.log.Printf("Reloaded config from %v", event.Name)
			onChange(editorConfig)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Printf("Config watcher error: %v", err)
		}
	}
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
		cfg.watcher = nil
	}
}
