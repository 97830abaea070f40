package style

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/grindlemire/borealis/internal/debug"
)

// EnvPrefix is prepended to environment overrides, e.g.
// BOREALIS_LIST_ITEM_HEIGHT for list.item.height.
const EnvPrefix = "BOREALIS"

var colorType = reflect.TypeOf(Color{})

// document is the full decoded key space. Decoding it in one pass keeps
// defaults and overlays merged for every subtree.
type document struct {
	Style `mapstructure:",squash"`
	Theme Theme `mapstructure:"theme"`
}

// Loader builds Stores from defaults, an optional config file and the
// environment.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader returns a Loader with the built-in defaults registered.
func NewLoader() *Loader {
	v := viper.New()
	registerDefaults(v, "", Default())
	v.SetDefault("theme.variant", string(VariantDark))

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// SetConfigFile selects a YAML, TOML or JSON file layered over the defaults.
// The format follows the file extension.
func (l *Loader) SetConfigFile(path string) {
	l.file = path
	l.v.SetConfigFile(path)
}

// Set overrides a single key, e.g. Set("list.spacing", 40).
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}

// Load reads the config file (if any), resolves the theme variant, decodes
// and validates everything into a Store.
func (l *Loader) Load() (*Store, error) {
	if l.file != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read style file %s: %w", l.file, err)
		}
	}

	variant, err := ParseVariant(l.v.GetString("theme.variant"))
	if err != nil {
		return nil, err
	}
	registerDefaults(l.v, "theme", ThemeFor(variant))

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToColorHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))

	var doc document
	if err := l.v.Unmarshal(&doc, hook); err != nil {
		return nil, fmt.Errorf("failed to decode style: %w", err)
	}

	if errs := doc.Style.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	// Keyed lookups read a copy so later reloads and Set calls leave this
	// Store alone.
	snap := viper.New()
	if err := snap.MergeConfigMap(l.v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to snapshot style: %w", err)
	}

	debug.Log("style.Load: file=%q variant=%s", l.file, variant)
	return &Store{v: snap, style: doc.Style, theme: doc.Theme, variant: variant}, nil
}

// Watch reloads the store whenever the config file changes and reports the
// outcome to onChange. A failed reload leaves the previous Store untouched.
func (l *Loader) Watch(onChange func(*Store, error)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		debug.Log("style.Watch: %s changed (%s)", e.Name, e.Op)
		onChange(l.Load())
	})
	l.v.WatchConfig()
}

// Store is a validated, read-only snapshot of style and theme values.
type Store struct {
	v       *viper.Viper
	style   Style
	theme   Theme
	variant Variant
}

// Defaults returns a Store holding only the built-in values.
func Defaults() *Store {
	st, err := NewLoader().Load()
	if err != nil {
		panic("borealis: built-in style is invalid: " + err.Error())
	}
	return st
}

// Style returns the decoded layout constants.
func (s *Store) Style() Style {
	return s.style
}

// Theme returns the decoded colors.
func (s *Store) Theme() Theme {
	return s.theme
}

// Variant returns the theme variant the store was built with.
func (s *Store) Variant() Variant {
	return s.variant
}

// Get returns the raw value for component/field, e.g. Get("list.item", "height").
func (s *Store) Get(component, field string) (any, bool) {
	key := component + "." + field
	if !s.v.IsSet(key) {
		return nil, false
	}
	return s.v.Get(key), true
}

// Int returns an integer constant, or false when the key is unknown.
func (s *Store) Int(component, field string) (int, bool) {
	if _, ok := s.Get(component, field); !ok {
		return 0, false
	}
	return s.v.GetInt(component + "." + field), true
}

// Float returns a floating point constant, or false when the key is unknown.
func (s *Store) Float(component, field string) (float64, bool) {
	if _, ok := s.Get(component, field); !ok {
		return 0, false
	}
	return s.v.GetFloat64(component + "." + field), true
}

// Duration returns a duration constant, or false when the key is unknown.
func (s *Store) Duration(component, field string) (time.Duration, bool) {
	if _, ok := s.Get(component, field); !ok {
		return 0, false
	}
	return s.v.GetDuration(component + "." + field), true
}

// Color returns a color, or false when the key is unknown or not a color.
func (s *Store) Color(component, field string) (Color, bool) {
	raw, ok := s.Get(component, field)
	if !ok {
		return Color{}, false
	}
	str, ok := raw.(string)
	if !ok {
		return Color{}, false
	}
	c, err := ParseColor(str)
	if err != nil {
		return Color{}, false
	}
	return c, true
}

// Keys returns every known key in sorted order.
func (s *Store) Keys() []string {
	keys := s.v.AllKeys()
	sort.Strings(keys)
	return keys
}

// registerDefaults walks value's mapstructure-tagged fields and registers
// each leaf under prefix. Colors are stored as hex strings so that config
// files and defaults go through the same decode hook.
func registerDefaults(v *viper.Viper, prefix string, value any) {
	rv := reflect.ValueOf(value)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := f.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		fv := rv.Field(i)
		switch {
		case f.Type == colorType:
			v.SetDefault(key, fv.Interface().(Color).String())
		case f.Type.Kind() == reflect.Struct:
			registerDefaults(v, key, fv.Interface())
		default:
			v.SetDefault(key, fv.Interface())
		}
	}
}

func stringToColorHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != colorType || from.Kind() != reflect.String {
			return data, nil
		}
		return ParseColor(data.(string))
	}
}
