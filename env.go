package retained

// EnvKey names a value in the environment.
type EnvKey string

// Keys the built-in widgets resolve from the environment.
const (
	KeyFontName   EnvKey = "font.name"
	KeyTextSize   EnvKey = "font.size"
	KeyLabelColor EnvKey = "color.label"
	KeyFocusColor EnvKey = "color.focus"
)

// Env is the key→value store widgets resolve theme and configuration
// values from during any pass. It flows down the tree unchanged; widgets
// never mutate it mid-pass.
type Env struct {
	values map[EnvKey]any
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[EnvKey]any)}
}

// DefaultEnv returns the environment every Window starts from.
func DefaultEnv() *Env {
	e := NewEnv()
	e.Set(KeyFontName, "default")
	e.Set(KeyTextSize, float32(14))
	e.Set(KeyLabelColor, ColorWhite)
	e.Set(KeyFocusColor, ColorCyan)
	return e
}

// Set stores a value.
func (e *Env) Set(key EnvKey, value any) {
	e.values[key] = value
}

// Get returns the raw value for a key.
func (e *Env) Get(key EnvKey) (any, bool) {
	v, ok := e.values[key]
	return v, ok
}

// GetString returns the string for a key, or the fallback.
func (e *Env) GetString(key EnvKey, fallback string) string {
	if v, ok := e.values[key].(string); ok {
		return v
	}
	return fallback
}

// GetFloat32 returns the float for a key, or the fallback.
func (e *Env) GetFloat32(key EnvKey, fallback float32) float32 {
	if v, ok := e.values[key].(float32); ok {
		return v
	}
	return fallback
}

// GetColor returns the packed RGBA color for a key, or the fallback.
func (e *Env) GetColor(key EnvKey, fallback uint32) uint32 {
	if v, ok := e.values[key].(uint32); ok {
		return v
	}
	return fallback
}
