package text

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// Family names of the bundled Go fonts.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

// SyntheticOblique is the horizontal shear (tan of ~12°) applied to
// outlines when italic is requested from a family without an italic face.
const SyntheticOblique = 0.21

// Style selects a face within a family.
type Style struct {
	Bold   bool
	Italic bool
}

// String returns the CSS-like name of the style.
func (s Style) String() string {
	switch {
	case s.Bold && s.Italic:
		return "bold italic"
	case s.Bold:
		return "bold"
	case s.Italic:
		return "italic"
	default:
		return "regular"
	}
}

// Resolution reports how a family/style request was satisfied.
type Resolution struct {
	// Requested is the family list that was asked for.
	Requested string

	// Family is the registered family that was used.
	Family string

	// Style is the registered style of the face that was used.
	Style Style

	// Fallback is set when no requested family was registered and the
	// registry fallback family was used instead.
	Fallback bool

	// MissingBold is set when bold was requested but the family has no
	// bold face.
	MissingBold bool

	// SyntheticItalic is set when italic was requested but the family has
	// no italic face; outlines must then be slanted by SyntheticOblique.
	SyntheticItalic bool
}

// Oblique returns the shear to apply to outlines drawn with this resolution.
func (r Resolution) Oblique() float64 {
	if r.SyntheticItalic {
		return SyntheticOblique
	}
	return 0
}

// Exact reports whether the request was satisfied without any substitution.
func (r Resolution) Exact() bool {
	return !r.Fallback && !r.MissingBold && !r.SyntheticItalic
}

type family struct {
	name  string
	faces map[Style]*Font
}

// Registry maps family names to fonts. Family lookup is case-insensitive.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]*family
	aliases  map[string]string
	fallback string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]*family),
		aliases:  make(map[string]string),
	}
}

// NewDefaultRegistry creates a registry holding the bundled Go fonts:
// "Go" and "Go Mono" in all four styles, the generic aliases "sans-serif",
// "system-ui" and "monospace", and "Go" as fallback family.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, bf := range bundledFonts() {
		r.Register(bf.family, bf.style, bf.font)
	}
	_ = r.Alias("sans-serif", FamilyGo)
	_ = r.Alias("system-ui", FamilyGo)
	_ = r.Alias("monospace", FamilyGoMono)
	_ = r.SetFallback(FamilyGo)
	return r
}

// Register adds f as the face for style in the named family, replacing any
// face previously registered for the same family and style. The first
// family registered becomes the fallback unless SetFallback is called.
func (r *Registry) Register(familyName string, style Style, f *Font) {
	key := foldName(familyName)

	r.mu.Lock()
	defer r.mu.Unlock()

	fam, ok := r.families[key]
	if !ok {
		fam = &family{name: strings.TrimSpace(familyName), faces: make(map[Style]*Font)}
		r.families[key] = fam
	}
	fam.faces[style] = f

	if r.fallback == "" {
		r.fallback = key
	}
}

// RegisterData parses data and registers it like Register.
func (r *Registry) RegisterData(familyName string, style Style, data []byte) error {
	f, err := ParseFont(data)
	if err != nil {
		return fmt.Errorf("text: register %q (%s): %w", familyName, style, err)
	}
	r.Register(familyName, style, f)
	return nil
}

// Alias makes alias resolve to the registered family target.
func (r *Registry) Alias(alias, target string) error {
	key := foldName(target)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.families[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, target)
	}
	r.aliases[foldName(alias)] = key
	return nil
}

// SetFallback selects the family used when no requested family matches.
func (r *Registry) SetFallback(name string) error {
	key := foldName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.families[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	r.fallback = key
	return nil
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for _, fam := range r.families {
		names = append(names, fam.name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name (or an alias of it) is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.lookup(foldName(name))
	return ok
}

// Resolve finds the font for a CSS-like family list such as
// "'Arial Black', Impact, sans-serif" and a style. Candidates are tried in
// order; when none is registered the fallback family is used. Within a
// family the closest face is chosen: bold is kept over italic because
// italic can be synthesized by slanting outlines while weight cannot.
func (r *Registry) Resolve(families string, style Style) (*Font, Resolution, error) {
	res := Resolution{Requested: families}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var fam *family
	for _, candidate := range splitFamilies(families) {
		if f, ok := r.lookup(foldName(candidate)); ok {
			fam = f
			break
		}
	}
	if fam == nil {
		f, ok := r.families[r.fallback]
		if !ok {
			return nil, res, ErrNoFonts
		}
		fam = f
		res.Fallback = true
	}
	res.Family = fam.name

	face, got := fam.closest(style)
	if face == nil {
		return nil, res, ErrNoFonts
	}
	res.Style = got
	res.MissingBold = style.Bold && !got.Bold
	res.SyntheticItalic = style.Italic && !got.Italic

	return face, res, nil
}

// lookup finds a family by folded name or alias. Callers hold r.mu.
func (r *Registry) lookup(key string) (*family, bool) {
	if fam, ok := r.families[key]; ok {
		return fam, true
	}
	if target, ok := r.aliases[key]; ok {
		fam, ok := r.families[target]
		return fam, ok
	}
	return nil, false
}

// closest returns the face best matching want.
func (f *family) closest(want Style) (*Font, Style) {
	order := []Style{
		want,
		{Bold: want.Bold},
		{Italic: want.Italic},
		{},
		{Bold: true},
		{Italic: true},
		{Bold: true, Italic: true},
	}
	for _, s := range order {
		if face, ok := f.faces[s]; ok {
			return face, s
		}
	}
	return nil, Style{}
}

// splitFamilies splits a CSS font-family list, trimming whitespace and quotes.
func splitFamilies(list string) []string {
	parts := strings.Split(list, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// foldName returns the lookup key of a family name. A new Caser is created
// per call because Casers are not safe for concurrent use.
func foldName(name string) string {
	name = strings.Join(strings.Fields(strings.Trim(strings.TrimSpace(name), `"'`)), " ")
	return cases.Fold().String(name)
}

type bundledFont struct {
	family string
	style  Style
	font   *Font
}

var (
	bundledOnce sync.Once
	bundled     []bundledFont
)

// bundledFonts parses the Go fonts once per process.
func bundledFonts() []bundledFont {
	bundledOnce.Do(func() {
		sources := []struct {
			family string
			style  Style
			data   []byte
		}{
			{FamilyGo, Style{}, goregular.TTF},
			{FamilyGo, Style{Bold: true}, gobold.TTF},
			{FamilyGo, Style{Italic: true}, goitalic.TTF},
			{FamilyGo, Style{Bold: true, Italic: true}, gobolditalic.TTF},
			{FamilyGoMono, Style{}, gomono.TTF},
			{FamilyGoMono, Style{Bold: true}, gomonobold.TTF},
			{FamilyGoMono, Style{Italic: true}, gomonoitalic.TTF},
			{FamilyGoMono, Style{Bold: true, Italic: true}, gomonobolditalic.TTF},
		}
		for _, s := range sources {
			f, err := ParseFont(s.data)
			if err != nil {
				// The Go fonts are embedded and known-good.
				panic(fmt.Sprintf("text: bundled font %s %s: %v", s.family, s.style, err))
			}
			bundled = append(bundled, bundledFont{family: s.family, style: s.style, font: f})
		}
	})
	return bundled
}
