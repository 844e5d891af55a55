package value

// ArgumentList is the value bound to a declared rest parameter (`$args...`).
// It behaves like a List for positional access but also carries the named
// arguments passed past the declared parameters, and tracks — via a
// pointer so copies share the flag — whether `keywords($args)` has been
// called on it, per the spec's design note that an unconsumed keyword
// argument on a rest parameter is an error only when nothing ever inspected
// it with keywords(). There is no teacher precedent for this (LESS mixins
// bind by fixed name, not rest+keyword splat); grounded on the general
// positional/named split already present in bindMixinArguments, extended
// into its own value type because Sass, unlike LESS, allows the bound rest
// arguments to continue flowing through expressions as values.
type ArgumentList struct {
	List
	Keywords         map[string]Value
	KeywordOrder     []string
	keywordsAccessed *bool
}

func NewArgumentList(positional []Value, separator string, keywords map[string]Value, order []string) *ArgumentList {
	accessed := false
	return &ArgumentList{
		List:             NewList(positional, separator, false),
		Keywords:         keywords,
		KeywordOrder:     order,
		keywordsAccessed: &accessed,
	}
}

// MarkKeywordsAccessed records that keywords() was called on this list,
// exempting it from the "not all keyword arguments were accepted" error.
func (a *ArgumentList) MarkKeywordsAccessed() {
	if a.keywordsAccessed != nil {
		*a.keywordsAccessed = true
	}
}

func (a *ArgumentList) KeywordsAccessed() bool {
	return a.keywordsAccessed != nil && *a.keywordsAccessed
}

func (a *ArgumentList) TypeName() string { return "arglist" }
