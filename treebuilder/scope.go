package treebuilder

// scope selects which stop-tag set bounds a scope query (spec.md §6.5),
// adapted from chtml/html/parse.go's popUntil/indexOfElementInScope.
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// defaultScopeStopTags are the elements that bound the default, list-item,
// and button scopes (spec.md §6.5), keyed by namespace as in the teacher.
var defaultScopeStopTags = map[string][]string{
	"":     {"applet", "caption", "html", "table", "td", "th", "marquee", "object", "template"},
	"math": {"annotation-xml", "mi", "mn", "mo", "ms", "mtext"},
	"svg":  {"desc", "foreignObject", "title"},
}

// popUntil pops the stack of open elements down to and including the
// highest element whose name is in matchTags, provided no higher element is
// a stop tag for s. It reports whether such an element was found.
func (b *Builder) popUntil(s scope, matchTags ...string) bool {
	if i := b.indexOfElementInScope(s, matchTags...); i != -1 {
		b.oe = b.oe[:i]
		return true
	}
	return false
}

func (b *Builder) indexOfElementInScope(s scope, matchTags ...string) int {
	for i := len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		tag := n.Data
		if n.Namespace == "" {
			for _, t := range matchTags {
				if t == tag {
					return i
				}
			}
			switch s {
			case defaultScope:
			case listItemScope:
				if tag == "ol" || tag == "ul" {
					return -1
				}
			case buttonScope:
				if tag == "button" {
					return -1
				}
			case tableScope:
				if tag == "html" || tag == "table" || tag == "template" {
					return -1
				}
			case selectScope:
				if tag != "optgroup" && tag != "option" {
					return -1
				}
			}
		}
		switch s {
		case defaultScope, listItemScope, buttonScope:
			for _, t := range defaultScopeStopTags[n.Namespace] {
				if t == tag {
					return -1
				}
			}
		}
	}
	return -1
}

func (b *Builder) elementInScope(s scope, matchTags ...string) bool {
	return b.indexOfElementInScope(s, matchTags...) != -1
}

// generateImpliedEndTags pops nodes off the stack of open elements as long
// as the top has one of the implied-end-tag names, skipping any name listed
// in exceptions (spec.md §6.4).
func (b *Builder) generateImpliedEndTags(exceptions ...string) {
	var i int
loop:
	for i = len(b.oe) - 1; i >= 0; i-- {
		n := b.oe[i]
		switch n.Data {
		case "dd", "dt", "li", "optgroup", "option", "p", "rb", "rp", "rt", "rtc":
			for _, except := range exceptions {
				if n.Data == except {
					break loop
				}
			}
			continue
		}
		break
	}
	b.oe = b.oe[:i+1]
}
