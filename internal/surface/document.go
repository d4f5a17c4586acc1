// Package surface models the shared rendering context the state layer
// projects onto: a document root carrying custom properties and classes,
// and the main content region carrying background classes.
package surface

import (
	"fmt"
	"strings"
	"sync"
)

// Element is one styled region. Property and class order follow first
// insertion so rendered output is stable.
type Element struct {
	name      string
	propOrder []string
	props     map[string]string
	classes   []string
}

func newElement(name string) *Element {
	return &Element{name: name, props: make(map[string]string)}
}

func (e *Element) setProperty(name, value string) {
	if _, ok := e.props[name]; !ok {
		e.propOrder = append(e.propOrder, name)
	}
	e.props[name] = value
}

func (e *Element) hasClass(token string) bool {
	for _, c := range e.classes {
		if c == token {
			return true
		}
	}
	return false
}

func (e *Element) addClass(token string) {
	if token == "" || e.hasClass(token) {
		return
	}
	e.classes = append(e.classes, token)
}

func (e *Element) removeClasses(match func(string) bool) {
	kept := e.classes[:0]
	for _, c := range e.classes {
		if !match(c) {
			kept = append(kept, c)
		}
	}
	e.classes = kept
}

// Snapshot is a read-only copy of an element's state.
type Snapshot struct {
	Name       string
	Properties []Property
	Classes    []string
}

// Property is one custom property assignment.
type Property struct {
	Name  string
	Value string
}

func (e *Element) snapshot() Snapshot {
	props := make([]Property, 0, len(e.propOrder))
	for _, name := range e.propOrder {
		props = append(props, Property{Name: name, Value: e.props[name]})
	}
	return Snapshot{
		Name:       e.name,
		Properties: props,
		Classes:    append([]string(nil), e.classes...),
	}
}

// Document is the page-level surface. It is safe for concurrent use.
type Document struct {
	mu   sync.RWMutex
	root *Element
	main *Element
}

// NewDocument returns a document whose main region starts with the given
// classes, e.g. the page's static layout tokens.
func NewDocument(mainClasses ...string) *Document {
	d := &Document{root: newElement("root"), main: newElement("main")}
	for _, c := range mainClasses {
		d.main.addClass(c)
	}
	return d
}

// SetProperty sets a custom property on the document root.
func (d *Document) SetProperty(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.root.setProperty(name, value)
}

// Property reads a custom property from the document root.
func (d *Document) Property(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.root.props[name]
	return v, ok
}

// SwapRootClass removes every token of family from the root and adds token.
func (d *Document) SwapRootClass(family []string, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	swap(d.root, family, token)
}

// SwapMainClass removes every token of family from the main region and adds token.
func (d *Document) SwapMainClass(family []string, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	swap(d.main, family, token)
}

// SwapMainClassPrefix removes every main-region class starting with prefix
// and adds token.
func (d *Document) SwapMainClassPrefix(prefix, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.main.removeClasses(func(c string) bool { return strings.HasPrefix(c, prefix) })
	d.main.addClass(token)
}

func swap(e *Element, family []string, token string) {
	members := make(map[string]struct{}, len(family))
	for _, f := range family {
		members[f] = struct{}{}
	}
	e.removeClasses(func(c string) bool {
		_, ok := members[c]
		return ok
	})
	e.addClass(token)
}

// Root returns a snapshot of the document root.
func (d *Document) Root() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.root.snapshot()
}

// Main returns a snapshot of the main content region.
func (d *Document) Main() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.main.snapshot()
}

// Stylesheet renders the root custom properties as a CSS rule.
func (d *Document) Stylesheet() string {
	root := d.Root()

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range root.Properties {
		fmt.Fprintf(&b, "  %s: %s;\n", p.Name, p.Value)
	}
	b.WriteString("}\n")
	return b.String()
}
