package schema

import "strings"

// Option keys understood by generators.
const (
	OptionNamespace = "namespace"
	OptionPackage   = "package"
)

// Options is opaque generator configuration carried by a Database.
type Options map[string]string

// NewOptions builds options from a namespace and a package label. The
// namespace loses any leading or trailing `\` and `/`.
func NewOptions(namespace, pkg string) Options {
	return Options{
		OptionNamespace: NormalizeNamespace(namespace),
		OptionPackage:   pkg,
	}
}

func (o Options) Namespace() string { return o[OptionNamespace] }
func (o Options) Package() string   { return o[OptionPackage] }

// NormalizeNamespace trims `\` and `/` from both ends.
func NormalizeNamespace(ns string) string {
	return strings.Trim(strings.TrimSpace(ns), `\/`)
}

// FormatNamespace renders ns as a path suffix ("/App/Models"), or "" when
// ns is empty.
func FormatNamespace(ns string) string {
	ns = NormalizeNamespace(ns)
	if ns == "" {
		return ""
	}
	return "/" + strings.ReplaceAll(ns, `\`, "/")
}
