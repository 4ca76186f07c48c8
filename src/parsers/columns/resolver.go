package columns

import (
	"strings"
	"unicode"
)

// Mapping is a user-supplied override: canonical field name -> raw header.
type Mapping map[string]string

// Resolver matches raw headers to canonical fields through an alias table.
// It is safe for concurrent use; nothing is mutated after construction.
type Resolver struct {
	aliases    AliasTable
	normalized map[Field]map[string]struct{}
}

// NewResolver builds a resolver over a private copy of aliases.
func NewResolver(aliases AliasTable) *Resolver {
	r := &Resolver{
		aliases:    aliases.Clone(),
		normalized: make(map[Field]map[string]struct{}, len(aliases)),
	}
	for field, list := range r.aliases {
		set := make(map[string]struct{}, len(list))
		for _, alias := range list {
			set[NormalizeHeader(alias)] = struct{}{}
		}
		r.normalized[field] = set
	}
	return r
}

// NormalizeHeader lower-cases a header and drops every non-alphanumeric rune.
func NormalizeHeader(h string) string {
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range strings.ToLower(h) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve returns the raw header that carries field. An explicit mapping wins
// unconditionally; otherwise the first header, in file order, matching an alias.
func (r *Resolver) Resolve(headers []string, field Field, explicit Mapping) (string, bool) {
	if col, ok := explicit[string(field)]; ok && col != "" {
		return col, true
	}
	aliases := r.normalized[field]
	if len(aliases) == 0 {
		return "", false
	}
	for _, h := range headers {
		if _, ok := aliases[NormalizeHeader(h)]; ok {
			return h, true
		}
	}
	return "", false
}

// Bind resolves every canonical field against one header set.
func (r *Resolver) Bind(headers []string, explicit Mapping) Binding {
	b := Binding{columns: make(map[Field]string, len(Fields))}
	for _, field := range Fields {
		if col, ok := r.Resolve(headers, field, explicit); ok {
			b.columns[field] = col
		}
	}
	return b
}

// FieldAliases is one entry of the published column reference.
type FieldAliases struct {
	Field   Field    `json:"field"`
	Aliases []string `json:"aliases"`
}

// Reference returns the alias table Resolve matches against, in publication order.
func (r *Resolver) Reference() []FieldAliases {
	out := make([]FieldAliases, 0, len(Fields))
	for _, field := range Fields {
		out = append(out, FieldAliases{Field: field, Aliases: append([]string(nil), r.aliases[field]...)})
	}
	return out
}

// Binding is the per-file result of resolving every field once.
type Binding struct {
	columns map[Field]string
}

// Column returns the raw header bound to field.
func (b Binding) Column(field Field) (string, bool) {
	col, ok := b.columns[field]
	return col, ok
}

// Value returns the trimmed cell for field, and whether it is present and non-empty.
func (b Binding) Value(row map[string]string, field Field) (string, bool) {
	col, ok := b.Column(field)
	if !ok {
		return "", false
	}
	v, ok := row[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
