// Package schema provides the attribute model, attribute parsing, the
// transform registry, and structural validation for annotated definitions.
//
// Two attribute surfaces feed the model:
//
//   - the container directive on the type declaration:
//     //netabase:schema prefix=user separator=:: version=v1 serde_compat item_key_closure=Name
//   - the field tag:
//     `netabase:"is_key,key_transform=Name,index,optional"`
//
// Parsing is total and side-effect free: for any input it yields a fully
// populated Model or appends diagnostics, never both partially. Unknown and
// duplicate attribute keys are rejected with diagnostics naming the offending
// key and its attribute group.
//
// Transforms replace closure-valued attributes: they are pre-declared in a
// YAML manifest (name, import path, func, source type) and referenced by name
// from key_transform and item_key_closure. The registry validates that every
// referenced name exists and that its signature maps the annotated construct
// to a string.
package schema
