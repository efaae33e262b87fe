package crelate

// Params is the query-parameter set for one request. Values are strings or
// integers; the client adds the api_key entry itself.
type Params map[string]any

// Body is a JSON request body in the Crelate API's camelCase field
// vocabulary. Omitted optional fields are absent, never null.
type Body map[string]any

// Field pairs an optional argument's value with its remote field name.
// Callers rename snake_case tool arguments (contact_id) to the remote
// vocabulary (contactId) at the call site.
type Field struct {
	Name  string
	Value string
}

// ListParams builds pagination parameters plus any supplied optional
// filters. Empty filter values are skipped entirely.
func ListParams(limit, offset int, filters ...Field) Params {
	params := Params{"limit": limit, "offset": offset}
	for _, f := range filters {
		if f.Value != "" {
			params[f.Name] = f.Value
		}
	}
	return params
}

// FilterParams builds a parameter set from supplied filters only. Used by
// count endpoints, which take no pagination.
func FilterParams(filters ...Field) Params {
	params := Params{}
	for _, f := range filters {
		if f.Value != "" {
			params[f.Name] = f.Value
		}
	}
	return params
}

// NewBody builds a sparse request body: the required fields, plus each
// optional field that was actually supplied. An all-optional body with
// nothing supplied yields an empty object.
func NewBody(required Body, optional ...Field) Body {
	body := Body{}
	for k, v := range required {
		body[k] = v
	}
	for _, f := range optional {
		if f.Value != "" {
			body[f.Name] = f.Value
		}
	}
	return body
}
