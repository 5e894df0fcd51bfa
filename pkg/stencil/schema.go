package stencil

import "fmt"

// requiredFields are the top-level keys every settings document must carry
// as non-empty strings.
var requiredFields = []string{"id", "name", "version", "type"}

// validateSchema checks the raw parsed document against the settings shape.
// Every structural violation produces one error finding whose message names
// the dot-joined field path and the violation. An empty result means the
// document is well-typed and safe to decode into Settings.
func validateSchema(raw map[string]any) []Finding {
	var findings []Finding

	for _, field := range requiredFields {
		v, ok := raw[field]
		if !ok || v == nil {
			findings = append(findings, errorf(field, fmt.Sprintf("Missing required field '%s'", field)))
			continue
		}
		s, ok := v.(string)
		if !ok {
			findings = append(findings, errorf(field, fmt.Sprintf("Field '%s' must be a string", field)))
			continue
		}
		if s == "" {
			findings = append(findings, errorf(field, fmt.Sprintf("Required field '%s' must not be empty", field)))
		}
	}

	if v, ok := raw["description"]; ok && v != nil {
		if _, ok := v.(string); !ok {
			findings = append(findings, errorf("description", "Field 'description' must be a string"))
		}
	}
	if v, ok := raw["extend"]; ok && v != nil {
		if _, ok := v.(string); !ok {
			findings = append(findings, errorf("extend", "Field 'extend' must be a string"))
		}
	}

	findings = append(findings, validateStringSequence(raw, "files")...)
	findings = append(findings, validateStringSequence(raw, "include")...)
	findings = append(findings, validateMapping(raw, "variables")...)
	findings = append(findings, validateMapping(raw, "metadata")...)

	return findings
}

// validateStringSequence checks that an optional field, when present, is a
// sequence whose elements are all strings.
func validateStringSequence(raw map[string]any, field string) []Finding {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		return []Finding{errorf(field, fmt.Sprintf("Field '%s' must be a sequence", field))}
	}
	var findings []Finding
	for i, elem := range seq {
		if _, ok := elem.(string); !ok {
			path := fmt.Sprintf("%s.%d", field, i)
			findings = append(findings, errorf(path, fmt.Sprintf("Field '%s' must be a string", path)))
		}
	}
	return findings
}

// validateMapping checks that an optional field, when present, is a mapping
// with string keys. Values are deliberately unconstrained.
func validateMapping(raw map[string]any, field string) []Finding {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil
	}
	if _, ok := v.(map[string]any); !ok {
		return []Finding{errorf(field, fmt.Sprintf("Field '%s' must be a mapping", field))}
	}
	return nil
}
