package stencil

// Finding represents one atomic validation outcome.
// Findings are immutable once created; the engine only appends them to a
// report, never mutates or removes them.
type Finding struct {
	// Path locates the subject of the finding: a file path relative to the
	// stencil root, or a dot-joined field path inside the settings document.
	Path string `json:"path"`
	// Severity classifies the finding.
	Severity Severity `json:"severity"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Details carries optional secondary text, e.g. a parser error.
	Details string `json:"details,omitempty"`
}

// errorf builds an error finding.
func errorf(path, message string) Finding {
	return Finding{Path: path, Severity: SeverityError, Message: message}
}

// warningf builds a warning finding.
func warningf(path, message string) Finding {
	return Finding{Path: path, Severity: SeverityWarning, Message: message}
}

// infof builds an info finding.
func infof(path, message string) Finding {
	return Finding{Path: path, Severity: SeverityInfo, Message: message}
}
