package render

import (
	"html/template"
	"io"
)

// Markup for the three result regions. Class names match the page stylesheet.
// Card text goes through Text.HTML; the error message is a plain string and
// is escaped by html/template.
var pageTemplates = template.Must(template.New("regions").Parse(`
{{- define "cards" -}}
<div id="holidays-grid" class="holidays-grid">
{{- range . }}
<div class="holiday-card" style="animation-delay: {{ .AnimationDelay }}">
<div class="holiday-header">
<h3 class="holiday-name">{{ .Name.HTML }}</h3>
{{- if not .Type.IsZero }}
<span class="holiday-type">{{ .Type.HTML }}</span>
{{- end }}
</div>
<div class="holiday-date">
<span class="holiday-date-icon">📅</span>
<span>{{ .Date }}</span>
{{- if not .WeekDay.IsZero }}
<span>• {{ .WeekDay.HTML }}</span>
{{- end }}
</div>
<div class="holiday-location">
<span class="holiday-location-icon">📍</span>
<span>{{ .Location.HTML }}</span>
</div>
{{- if not .LocalName.IsZero }}
<div class="holiday-local-name">Local: {{ .LocalName.HTML }}</div>
{{- end }}
{{- if not .Description.IsZero }}
<div class="holiday-description">{{ .Description.HTML }}</div>
{{- end }}
</div>
{{- end }}
</div>
{{ end -}}

{{- define "empty" -}}
<div id="no-results" class="no-results">
<p>No holidays found for this country and year.</p>
</div>
{{ end -}}

{{- define "error" -}}
<div id="error-message" class="error-message">
<p id="error-text">{{ . }}</p>
</div>
{{ end -}}
`))

// WriteCards writes the results grid.
func WriteCards(w io.Writer, cards []Card) error {
	return pageTemplates.ExecuteTemplate(w, "cards", cards)
}

// WriteEmpty writes the no-results region.
func WriteEmpty(w io.Writer) error {
	return pageTemplates.ExecuteTemplate(w, "empty", nil)
}

// WriteError writes the error region with message escaped.
func WriteError(w io.Writer, message string) error {
	return pageTemplates.ExecuteTemplate(w, "error", message)
}
