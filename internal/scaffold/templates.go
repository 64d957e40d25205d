package scaffold

import "text/template"

const postTemplate = `---
title: {{ printf "%q" .Title }}
date: {{ .Date }}
status: {{ .Status }}
{{- if .Author }}
author: {{ printf "%q" .Author }}
{{- end }}
{{- if .Tags }}
tags:
{{- range .Tags }}
  - {{ printf "%q" . }}
{{- end }}
{{- end }}
{{- if .Excerpt }}
excerpt: {{ printf "%q" .Excerpt }}
{{- end }}
---

Write your post here.
`

const projectTemplate = `---
title: {{ printf "%q" .Title }}
status: {{ .Status }}
featured: {{ .Featured }}
{{- if .Date }}
date: {{ .Date }}
{{- end }}
{{- if .Description }}
description: {{ printf "%q" .Description }}
{{- end }}
{{- if .Technologies }}
technologies:
{{- range .Technologies }}
  - {{ printf "%q" . }}
{{- end }}
{{- end }}
{{- if .Repository }}
repository: {{ printf "%q" .Repository }}
{{- end }}
{{- if .Demo }}
demo: {{ printf "%q" .Demo }}
{{- end }}
---

Describe the project here.
`

var (
	postTmpl    = template.Must(template.New("post").Parse(postTemplate))
	projectTmpl = template.Must(template.New("project").Parse(projectTemplate))
)
