package view

import (
	"html/template"
	"io"
)

// Page carrega os dados comuns renderizados pelo layout: título, item ativo
// da navegação, mensagem de status e a tabela já serializada. Uma tabela
// vazia indica que a página não tem dados para exibir.
type Page struct {
	Title   string
	Active  string
	Message string
	Table   template.HTML
}

const layoutTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | Retail Insights</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
<style>
body{padding-bottom:40px}
.table{background:#fff}
.page-header{margin:24px 0 16px 0}
</style>
</head>
<body>
<nav class="navbar navbar-expand navbar-dark bg-dark">
  <div class="container">
    <a class="navbar-brand" href="/">Retail Insights</a>
    <ul class="navbar-nav">
      <li class="nav-item"><a class="nav-link{{if eq .Active "home"}} active{{end}}" href="/">Home</a></li>
      <li class="nav-item"><a class="nav-link{{if eq .Active "raw-data"}} active{{end}}" href="/raw-data">Raw Data</a></li>
      <li class="nav-item"><a class="nav-link{{if eq .Active "about"}} active{{end}}" href="/about">About</a></li>
      <li class="nav-item"><a class="nav-link{{if eq .Active "contact"}} active{{end}}" href="/contact">Contact</a></li>
    </ul>
  </div>
</nav>
<main class="container">
{{template "content" .}}
</main>
</body>
</html>
`

const insightsContent = `{{define "content"}}
<h1 class="page-header">Demand Forecast &amp; Pricing Suggestions</h1>
{{if .Message}}<div class="alert alert-secondary">{{.Message}}</div>{{end}}
{{if .Table}}
<div class="table-responsive">
{{.Table}}
</div>
<p class="text-muted"><a href="/export/insights.csv">Download insights as CSV</a></p>
{{end}}
{{end}}`

const rawDataContent = `{{define "content"}}
<h1 class="page-header">Raw Sales Data</h1>
{{if .Message}}<div class="alert alert-secondary">{{.Message}}</div>{{end}}
{{if .Table}}
<div class="table-responsive">
{{.Table}}
</div>
{{end}}
{{end}}`

const aboutContent = `{{define "content"}}
<h1 class="page-header">About</h1>
<p class="lead">Retail Insights turns historical sales data into pricing recommendations.</p>
<p>The application reads daily sales observations from a CSV file and computes a naive
demand forecast for every product, store and region combination: the arithmetic mean of
the historical daily sales units. The forecast then drives a simple pricing rule.</p>
<ul>
  <li>Forecast above 70 units: raise the base price by 5% to protect stock.</li>
  <li>Forecast below 40 units: cut the base price by 10% to move inventory.</li>
  <li>Anything in between: hold the current price.</li>
</ul>
<p>Every page request reloads the data file and recomputes the insights, so the tables
always reflect the current contents of the dataset.</p>
{{end}}`

const contactContent = `{{define "content"}}
<h1 class="page-header">Contact</h1>
<p class="lead">Questions about the data or the pricing suggestions?</p>
<p>Reach the team at <a href="mailto:retail-insights@example.com">retail-insights@example.com</a>.</p>
<p>Dataset issues, such as missing files or malformed rows, show up as a message on the
Home and Raw Data pages. Include that message when reporting a problem.</p>
{{end}}`

var (
	insightsPage = pageTemplate("insights", insightsContent)
	rawDataPage  = pageTemplate("raw-data", rawDataContent)
	aboutPage    = pageTemplate("about", aboutContent)
	contactPage  = pageTemplate("contact", contactContent)
)

func pageTemplate(name, content string) *template.Template {
	tmpl := template.Must(template.New(name).Parse(layoutTemplate))

	return template.Must(tmpl.Parse(content))
}

// RenderInsights renderiza a página inicial com a tabela de insights.
func RenderInsights(w io.Writer, page Page) error {
	return insightsPage.Execute(w, page)
}

// RenderRawData renderiza a página com o dataset bruto de vendas.
func RenderRawData(w io.Writer, page Page) error {
	return rawDataPage.Execute(w, page)
}

// RenderAbout renderiza a página estática sobre a aplicação.
func RenderAbout(w io.Writer, page Page) error {
	return aboutPage.Execute(w, page)
}

// RenderContact renderiza a página estática de contato.
func RenderContact(w io.Writer, page Page) error {
	return contactPage.Execute(w, page)
}
