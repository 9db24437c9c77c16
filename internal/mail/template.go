package mail

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// fragmentPolicy пропускает только безопасную разметку итинерария:
// базовые блоки, ссылки и классы, которые понимает шаблон письма.
var fragmentPolicy = buildFragmentPolicy()

func buildFragmentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "span", "p", "br", "strong", "em", "ul", "li")
	p.AllowAttrs("class").OnElements("div", "p", "span", "strong")
	p.AllowAttrs("target", "rel").OnElements("a")
	return p
}

// SanitizeFragment чистит HTML-фрагмент итинерария, пришедший от клиента.
func SanitizeFragment(fragment string) string {
	return fragmentPolicy.Sanitize(fragment)
}

const emailStyles = `
	body { margin: 0; padding: 0; background: #f4f6f8; font-family: Arial, Helvetica, sans-serif; color: #27303a; }
	.wrapper { max-width: 640px; margin: 0 auto; padding: 24px 16px; }
	.card { background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
	.header { background: linear-gradient(135deg, #2563eb, #7c3aed); color: #ffffff; padding: 28px 32px; }
	.header h1 { margin: 0; font-size: 24px; }
	.header p { margin: 8px 0 0; opacity: 0.9; }
	.content { padding: 28px 32px; font-size: 15px; line-height: 1.6; }
	.day-title { font-size: 18px; font-weight: bold; color: #2563eb; margin: 24px 0 8px; }
	.morning, .afternoon, .evening { margin: 10px 0; padding: 12px 16px; border-radius: 8px; }
	.morning { background: #fef9c3; }
	.afternoon { background: #e0f2fe; }
	.evening { background: #ede9fe; }
	.footer { padding: 20px 32px; font-size: 12px; color: #8492a6; text-align: center; }
	a { color: #2563eb; }
`

// BuildItineraryEmail собирает письмо с итинерарием: HTML-версию в фирменном
// шаблоне и текстовую для клиентов без HTML. Фрагмент должен быть уже
// пропущен через SanitizeFragment.
func BuildItineraryEmail(destination, fragment, publicBaseURL string) (htmlBody, textBody string) {
	viewURL := strings.TrimRight(publicBaseURL, "/") + "/itinerary?destination=" + url.QueryEscape(destination)
	safeDestination := html.EscapeString(destination)

	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<style>%s</style>
</head>
<body>
<div class="wrapper">
  <div class="card">
    <div class="header">
      <h1>Tu itinerario para %s</h1>
      <p>Konekta — planifica menos, viaja más</p>
    </div>
    <div class="content">%s</div>
    <div class="footer">
      <p><a href="%s">Ver el itinerario en línea</a></p>
      <p>Recibiste este correo porque pediste tu itinerario en Konekta.</p>
    </div>
  </div>
</div>
</body>
</html>`, emailStyles, safeDestination, fragment, html.EscapeString(viewURL))

	textBody = fmt.Sprintf("Tu itinerario para %s\n\nVer el itinerario en línea: %s\n", destination, viewURL)
	return htmlBody, textBody
}
