package main

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pasal/internal/payments"
)

// paymentFormHandler godoc
//
//	@Summary		Render the provider auto-post form
//	@Description	Serves an HTML page that POSTs the signed form fields of the last dispatch to the provider's hosted endpoint
//	@Tags			checkout
//	@Produce		html
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{string}	string	"HTML auto-post form"
//	@Failure		404			{object}	error
//	@Router			/checkout/sessions/{sessionID}/form [get]
func (app *application) paymentFormHandler(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}
	if session.LastDispatch == nil || session.LastDispatch.Mode != payments.ModeFormPost {
		app.notFoundResponse(w, r, fmt.Errorf("no form dispatch on session %s", session.ID))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.WriteHeader(http.StatusOK)

	if err := renderAutoPostForm(w, session.LastDispatch.PaymentURL, session.LastDispatch.Data); err != nil {
		app.logger.Errorw("failed to render auto-post form", "session", session.ID, "error", err.Error())
	}
}

func renderAutoPostForm(w http.ResponseWriter, action string, fields map[string]string) error {
	const tpl = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Redirecting…</title>
  <style>
    body { font-family: -apple-system, system-ui, Segoe UI, Roboto, Arial; padding: 24px; }
    .box { max-width: 480px; margin: 40px auto; text-align: center; }
  </style>
</head>
<body>
  <div class="box">
    <h3>Redirecting to the payment page…</h3>
    <p>Please wait.</p>

    <form id="f" method="POST" action="{{.Action}}">
      {{range $k, $v := .Fields}}
        <input type="hidden" name="{{$k}}" value="{{$v}}">
      {{end}}
      <noscript><button type="submit">Continue</button></noscript>
    </form>

    <script>
      (function(){ document.getElementById('f').submit(); })();
    </script>
  </div>
</body>
</html>`
	t := template.Must(template.New("p").Parse(tpl))
	return t.Execute(w, map[string]any{
		"Action": action,
		"Fields": fields,
	})
}
