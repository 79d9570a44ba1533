// Package webhook holds the inbound channel adapters: each one turns a raw
// platform payload into user text, asks the reply generator for an answer,
// and delivers it the way its platform expects.
package webhook

import (
	"encoding/xml"
	"net/http"

	"whatsbot/internal/app"
	"whatsbot/internal/httputil"
)

// twiml is the Twilio messaging response envelope. xml.Marshal escapes the
// reply text, specials included.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// TwilioHandler answers Twilio's form-encoded message webhook with an inline
// TwiML document. The reply travels in the HTTP response itself; there is no
// separate delivery call.
func TwilioHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.Fail(deps.Log, w, "invalid form payload", err, http.StatusBadRequest)
			return
		}
		// An absent Body still goes through the generator as empty text.
		body := r.PostFormValue("Body")

		answer, err := deps.Replier.Generate(r.Context(), body, deps.Config.Brand)
		if err != nil {
			// No TwiML envelope on failure; Twilio shows the delivery error.
			httputil.Fail(deps.Log, w, "reply generation failed", err, http.StatusBadGateway)
			return
		}

		doc, err := xml.Marshal(twiml{Message: answer})
		if err != nil {
			httputil.Fail(deps.Log, w, "encode response failed", err, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(xml.Header))
		_, _ = w.Write(doc)
	}
}
