// internal/app/features/contact/thanks.go
package contact

import (
	"net/http"

	"github.com/dalemusser/orsonvision/internal/app/system/formflow"
	"github.com/dalemusser/orsonvision/internal/app/system/i18n"
	"github.com/dalemusser/orsonvision/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type thanksData struct {
	viewdata.BaseVM
	Heading     string
	Body        string
	Name        string
	SendAnother string
}

// ServeThanks handles GET /contact/thanks. Only a submitted form gets the
// success view; anyone else is sent back to the form.
func (h *Handler) ServeThanks(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r, formflow.ContactDefinition)
	if !c.IsSubmitted() {
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	loc := i18n.FromContext(r.Context())
	data := thanksData{
		BaseVM:      viewdata.NewBaseVM(r, loc.T(i18n.ContactThanksTitle), "/"),
		Heading:     loc.T(i18n.ContactThanksTitle),
		Body:        loc.T(i18n.ContactThanksBody),
		Name:        c.Data().Get(formflow.FieldName),
		SendAnother: loc.T(i18n.ContactSendAnother),
	}
	h.Render(w, r, "contact_thanks", data)
}

// HandleReset handles POST /contact/reset ("send another"). Files attached
// to a form that was never submitted are removed from disk.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r, formflow.ContactDefinition)
	if !c.IsSubmitted() && h.Uploads != nil {
		for _, a := range c.Data().Files {
			if err := h.Uploads.Remove(a.StoredName); err != nil {
				h.Log.Warn("remove abandoned attachment failed",
					zap.String("stored_name", a.StoredName), zap.Error(err))
			}
		}
	}
	if err := h.Sessions.Clear(w, r, formflow.ContactDefinition); err != nil {
		h.ErrLog.LogServerError(w, r, "clear contact session failed", err, "", "/contact")
		return
	}
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
