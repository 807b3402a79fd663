package renderer_test

import (
	"testing"

	"frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/notification/renderer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RendersEveryTemplate(t *testing.T) {
	r, err := renderer.New()
	require.NoError(t, err)

	data := map[string]string{
		model.DataAppName:           "frontdesk",
		model.DataFullName:          "Jane Doe",
		model.DataEmail:             "jane@x.com",
		model.DataRole:              "RECEPTIONIST",
		model.DataRequestID:         "req-1",
		model.DataNotes:             "need staff ID",
		model.DataSubject:           "Re: info",
		model.DataBody:              "here is my ID",
		model.DataLoginURL:          "https://desk.hotel.test/login",
		model.DataTemporaryPassword: "Tmp-Pass-123",
	}

	for _, tmpl := range []model.Template{
		model.TemplateAccessRequestReceived,
		model.TemplateAccessRequestAlert,
		model.TemplateAccessRequestNeedsInfo,
		model.TemplateAccessRequestReply,
		model.TemplateAccessRequestApproved,
		model.TemplateAccessRequestRejected,
	} {
		t.Run(string(tmpl), func(t *testing.T) {
			res, err := r.Render(tmpl, data)
			require.NoError(t, err)

			assert.NotEmpty(t, res.Subject)
			assert.NotEmpty(t, res.Text)
			assert.NotEmpty(t, res.HTML)
			assert.NotContains(t, res.Text, "<no value>")
		})
	}
}

func TestRenderer_Approved(t *testing.T) {
	r, err := renderer.New()
	require.NoError(t, err)

	res, err := r.Render(model.TemplateAccessRequestApproved, map[string]string{
		model.DataAppName:           "frontdesk",
		model.DataFullName:          "Jane",
		model.DataTemporaryPassword: "Tmp-Pass-123",
		model.DataLoginURL:          "https://desk.hotel.test/login",
	})
	require.NoError(t, err)

	assert.Equal(t, "frontdesk: your account is ready", res.Subject)
	assert.Contains(t, res.Text, "Temporary password: Tmp-Pass-123")
	assert.Contains(t, res.HTML, `href="https://desk.hotel.test/login"`)
}

func TestRenderer_EscapesHTML(t *testing.T) {
	r, err := renderer.New()
	require.NoError(t, err)

	res, err := r.Render(model.TemplateAccessRequestAlert, map[string]string{
		model.DataFullName: "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.NotContains(t, res.HTML, "<script>")
	assert.Contains(t, res.Text, "<script>")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := renderer.New()
	require.NoError(t, err)

	_, err = r.Render("nope", nil)
	assert.ErrorIs(t, err, renderer.ErrUnknownTemplate)
}
