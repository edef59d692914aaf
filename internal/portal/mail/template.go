package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// InviteEmail carries the fields rendered into the invite message.
type InviteEmail struct {
	InviteLink    string
	RoleLabel     string
	InvitedByName string
}

var inviteTmpl = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1a1a1a; max-width: 560px; margin: 0 auto; padding: 24px;">
    <h2 style="margin-bottom: 8px;">You're invited</h2>
    <p>
      {{if .InvitedByName}}{{.InvitedByName}} has invited you{{else}}You have been invited{{end}}
      to join the portal as a <strong>{{.RoleLabel}}</strong>.
    </p>
    <p>
      <a href="{{.InviteLink}}"
         style="display: inline-block; background: #2563eb; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">
        Create your account
      </a>
    </p>
    <p style="color: #666; font-size: 13px;">
      This invitation expires in 7 days. If the button does not work, copy this
      link into your browser:<br>
      <a href="{{.InviteLink}}">{{.InviteLink}}</a>
    </p>
  </body>
</html>`))

// RenderInvite produces the subject and HTML body for an invite email.
func RenderInvite(email InviteEmail) (subject, html string, err error) {
	var sb strings.Builder
	if err := inviteTmpl.Execute(&sb, email); err != nil {
		return "", "", fmt.Errorf("render invite email: %w", err)
	}
	subject = fmt.Sprintf("You're invited to join as %s", email.RoleLabel)
	return subject, sb.String(), nil
}
