package printhub

import "embed"

// EmailFS carries the email templates compiled into the binary. Each
// template group is a directory with an html.tmpl and a plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS
