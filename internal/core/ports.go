package core

import (
	"context"

	"github.com/avendano/geoportal/internal/model"
)

// Notifier delivers the certificate email for a completed request.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string, attachment []byte, filename string) error
}

// Renderer produces the certificate document for a completed request.
// Page layout lives with the external rendering collaborator; the core
// only moves bytes between the renderer and the notifier.
type Renderer interface {
	Render(ctx context.Context, req *model.CertificateRequest, stations []model.Station) ([]byte, error)
}
