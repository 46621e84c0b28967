package interfaces

import (
	"context"
	"io"

	"mecanica_gestao/internal/domain/entities"
)

// IObjectStorage stores binary objects under namespaced paths.
type IObjectStorage interface {
	Upload(ctx context.Context, path string, contentType string, r io.Reader) error
	PublicURL(path string) string
}

// IWhatsAppLinker builds wa.me deep links.
type IWhatsAppLinker interface {
	Link(phone string, text string) (string, error)
}

// IEmailSender sends plain-text mail. The default implementation only simulates delivery.
type IEmailSender interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type IServiceOrderPDFRenderer interface {
	Render(order entities.ServiceOrder, customer entities.Customer) ([]byte, error)
}

type IReceivableSpreadsheet interface {
	Render(receivables []entities.Receivable) ([]byte, error)
}
