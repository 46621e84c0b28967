package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"
	"mecanica_gestao/internal/domain/rules"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrServiceOrderNotFound   = errors.New("service order not found")
	ErrInvalidServiceOrderID  = errors.New("invalid service order id")
	ErrCancelReasonRequired   = errors.New("cancel reason required")
	ErrInvalidCancelReason    = errors.New("cancel reason must have between 3 and 500 characters")
	ErrInvalidNotifyChannel   = errors.New("invalid notification channel")
	ErrCustomerContactMissing = errors.New("customer has no contact for this channel")
)

const (
	minCancelReason = 3
	maxCancelReason = 500
)

type NotifyChannel string

const (
	NotifyWhatsApp NotifyChannel = "whatsapp"
	NotifyEmail    NotifyChannel = "email"
)

// NotifyResult tells the console what happened: WhatsApp yields a link the
// browser opens, email is sent (simulated) server side.
type NotifyResult struct {
	Channel NotifyChannel `json:"channel"`
	URL     string        `json:"url,omitempty"`
	Sent    bool          `json:"sent"`
}

// IServiceOrderUseCase exposes service order (OS) operations. Orders are never
// edited: Edit exists only to return the rule violation.
type IServiceOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error)
	Cancel(ctx context.Context, actorID string, id string, reason string) (entities.CancelOrderResponse, error)
	Complete(ctx context.Context, actorID string, id string) (entities.ServiceOrder, error)
	Edit(ctx context.Context, id string) error
	Notify(ctx context.Context, actorID string, id string, channel NotifyChannel) (NotifyResult, error)
	ExportPDF(ctx context.Context, id string) ([]byte, error)
}

type ServiceOrderUseCase struct {
	repo         interfaces.IServiceOrderRepository
	customerRepo interfaces.ICustomerRepository
	rpc          interfaces.IBackendRPC
	audit        interfaces.IAuditLogger
	whatsapp     interfaces.IWhatsAppLinker
	email        interfaces.IEmailSender
	pdf          interfaces.IServiceOrderPDFRenderer
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	customerRepo interfaces.ICustomerRepository,
	rpc interfaces.IBackendRPC,
	audit interfaces.IAuditLogger,
	whatsapp interfaces.IWhatsAppLinker,
	email interfaces.IEmailSender,
	pdf interfaces.IServiceOrderPDFRenderer,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		rpc:          rpc,
		audit:        audit,
		whatsapp:     whatsapp,
		email:        email,
		pdf:          pdf,
	}
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx, filter)
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, actorID string, id string, reason string) (entities.CancelOrderResponse, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CancelOrderResponse{}, err
	}
	if err := violation(rules.ValidateOSCancellation(&o)); err != nil {
		log.Info().Str("service_order_id", o.ID).Str("status", string(o.Status)).Msg("[os][usecase] cancel rejected")
		return entities.CancelOrderResponse{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.CancelOrderResponse{}, ErrCancelReasonRequired
	}
	if n := utf8.RuneCountInString(reason); n < minCancelReason || n > maxCancelReason {
		return entities.CancelOrderResponse{}, ErrInvalidCancelReason
	}

	res, err := u.rpc.CancelServiceOrder(ctx, entities.CancelOrderRequest{ServiceOrderID: o.ID, Reason: reason, UserID: actorID})
	if err != nil {
		rpcFailureEvent(err).Str("service_order_id", o.ID).Msg("[os][usecase] cancel rpc failed")
		return entities.CancelOrderResponse{}, err
	}
	u.audit.Log(actorID, "cancel_service_order", map[string]any{"service_order_id": o.ID, "number": o.Number, "reason": reason})
	return res, nil
}

func (u *ServiceOrderUseCase) Complete(ctx context.Context, actorID string, id string) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := violation(rules.ValidateOSCompletion(&o)); err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.ServiceOrderStatusCompleted)
	if err != nil {
		log.Error().Err(err).Str("service_order_id", o.ID).Msg("[os][usecase] complete failed")
		return entities.ServiceOrder{}, err
	}
	u.audit.Log(actorID, "complete_service_order", map[string]any{"service_order_id": o.ID, "number": o.Number})
	return updated, nil
}

func (u *ServiceOrderUseCase) Edit(_ context.Context, _ string) error {
	return violation(rules.ValidateOSEditing(nil))
}

func (u *ServiceOrderUseCase) Notify(ctx context.Context, actorID string, id string, channel NotifyChannel) (NotifyResult, error) {
	if channel != NotifyWhatsApp && channel != NotifyEmail {
		return NotifyResult{}, ErrInvalidNotifyChannel
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return NotifyResult{}, err
	}
	c, err := u.customerRepo.GetByID(ctx, o.CustomerID)
	if err != nil {
		return NotifyResult{}, err
	}
	if c.ID == "" {
		return NotifyResult{}, ErrCustomerNotFound
	}

	text := orderMessage(o, c)
	res := NotifyResult{Channel: channel}
	switch channel {
	case NotifyWhatsApp:
		if strings.TrimSpace(c.Phone) == "" {
			return NotifyResult{}, ErrCustomerContactMissing
		}
		link, err := u.whatsapp.Link(c.Phone, text)
		if err != nil {
			log.Warn().Err(err).Str("customer_id", c.ID).Msg("[os][usecase] whatsapp link failed")
			return NotifyResult{}, ErrCustomerContactMissing
		}
		res.URL = link
	case NotifyEmail:
		if strings.TrimSpace(c.Email) == "" {
			return NotifyResult{}, ErrCustomerContactMissing
		}
		subject := fmt.Sprintf("Ordem de Serviço #%d", o.Number)
		if err := u.email.Send(ctx, c.Email, subject, text); err != nil {
			log.Error().Err(err).Str("service_order_id", o.ID).Msg("[os][usecase] email send failed")
			return NotifyResult{}, err
		}
		res.Sent = true
	}
	u.audit.Log(actorID, "notify_customer", map[string]any{"service_order_id": o.ID, "customer_id": c.ID, "channel": channel})
	return res, nil
}

func (u *ServiceOrderUseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := u.customerRepo.GetByID(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}
	return u.pdf.Render(o, c)
}

func orderMessage(o entities.ServiceOrder, c entities.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s! ", firstName(c.Name))
	switch o.Status {
	case entities.ServiceOrderStatusCompleted:
		fmt.Fprintf(&b, "Sua ordem de serviço #%d foi concluída e o veículo está pronto para retirada. ", o.Number)
	case entities.ServiceOrderStatusCanceled:
		fmt.Fprintf(&b, "Sua ordem de serviço #%d foi cancelada. ", o.Number)
	default:
		fmt.Fprintf(&b, "Sua ordem de serviço #%d está em andamento. ", o.Number)
	}
	fmt.Fprintf(&b, "Valor total: %s.", format.FormatCurrency(o.TotalAmount))
	return b.String()
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return "cliente"
}

