package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/rules"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrReceivableNotFound             = errors.New("receivable not found")
	ErrInvalidReceivableID            = errors.New("invalid receivable id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentChargeNotFound          = errors.New("payment charge not found")
	ErrPaymentChargePending           = errors.New("a charge for this receivable is still pending")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

const paymentMethodMercadoPago = "mercado_pago"

// IReceivableUseCase covers contas a receber: listing, manual payment
// registration, online charge through the payment gateway, the overdue sweep
// and the spreadsheet export.
type IReceivableUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Receivable, error)
	List(ctx context.Context, filter entities.ReceivableFilter) ([]entities.Receivable, error)
	RegisterPayment(ctx context.Context, actorID string, id string, rawAmount string, method string) (entities.Receivable, error)
	ChargeOnline(ctx context.Context, actorID string, id string, mpPayload json.RawMessage) (entities.PaymentCharge, error)
	ListCharges(ctx context.Context, id string) ([]entities.PaymentCharge, error)
	RefreshCharge(ctx context.Context, actorID string, receivableID string, chargeID string) (entities.PaymentCharge, error)
	RefreshOverdue(ctx context.Context, now time.Time) (int64, error)
	ExportXLSX(ctx context.Context, filter entities.ReceivableFilter) ([]byte, error)
}

type ReceivableUseCase struct {
	repo         interfaces.IReceivableRepository
	chargeRepo   interfaces.IPaymentChargeRepository
	customerRepo interfaces.ICustomerRepository
	gateway      interfaces.IPaymentGateway
	audit        interfaces.IAuditLogger
	sheet        interfaces.IReceivableSpreadsheet
}

var _ IReceivableUseCase = (*ReceivableUseCase)(nil)

func NewReceivableUseCase(
	repo interfaces.IReceivableRepository,
	chargeRepo interfaces.IPaymentChargeRepository,
	customerRepo interfaces.ICustomerRepository,
	gateway interfaces.IPaymentGateway,
	audit interfaces.IAuditLogger,
	sheet interfaces.IReceivableSpreadsheet,
) *ReceivableUseCase {
	return &ReceivableUseCase{
		repo:         repo,
		chargeRepo:   chargeRepo,
		customerRepo: customerRepo,
		gateway:      gateway,
		audit:        audit,
		sheet:        sheet,
	}
}

func (u *ReceivableUseCase) GetByID(ctx context.Context, id string) (entities.Receivable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Receivable{}, ErrInvalidReceivableID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Receivable{}, err
	}
	if r.ID == "" {
		return entities.Receivable{}, ErrReceivableNotFound
	}
	return r, nil
}

func (u *ReceivableUseCase) List(ctx context.Context, filter entities.ReceivableFilter) ([]entities.Receivable, error) {
	return u.repo.List(ctx, filter)
}

func (u *ReceivableUseCase) RegisterPayment(ctx context.Context, actorID string, id string, rawAmount string, method string) (entities.Receivable, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Receivable{}, err
	}
	amount, res := rules.ValidatePaymentAmountInput(&r, rawAmount)
	if err := violation(res); err != nil {
		return entities.Receivable{}, err
	}

	method = strings.TrimSpace(method)
	if method == "" {
		method = "dinheiro"
	}
	updated, err := u.repo.RegisterPayment(ctx, entities.PaymentRegistration{
		ReceivableID:  r.ID,
		Amount:        amount,
		PaymentMethod: method,
		PaidAt:        time.Now().UTC(),
		RegisteredBy:  actorID,
	})
	if err != nil {
		log.Error().Err(err).Str("receivable_id", r.ID).Msg("[receivable][usecase] register payment failed")
		return entities.Receivable{}, err
	}
	u.audit.Log(actorID, "register_payment", map[string]any{"receivable_id": r.ID, "amount": amount, "method": method})
	return updated, nil
}

// ChargeOnline charges the full open amount of a pending receivable through the
// payment gateway, keeps the provider response in the charge ledger and, when
// the provider approves it, registers the payment.
//
// The ledger is consulted first: an approved charge is settled without calling
// the gateway again and a pending one blocks a new charge.
func (u *ReceivableUseCase) ChargeOnline(ctx context.Context, actorID string, id string, mpPayload json.RawMessage) (entities.PaymentCharge, error) {
	log.Info().Str("receivable_id", id).Int("payload_len", len(mpPayload)).Msg("[payment][usecase] charge start")
	if u.gateway == nil {
		return entities.PaymentCharge{}, ErrPaymentGatewayNotConfigured
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		return entities.PaymentCharge{}, ErrInvalidMPPayload
	}

	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	if err := violation(rules.ValidatePaymentRegistration(&r, r.Amount)); err != nil {
		return entities.PaymentCharge{}, err
	}

	previous, err := u.chargeRepo.ListByReceivableID(ctx, r.ID)
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	for _, c := range previous {
		switch c.Status {
		case entities.ChargeStatusApproved:
			log.Info().Str("receivable_id", r.ID).Str("charge_id", c.ID).Msg("[payment][usecase] settling existing approved charge")
			if err := u.settle(ctx, actorID, r, c); err != nil {
				return entities.PaymentCharge{}, err
			}
			u.audit.Log(actorID, "settle_charge", map[string]any{"receivable_id": r.ID, "charge_id": c.ID})
			return c, nil
		case entities.ChargeStatusPending:
			log.Info().Str("receivable_id", r.ID).Str("charge_id", c.ID).Msg("[payment][usecase] charge still pending")
			return entities.PaymentCharge{}, ErrPaymentChargePending
		}
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.PaymentCharge{}, ErrInvalidMPPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		reqMap["payment_method_id"] = "pix"
	}
	payerEmail := ""
	if c, err := u.customerRepo.GetByID(ctx, r.CustomerID); err == nil {
		payerEmail = c.Email
	}
	ensurePayerDefaults(reqMap, payerEmail)
	if !hasPayer(reqMap) {
		log.Info().Str("receivable_id", r.ID).Msg("[payment][usecase] missing payer")
		return entities.PaymentCharge{}, ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = r.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Conta a receber %s", r.ID)
	}
	// The receivable in the backend is the source of truth for the amount.
	amount, _ := r.Amount.Float64()
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentCharge{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error().Err(err).Str("receivable_id", r.ID).Msg("[payment][usecase] gateway failed")
		return entities.PaymentCharge{}, mapGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("receivable_id", r.ID).Msg("[payment][usecase] provider response unmarshal failed")
	}
	charge := entities.PaymentCharge{
		ID:                 providerID,
		ReceivableID:       r.ID,
		Amount:             r.Amount,
		Date:               time.Now().UTC(),
		Status:             chargeStatusFromProvider(providerStatus),
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.chargeRepo.Create(ctx, charge)
	if err != nil {
		log.Error().Err(err).Str("receivable_id", r.ID).Str("charge_id", charge.ID).Msg("[payment][usecase] charge record failed")
		return entities.PaymentCharge{}, err
	}

	if created.Status == entities.ChargeStatusApproved {
		if err := u.settle(ctx, actorID, r, created); err != nil {
			return entities.PaymentCharge{}, err
		}
	}
	log.Info().Str("receivable_id", r.ID).Str("charge_id", created.ID).Str("status", string(created.Status)).Msg("[payment][usecase] charge done")
	u.audit.Log(actorID, "charge_receivable", map[string]any{"receivable_id": r.ID, "charge_id": created.ID, "status": created.Status})
	return created, nil
}

func (u *ReceivableUseCase) ListCharges(ctx context.Context, id string) ([]entities.PaymentCharge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidReceivableID
	}
	return u.chargeRepo.ListByReceivableID(ctx, id)
}

// RefreshCharge asks the provider for the current status of a pending charge,
// stores it in the ledger and registers the payment once it is approved.
func (u *ReceivableUseCase) RefreshCharge(ctx context.Context, actorID string, receivableID string, chargeID string) (entities.PaymentCharge, error) {
	r, err := u.GetByID(ctx, receivableID)
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.PaymentCharge{}, ErrPaymentChargeNotFound
	}
	c, err := u.chargeRepo.GetByID(ctx, chargeID)
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	if c.ID == "" || c.ReceivableID != r.ID {
		return entities.PaymentCharge{}, ErrPaymentChargeNotFound
	}

	if c.Status == entities.ChargeStatusPending {
		if u.gateway == nil {
			return entities.PaymentCharge{}, ErrPaymentGatewayNotConfigured
		}
		providerStatus, providerResp, err := u.gateway.GetPayment(ctx, c.ID)
		if err != nil {
			log.Error().Err(err).Str("charge_id", c.ID).Msg("[payment][usecase] provider status lookup failed")
			return entities.PaymentCharge{}, mapGatewayError(err)
		}
		if providerStatus != c.ProviderStatus {
			c.Status = chargeStatusFromProvider(providerStatus)
			c.ProviderStatus = providerStatus
			c.ProviderPayloadRaw = providerResp
			c.ProviderPayload = nil
			if err := json.Unmarshal(providerResp, &c.ProviderPayload); err != nil {
				log.Warn().Err(err).Str("charge_id", c.ID).Msg("[payment][usecase] provider response unmarshal failed")
			}
			if c, err = u.chargeRepo.Update(ctx, c); err != nil {
				log.Error().Err(err).Str("charge_id", chargeID).Msg("[payment][usecase] charge update failed")
				return entities.PaymentCharge{}, err
			}
			u.audit.Log(actorID, "refresh_charge", map[string]any{"receivable_id": r.ID, "charge_id": c.ID, "status": c.Status})
		}
	}

	if c.Status == entities.ChargeStatusApproved && r.Status != entities.ReceivableStatusPaid {
		if err := u.settle(ctx, actorID, r, c); err != nil {
			return entities.PaymentCharge{}, err
		}
	}
	return c, nil
}

// settle registers the full receivable amount as paid by an approved charge.
func (u *ReceivableUseCase) settle(ctx context.Context, actorID string, r entities.Receivable, c entities.PaymentCharge) error {
	_, err := u.repo.RegisterPayment(ctx, entities.PaymentRegistration{
		ReceivableID:  r.ID,
		Amount:        r.Amount,
		PaymentMethod: paymentMethodMercadoPago,
		PaidAt:        c.Date,
		RegisteredBy:  actorID,
	})
	if err != nil {
		log.Error().Err(err).Str("receivable_id", r.ID).Str("charge_id", c.ID).Msg("[payment][usecase] approved charge not registered")
	}
	return err
}

// RefreshOverdue moves pending receivables past their due date to Atrasado.
func (u *ReceivableUseCase) RefreshOverdue(ctx context.Context, now time.Time) (int64, error) {
	n, err := u.repo.MarkOverdue(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("[receivable][usecase] overdue sweep failed")
		return 0, err
	}
	if n > 0 {
		u.audit.Log("", "mark_overdue_receivables", map[string]any{"count": n, "as_of": now.UTC()})
	}
	return n, nil
}

func (u *ReceivableUseCase) ExportXLSX(ctx context.Context, filter entities.ReceivableFilter) ([]byte, error) {
	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.sheet.Render(items)
}

func chargeStatusFromProvider(status string) entities.ChargeStatus {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.ChargeStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.ChargeStatusDenied
	default:
		return entities.ChargeStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when neither id nor email was sent,
// the customer's email on file.
func ensurePayerDefaults(m map[string]any, email string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.TrimSpace(email) != "" {
		payer["email"] = strings.TrimSpace(email)
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
