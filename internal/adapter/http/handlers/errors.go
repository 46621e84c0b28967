package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/usecase"
	"mecanica_gestao/internal/usecase/interfaces"
	"mecanica_gestao/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Ocorreu um erro interno", http.StatusInternalServerError)
	errRPCValidation  = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Dados inválidos para a operação", http.StatusUnprocessableEntity)
)

type errorMapping struct {
	target error
	err    *pkg.AppError
}

// errorTable maps use case sentinels to the HTTP envelope. The first match wins.
var errorTable = []errorMapping{
	{usecase.ErrBudgetNotFound, pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)},
	{usecase.ErrCustomerNotFound, pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)},
	{usecase.ErrVehicleNotFound, pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Veículo não encontrado", http.StatusNotFound)},
	{usecase.ErrPayableNotFound, pkg.NewDomainErrorSimple("PAYABLE_NOT_FOUND", "Conta a pagar não encontrada", http.StatusNotFound)},
	{usecase.ErrCommissionNotFound, pkg.NewDomainErrorSimple("COMMISSION_NOT_FOUND", "Comissão não encontrada", http.StatusNotFound)},
	{usecase.ErrReceivableNotFound, pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Conta a receber não encontrada", http.StatusNotFound)},
	{usecase.ErrPaymentChargeNotFound, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)},
	{usecase.ErrServiceOrderNotFound, pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)},
	{interfaces.ErrUserNotFound, pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)},

	{usecase.ErrPayableAlreadyPaid, pkg.NewDomainErrorSimple("PAYABLE_ALREADY_PAID", "Conta já está paga", http.StatusConflict)},
	{usecase.ErrCommissionAlreadyPaid, pkg.NewDomainErrorSimple("COMMISSION_ALREADY_PAID", "Comissão já está paga", http.StatusConflict)},
	{interfaces.ErrAlreadyRegistered, pkg.NewDomainErrorSimple("USER_ALREADY_REGISTERED", "E-mail já cadastrado", http.StatusConflict)},
	{usecase.ErrPaymentChargePending, pkg.NewDomainErrorSimple("CHARGE_PENDING", "Já existe uma cobrança pendente para esta conta", http.StatusConflict)},
	{interfaces.ErrDuplicate, pkg.NewDomainErrorSimple("DUPLICATE", "Registro já existe", http.StatusConflict)},

	{interfaces.ErrInvalidCredentials, pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "E-mail ou senha inválidos", http.StatusUnauthorized)},
	{interfaces.ErrSessionNotFound, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão inválida ou expirada", http.StatusUnauthorized)},
	{interfaces.ErrInvalidResetToken, pkg.NewDomainErrorSimple("INVALID_RESET_TOKEN", "Link de redefinição inválido ou expirado", http.StatusBadRequest)},
	{usecase.ErrWeakPassword, pkg.NewDomainErrorSimple("WEAK_PASSWORD", "A senha deve ter pelo menos 8 caracteres", http.StatusBadRequest)},

	{usecase.ErrPaymentGatewayCustomerNotFound, pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Pagador não encontrado no Mercado Pago", http.StatusBadRequest)},
	{usecase.ErrPaymentGatewayInvalidUsers, pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Usuários inválidos entre vendedor e pagador", http.StatusBadRequest)},
	{usecase.ErrPaymentGatewayUnauthorized, pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Provedor de pagamento não autorizado", http.StatusUnauthorized)},
	{usecase.ErrPaymentGatewayNotConfigured, pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Pagamento online indisponível", http.StatusServiceUnavailable)},

	{usecase.ErrCancelReasonRequired, pkg.NewDomainErrorSimple("CANCEL_REASON_REQUIRED", "Informe o motivo do cancelamento", http.StatusBadRequest)},
	{usecase.ErrInvalidCancelReason, pkg.NewDomainErrorSimple("INVALID_CANCEL_REASON", "O motivo deve ter entre 3 e 500 caracteres", http.StatusBadRequest)},
	{usecase.ErrInvalidNotifyChannel, pkg.NewDomainErrorSimple("INVALID_CHANNEL", "Canal de notificação inválido", http.StatusBadRequest)},
	{usecase.ErrCustomerContactMissing, pkg.NewDomainErrorSimple("CUSTOMER_CONTACT_MISSING", "Cliente sem contato para este canal", http.StatusUnprocessableEntity)},
	{usecase.ErrInvalidAvatar, pkg.NewDomainErrorSimple("INVALID_AVATAR", "Arquivo de avatar inválido", http.StatusBadRequest)},
	{usecase.ErrInvalidRole, pkg.NewDomainErrorSimple("INVALID_ROLE", "Perfil inválido", http.StatusBadRequest)},
	{usecase.ErrInvalidDateRange, pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Período inválido", http.StatusBadRequest)},
}

// invalidInput collects the sentinels that collapse into a generic 400.
var invalidInput = []error{
	usecase.ErrInvalidBudgetID, usecase.ErrInvalidBudget, usecase.ErrInvalidBudgetItem,
	usecase.ErrInvalidCustomer, usecase.ErrInvalidVehicle,
	usecase.ErrInvalidPayable,
	usecase.ErrInvalidReceivableID, usecase.ErrInvalidMPPayload, usecase.ErrPaymentGatewayBadRequest,
	usecase.ErrInvalidServiceOrderID,
	usecase.ErrInvalidUser, usecase.ErrInvalidAuditUserID,
}

// mapError converts a use case error into the response envelope.
// Business rule failures carry each broken rule in Details.
func mapError(err error) *pkg.AppError {
	var ruleErr *usecase.RuleViolationError
	if errors.As(err, &ruleErr) {
		return pkg.NewDomainError("BUSINESS_RULE_VIOLATION", ruleErr.Result.Message(), err, http.StatusUnprocessableEntity).
			WithDetails(ruleErr.Result.Errors...)
	}
	var rejected *interfaces.BackendRejectedError
	if errors.As(err, &rejected) {
		return pkg.NewDomainError("BACKEND_REJECTED", rejected.Message, err, http.StatusUnprocessableEntity)
	}
	if errors.Is(err, interfaces.ErrInvalidRPCRequest) {
		return errRPCValidation.WithDetails(err.Error())
	}
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m.err
		}
	}
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return errInvalidRequest.WithDetails(err.Error())
		}
	}
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

func respondError(c *gin.Context, scope string, err error, details ...string) {
	appErr := mapError(err)
	if len(details) > 0 {
		appErr = appErr.WithDetails(details...)
	}
	ev := zerolog.Ctx(c.Request.Context()).Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ev = zerolog.Ctx(c.Request.Context()).Error()
	}
	ev.Err(err).Str("code", appErr.Code).Msgf("[%s][handler] request failed", scope)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, details ...string) {
	appErr := errInvalidRequest
	if len(details) > 0 {
		appErr = appErr.WithDetails(details...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pagination reads ?limit and ?offset, clamping the page size.
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// dateQuery parses an optional YYYY-MM-DD query parameter.
func dateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := request.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
