package request

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"omitempty,min=3,max=500"`
}

type NotifyRequest struct {
	Channel string `json:"channel" binding:"required,oneof=whatsapp email"`
}
